package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error)
	GetByOrderIDTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.BookingEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.BookingEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.BookingStatus, paymentID string) error
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

const (
	bookingColumns = `id, hoarding_id, user_id, start_date, end_date, total_amount, status, order_id, payment_id,
expires_at, created_at, updated_at`

	insertBookingQuery = `INSERT INTO booking (hoarding_id, user_id, start_date, end_date, total_amount, status, order_id,
payment_id, expires_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	lockBookingByOrderQuery = `SELECT ` + bookingColumns + ` FROM booking WHERE order_id = ? FOR UPDATE`
	lockBookingByIDQuery    = `SELECT ` + bookingColumns + ` FROM booking WHERE id = ? FOR UPDATE`

	updateBookingStatusQuery = `UPDATE booking SET status = ?, payment_id = ?, updated_at = ? WHERE id = ?`
)

func (r *SQL) Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now().UTC()
	}

	res, err := r.conn.ExecContext(ctx, insertBookingQuery,
		data.HoardingID,
		data.UserID,
		data.StartDate,
		data.EndDate,
		data.TotalAmount,
		data.Status,
		data.OrderID,
		data.PaymentID,
		data.ExpiresAt,
		data.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

// GetByOrderIDTx locks the booking row for the rest of the transaction.
func (r *SQL) GetByOrderIDTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.BookingEntity, error) {
	return getOneTx(ctx, tx, lockBookingByOrderQuery, orderID)
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.BookingEntity, error) {
	return getOneTx(ctx, tx, lockBookingByIDQuery, id)
}

func getOneTx(ctx context.Context, tx *sqlx.Tx, query string, arg any) (*model.BookingEntity, error) {
	var entity model.BookingEntity
	if err := tx.QueryRowxContext(ctx, query, arg).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.BookingStatus, paymentID string) error {
	_, err := tx.ExecContext(ctx, updateBookingStatusQuery, status, paymentID, time.Now().UTC(), id)
	return err
}
