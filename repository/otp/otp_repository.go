package otp

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hoardspace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OTPRepository interface {
	Create(ctx context.Context, data *model.OTPEntity) (*model.OTPEntity, error)
	GetLatest(ctx context.Context, filter *model.OTPFilter) (*model.OTPEntity, error)
	GetByCode(ctx context.Context, filter *model.OTPFilter) (*model.OTPEntity, error)
	Delete(ctx context.Context, filter *model.OTPFilter) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

func NewOTPRepository(conn *sqlx.DB) OTPRepository {
	return &SQL{conn: conn}
}

const (
	insertOTPQuery = `INSERT INTO otp (channel, target, code, purpose, expires_at, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	getLatestOTPQuery = `SELECT id, channel, target, code, purpose, expires_at, created_at FROM otp
WHERE channel = ? AND target = ? AND purpose = ? ORDER BY created_at DESC, id DESC LIMIT 1`

	getOTPByCodeQuery = `SELECT id, channel, target, code, purpose, expires_at, created_at FROM otp
WHERE channel = ? AND target = ? AND purpose = ? AND code = ? ORDER BY created_at DESC, id DESC LIMIT 1`

	deleteOTPQuery        = `DELETE FROM otp WHERE channel = ? AND target = ? AND purpose = ?`
	deleteExpiredOTPQuery = `DELETE FROM otp WHERE expires_at <= ?`
)

func (s *SQL) Create(ctx context.Context, data *model.OTPEntity) (*model.OTPEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertOTPQuery,
		data.Channel, data.Target, data.Code, data.Purpose, data.ExpiresAt, data.CreatedAt)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetLatest(ctx context.Context, filter *model.OTPFilter) (*model.OTPEntity, error) {
	return s.getOne(ctx, getLatestOTPQuery, filter.Channel, filter.Target, filter.Purpose)
}

// GetByCode returns the matching record regardless of expiry; callers check ExpiresAt.
func (s *SQL) GetByCode(ctx context.Context, filter *model.OTPFilter) (*model.OTPEntity, error) {
	return s.getOne(ctx, getOTPByCodeQuery, filter.Channel, filter.Target, filter.Purpose, filter.Code)
}

func (s *SQL) getOne(ctx context.Context, query string, args ...any) (*model.OTPEntity, error) {
	var entity model.OTPEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Delete(ctx context.Context, filter *model.OTPFilter) error {
	_, err := s.conn.ExecContext(ctx, deleteOTPQuery, filter.Channel, filter.Target, filter.Purpose)
	return err
}

func (s *SQL) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.conn.ExecContext(ctx, deleteExpiredOTPQuery, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
