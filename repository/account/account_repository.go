package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hoardspace/model"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("account: email already exists")

var errEmptyFilter = errors.New("account: empty filter")

const mysqlErrDuplicateEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	Create(ctx context.Context, req *model.AccountEntity) (*model.AccountEntity, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	Update(ctx context.Context, id uint64, update *model.AccountUpdate) error
	ClearExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	accountColumns = `id, name, email, password_hash, phone, role, auth_provider, email_verified, phone_verified,
kyc_status, kyc_details, image, google_id, refresh_token, refresh_token_expiry, created_at, updated_at`

	insertAccountQuery = `INSERT INTO account (name, email, password_hash, phone, role, auth_provider, email_verified,
phone_verified, kyc_status, image, google_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	getAccountBase = `SELECT ` + accountColumns + ` FROM account WHERE true`

	clearExpiredRefreshQuery = `UPDATE account SET refresh_token = '', refresh_token_expiry = NULL, updated_at = ?
WHERE refresh_token_expiry IS NOT NULL AND refresh_token_expiry <= ?`
)

func (s *SQL) Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now().UTC()
	}

	result, err := s.conn.ExecContext(ctx, insertAccountQuery,
		data.Name,
		data.Email,
		data.PasswordHash,
		data.Phone,
		data.Role,
		data.AuthProvider,
		data.EmailVerified,
		data.PhoneVerified,
		data.KYCStatus,
		data.Image,
		data.GoogleID,
		data.CreatedAt,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := getAccountBase
	args := make([]any, 0, 5)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if filter.GoogleID != "" {
		query += " AND google_id = ?"
		args = append(args, filter.GoogleID)
	}
	if len(args) == 0 {
		return nil, errEmptyFilter
	}
	if filter.ExcludeID != 0 {
		query += " AND id <> ?"
		args = append(args, filter.ExcludeID)
	}
	query += " LIMIT 1"

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, u *model.AccountUpdate) error {
	if u.IsEmpty() {
		return nil
	}

	sets := make([]string, 0, 16)
	args := make([]any, 0, 17)
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if u.Name != nil {
		set("name", *u.Name)
	}
	if u.PasswordHash != nil {
		set("password_hash", *u.PasswordHash)
	}
	if u.Role != nil {
		set("role", *u.Role)
	}
	if u.AuthProvider != nil {
		set("auth_provider", *u.AuthProvider)
	}
	if u.EmailVerified != nil {
		set("email_verified", *u.EmailVerified)
	}
	if u.PhoneVerified != nil {
		set("phone_verified", *u.PhoneVerified)
	}
	if u.Phone != nil {
		set("phone", *u.Phone)
	}
	if u.KYCStatus != nil {
		set("kyc_status", *u.KYCStatus)
	}
	if u.KYCDetails != nil {
		set("kyc_details", *u.KYCDetails)
	}
	if u.Image != nil {
		set("image", *u.Image)
	}
	if u.GoogleID != nil {
		set("google_id", *u.GoogleID)
	}
	if u.ClearRefreshToken {
		set("refresh_token", "")
		set("refresh_token_expiry", nil)
	} else {
		if u.RefreshToken != nil {
			set("refresh_token", *u.RefreshToken)
		}
		if u.RefreshTokenExpiry != nil {
			set("refresh_token_expiry", *u.RefreshTokenExpiry)
		}
	}
	set("updated_at", time.Now().UTC())

	query := "UPDATE account SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) ClearExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.conn.ExecContext(ctx, clearExpiredRefreshQuery, now, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
