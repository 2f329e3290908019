package hoarding

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hoardspace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type HoardingRepository interface {
	Create(ctx context.Context, data *model.HoardingEntity) (*model.HoardingEntity, error)
	Get(ctx context.Context, filter *model.HoardingFilter) (*model.HoardingEntity, error)
	List(ctx context.Context, filter *model.HoardingFilter) ([]model.HoardingEntity, error)
}

func NewHoardingRepository(conn *sqlx.DB) HoardingRepository {
	return &SQL{conn: conn}
}

const (
	hoardingColumns = `id, name, description, address, city, area, state, zip_code, latitude, longitude, width, height,
type, lighting_type, price_per_month, minimum_booking_amount, images, unique_reach, owner_id, status, created_at, updated_at`

	insertHoardingQuery = `INSERT INTO hoarding (name, description, address, city, area, state, zip_code, latitude, longitude,
width, height, type, lighting_type, price_per_month, minimum_booking_amount, images, unique_reach, owner_id, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	getHoardingBase = `SELECT ` + hoardingColumns + ` FROM hoarding WHERE true`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *SQL) Create(ctx context.Context, data *model.HoardingEntity) (*model.HoardingEntity, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now().UTC()
	}
	if data.Images == nil {
		data.Images = model.StringList{}
	}

	result, err := s.conn.ExecContext(ctx, insertHoardingQuery,
		data.Name,
		data.Description,
		data.Address,
		data.City,
		data.Area,
		data.State,
		data.ZipCode,
		data.Latitude,
		data.Longitude,
		data.Width,
		data.Height,
		data.Type,
		data.LightingType,
		data.PricePerMonth,
		data.MinimumBookingAmount,
		data.Images,
		data.UniqueReach,
		data.OwnerID,
		data.Status,
		data.CreatedAt,
	)
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

func (s *SQL) Get(ctx context.Context, filter *model.HoardingFilter) (*model.HoardingEntity, error) {
	query, args, err := buildHoardingQuery(filter)
	if err != nil {
		return nil, err
	}
	query += " LIMIT 1"

	var entity model.HoardingEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.HoardingFilter) ([]model.HoardingEntity, error) {
	query, args, err := buildHoardingQuery(filter)
	if err != nil {
		return nil, err
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.HoardingEntity, 0)
	for rows.Next() {
		var it model.HoardingEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func buildHoardingQuery(filter *model.HoardingFilter) (string, []any, error) {
	query := getHoardingBase
	args := make([]any, 0, 4)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.OwnerID != 0 {
		query += " AND owner_id = ?"
		args = append(args, filter.OwnerID)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		query += ` AND LOWER(city) LIKE ? ESCAPE '\\'`
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(city))+"%")
	}
	if len(filter.Statuses) > 0 {
		in, inArgs, err := sqlx.In(" AND status IN (?)", filter.Statuses)
		if err != nil {
			return "", nil, fmt.Errorf("hoarding status filter: %w", err)
		}
		query += in
		args = append(args, inArgs...)
	}
	return query, args, nil
}
