package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/handyops/proserve/internal/domain"
)

// serviceColumns is the canonical SELECT column list for services.
const serviceColumns = `id, name, category, description, pricing_type,
		hourly_rate, flat_rate, estimated_duration_hours, is_active, created_at, updated_at`

// SQLiteServiceRepo implements ServiceRepo using a SQLite database.
type SQLiteServiceRepo struct {
	db *sql.DB
}

// NewSQLiteServiceRepo creates a new SQLiteServiceRepo.
func NewSQLiteServiceRepo(db *sql.DB) *SQLiteServiceRepo {
	return &SQLiteServiceRepo{db: db}
}

func (r *SQLiteServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services (id, name, category, description, pricing_type,
		hourly_rate, flat_rate, estimated_duration_hours, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Category,
		s.Description,
		string(s.PricingType),
		nullableFloatToValue(s.HourlyRate),
		nullableFloatToValue(s.FlatRate),
		s.EstimatedDurationHours,
		boolToInt(s.IsActive),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return storeErr("inserting service", err)
	}
	return nil
}

func (r *SQLiteServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanService(row)
}

func (r *SQLiteServiceRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY category, name`
	if activeOnly {
		query = `SELECT ` + serviceColumns + ` FROM services WHERE is_active = 1 ORDER BY category, name`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("listing services", err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		s, err := scanServiceRow(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating services", err)
	}
	return services, nil
}

func (r *SQLiteServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	query := `UPDATE services SET name = ?, category = ?, description = ?, pricing_type = ?,
		hourly_rate = ?, flat_rate = ?, estimated_duration_hours = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Category,
		s.Description,
		string(s.PricingType),
		nullableFloatToValue(s.HourlyRate),
		nullableFloatToValue(s.FlatRate),
		s.EstimatedDurationHours,
		boolToInt(s.IsActive),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return storeErr("updating service", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("service: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteServiceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return storeErr("deleting service", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("service: %w", ErrNotFound)
	}
	return nil
}

type serviceScanner interface {
	Scan(dest ...any) error
}

func scanService(row *sql.Row) (*domain.Service, error) {
	s, err := scanServiceFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("service: %w", ErrNotFound)
	}
	return s, err
}

func scanServiceRow(rows *sql.Rows) (*domain.Service, error) {
	return scanServiceFrom(rows)
}

func scanServiceFrom(sc serviceScanner) (*domain.Service, error) {
	var s domain.Service
	var pricingType string
	var hourlyRate, flatRate sql.NullFloat64
	var activeInt int
	var createdAtStr, updatedAtStr string

	err := sc.Scan(
		&s.ID, &s.Name, &s.Category, &s.Description, &pricingType,
		&hourlyRate, &flatRate, &s.EstimatedDurationHours, &activeInt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, storeErr("scanning service", err)
	}

	s.PricingType = domain.PricingType(pricingType)
	s.HourlyRate = nullableFloat(hourlyRate)
	s.FlatRate = nullableFloat(flatRate)
	s.IsActive = intToBool(activeInt)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &s, nil
}
