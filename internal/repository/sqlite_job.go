package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/handyops/proserve/internal/domain"
)

// jobColumns is the canonical SELECT column list for jobs.
const jobColumns = `id, client_name, phone, address, service_type, service_id, description,
		scheduled_date, price, estimated_cost, estimated_duration_hours, status,
		completed_at, paid_at, created_at, updated_at`

// SQLiteJobRepo implements JobRepo using a SQLite database.
type SQLiteJobRepo struct {
	db *sql.DB
}

// NewSQLiteJobRepo creates a new SQLiteJobRepo.
func NewSQLiteJobRepo(db *sql.DB) *SQLiteJobRepo {
	return &SQLiteJobRepo{db: db}
}

func (r *SQLiteJobRepo) Create(ctx context.Context, j *domain.Job) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("beginning transaction", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO jobs (id, client_name, phone, address, service_type, service_id, description,
		scheduled_date, price, estimated_cost, estimated_duration_hours, status,
		completed_at, paid_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		j.ID,
		j.ClientName,
		j.Phone,
		j.Address,
		j.ServiceType,
		nullableStringToValue(j.ServiceID),
		j.Description,
		j.ScheduledDate.Format(time.RFC3339),
		nullableFloatToValue(j.Price),
		j.EstimatedCost,
		j.EstimatedDurationHours,
		string(j.Status),
		nullableTimeToString(j.CompletedAt, time.RFC3339),
		nullableTimeToString(j.PaidAt, time.RFC3339),
		j.CreatedAt.Format(time.RFC3339),
		j.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return storeErr("inserting job", err)
	}

	if err := insertServiceLines(ctx, tx, j.ID, j.Services); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeErr("committing job insert", err)
	}
	return nil
}

func insertServiceLines(ctx context.Context, tx *sql.Tx, jobID string, lines []domain.ServiceLine) error {
	query := `INSERT INTO job_services (job_id, seq, service_id, service_name, quantity, rate, pricing_type, estimated_duration_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, l := range lines {
		_, err := tx.ExecContext(ctx, query,
			jobID, i, l.ServiceID, l.ServiceName, l.Quantity, l.Rate, string(l.PricingType), l.EstimatedDurationHours)
		if err != nil {
			return storeErr("inserting job service line", err)
		}
	}
	return nil
}

func (r *SQLiteJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	j, err := scanJob(row)
	if err != nil {
		return nil, err
	}

	if j.Notes, err = r.listNotes(ctx, id); err != nil {
		return nil, err
	}
	if j.Photos, err = r.listPhotos(ctx, id); err != nil {
		return nil, err
	}
	if j.Services, err = r.listServiceLines(ctx, id); err != nil {
		return nil, err
	}
	return j, nil
}

func (r *SQLiteJobRepo) List(ctx context.Context) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY datetime(scheduled_date)`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("listing jobs", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *SQLiteJobRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Job, error) {
	// datetime() normalizes the RFC3339 offsets to UTC, so stamps stored
	// with different offsets compare as instants rather than as strings.
	query := `SELECT ` + jobColumns + ` FROM jobs
		WHERE datetime(scheduled_date) >= datetime(?) AND datetime(scheduled_date) < datetime(?)
		ORDER BY datetime(scheduled_date)`
	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, storeErr("listing jobs in range", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *SQLiteJobRepo) Update(ctx context.Context, j *domain.Job) error {
	query := `UPDATE jobs SET client_name = ?, phone = ?, address = ?, service_type = ?,
		service_id = ?, description = ?, scheduled_date = ?, price = ?, estimated_cost = ?,
		estimated_duration_hours = ?, status = ?, completed_at = ?, paid_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		j.ClientName,
		j.Phone,
		j.Address,
		j.ServiceType,
		nullableStringToValue(j.ServiceID),
		j.Description,
		j.ScheduledDate.Format(time.RFC3339),
		nullableFloatToValue(j.Price),
		j.EstimatedCost,
		j.EstimatedDurationHours,
		string(j.Status),
		nullableTimeToString(j.CompletedAt, time.RFC3339),
		nullableTimeToString(j.PaidAt, time.RFC3339),
		j.UpdatedAt.Format(time.RFC3339),
		j.ID,
	)
	if err != nil {
		return storeErr("updating job", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("job: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteJobRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return storeErr("deleting job", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("job: %w", ErrNotFound)
	}
	return nil
}

// ── notes ────────────────────────────────────────────────────────────────────

func (r *SQLiteJobRepo) AddNote(ctx context.Context, jobID string, n *domain.Note) error {
	query := `INSERT INTO job_notes (id, job_id, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, jobID, n.Text,
		n.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(n.UpdatedAt, time.RFC3339),
	)
	if err != nil {
		return storeErr("inserting job note", err)
	}
	return nil
}

func (r *SQLiteJobRepo) UpdateNote(ctx context.Context, jobID, noteID, text string, now time.Time) error {
	query := `UPDATE job_notes SET text = ?, updated_at = ? WHERE id = ? AND job_id = ?`
	res, err := r.db.ExecContext(ctx, query, text, now.Format(time.RFC3339), noteID, jobID)
	if err != nil {
		return storeErr("updating job note", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("note: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteJobRepo) DeleteNote(ctx context.Context, jobID, noteID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_notes WHERE id = ? AND job_id = ?`, noteID, jobID)
	if err != nil {
		return storeErr("deleting job note", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("note: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteJobRepo) listNotes(ctx context.Context, jobID string) ([]domain.Note, error) {
	query := `SELECT id, text, created_at, updated_at FROM job_notes WHERE job_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, storeErr("listing job notes", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAtStr string
		var updatedAtStr sql.NullString
		if err := rows.Scan(&n.ID, &n.Text, &createdAtStr, &updatedAtStr); err != nil {
			return nil, storeErr("scanning job note", err)
		}
		n.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing note created_at: %w", err)
		}
		n.UpdatedAt = parseNullableTime(updatedAtStr, time.RFC3339)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating job notes", err)
	}
	return notes, nil
}

// ── photos ───────────────────────────────────────────────────────────────────

func (r *SQLiteJobRepo) AddPhoto(ctx context.Context, jobID string, p *domain.Photo) error {
	query := `INSERT INTO job_photos (id, job_id, name, url, size, mime_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, jobID, p.Name, p.URL, p.Size, p.MimeType, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return storeErr("inserting job photo", err)
	}
	return nil
}

func (r *SQLiteJobRepo) GetPhoto(ctx context.Context, jobID, photoID string) (*domain.Photo, error) {
	query := `SELECT id, name, url, size, mime_type, created_at FROM job_photos WHERE id = ? AND job_id = ?`
	var p domain.Photo
	var createdAtStr string
	err := r.db.QueryRowContext(ctx, query, photoID, jobID).
		Scan(&p.ID, &p.Name, &p.URL, &p.Size, &p.MimeType, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("photo: %w", ErrNotFound)
		}
		return nil, storeErr("scanning job photo", err)
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing photo created_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteJobRepo) DeletePhoto(ctx context.Context, jobID, photoID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_photos WHERE id = ? AND job_id = ?`, photoID, jobID)
	if err != nil {
		return storeErr("deleting job photo", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("photo: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteJobRepo) listPhotos(ctx context.Context, jobID string) ([]domain.Photo, error) {
	query := `SELECT id, name, url, size, mime_type, created_at FROM job_photos WHERE job_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, storeErr("listing job photos", err)
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		var p domain.Photo
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &p.URL, &p.Size, &p.MimeType, &createdAtStr); err != nil {
			return nil, storeErr("scanning job photo", err)
		}
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing photo created_at: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating job photos", err)
	}
	return photos, nil
}

// ── service manifest ─────────────────────────────────────────────────────────

func (r *SQLiteJobRepo) listServiceLines(ctx context.Context, jobID string) ([]domain.ServiceLine, error) {
	query := `SELECT service_id, service_name, quantity, rate, pricing_type, estimated_duration_hours
		FROM job_services WHERE job_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, storeErr("listing job service lines", err)
	}
	defer rows.Close()

	var lines []domain.ServiceLine
	for rows.Next() {
		var l domain.ServiceLine
		var pricingType string
		if err := rows.Scan(&l.ServiceID, &l.ServiceName, &l.Quantity, &l.Rate, &pricingType, &l.EstimatedDurationHours); err != nil {
			return nil, storeErr("scanning job service line", err)
		}
		l.PricingType = domain.PricingType(pricingType)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating job service lines", err)
	}
	return lines, nil
}

// ── scanning ─────────────────────────────────────────────────────────────────

type jobScanner interface {
	Scan(dest ...any) error
}

func scanJob(row *sql.Row) (*domain.Job, error) {
	j, err := scanJobFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("job: %w", ErrNotFound)
	}
	return j, err
}

func scanJobs(rows *sql.Rows) ([]*domain.Job, error) {
	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJobFrom(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating jobs", err)
	}
	return jobs, nil
}

func scanJobFrom(sc jobScanner) (*domain.Job, error) {
	var j domain.Job
	var serviceID sql.NullString
	var price sql.NullFloat64
	var statusStr, scheduledStr, createdAtStr, updatedAtStr string
	var completedAtStr, paidAtStr sql.NullString

	err := sc.Scan(
		&j.ID, &j.ClientName, &j.Phone, &j.Address, &j.ServiceType, &serviceID, &j.Description,
		&scheduledStr, &price, &j.EstimatedCost, &j.EstimatedDurationHours, &statusStr,
		&completedAtStr, &paidAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, storeErr("scanning job", err)
	}

	j.ServiceID = nullableString(serviceID)
	j.Price = nullableFloat(price)
	j.Status = domain.JobStatus(statusStr)
	j.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)
	j.PaidAt = parseNullableTime(paidAtStr, time.RFC3339)

	var parseErr error
	j.ScheduledDate, parseErr = time.Parse(time.RFC3339, scheduledStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing scheduled_date: %w", parseErr)
	}
	j.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	j.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &j, nil
}
