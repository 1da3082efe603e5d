package postgres

import (
	"context"
	"database/sql"

	"legalsite/internal/model"
	"legalsite/internal/repository"
)

// SubmissionPostgres is a PostgreSQL implementation of repository.SubmissionRepository.
// Each method is a single parameterized INSERT; concurrent submissions never
// touch the same row, so no additional locking is needed for the
// exactly-once-per-request guarantee.
type SubmissionPostgres struct {
	db *sql.DB
}

// NewSubmissionPostgres creates a new SubmissionPostgres repository.
func NewSubmissionPostgres(db *sql.DB) *SubmissionPostgres {
	return &SubmissionPostgres{db: db}
}

var _ repository.SubmissionRepository = (*SubmissionPostgres)(nil)

// CreateContactMessage inserts a contact message row and returns the stored record.
func (r *SubmissionPostgres) CreateContactMessage(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error) {
	const q = `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, message, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.Name,
		m.Email,
		m.Message,
		m.CreatedAt,
	)
	var out model.ContactMessage
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAppointment inserts an appointment request row and returns the stored record.
func (r *SubmissionPostgres) CreateAppointment(ctx context.Context, a *model.AppointmentRequest) (*model.AppointmentRequest, error) {
	const q = `
		INSERT INTO appointments (id, name, email, phone, date, time, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, email, phone, date, time, message, status, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.Email,
		a.Phone,
		a.Date,
		a.Time,
		a.Message,
		a.Status,
		a.CreatedAt,
	)
	var out model.AppointmentRequest
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Phone,
		&out.Date,
		&out.Time,
		&out.Message,
		&out.Status,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
