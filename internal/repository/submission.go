package repository

import (
	"context"

	"legalsite/internal/model"
)

// SubmissionRepository persists visitor submissions. Both operations are
// plain inserts: submissions are write-once and never exposed for reading
// through this API. Callers provide fully validated records; the only
// failure mode here is a persistence error.
type SubmissionRepository interface {
	// CreateContactMessage inserts a contact message row and returns the
	// stored record.
	CreateContactMessage(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error)

	// CreateAppointment inserts an appointment request row and returns
	// the stored record.
	CreateAppointment(ctx context.Context, a *model.AppointmentRequest) (*model.AppointmentRequest, error)
}
