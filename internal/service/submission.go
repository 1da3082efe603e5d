package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"legalsite/internal/model"
	"legalsite/internal/repository"
)

// emailPattern is intentionally loose: one @ with non-empty local part and
// a dotted domain. Anything stricter rejects addresses that deliver fine.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidationError reports a structurally invalid submission field. It is
// returned before any store write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ContactInput carries the visitor-entered contact form fields.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// AppointmentInput carries the visitor-entered appointment form fields.
// Message is optional; all other fields are required.
type AppointmentInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// SubmissionService owns the validation contract for visitor submissions
// and assigns identity and timestamps before handing records to the store.
// Repeated identical submissions intentionally create duplicate records.
type SubmissionService interface {
	// SubmitContact validates and persists a contact message.
	SubmitContact(ctx context.Context, in ContactInput) (*model.ContactMessage, error)

	// SubmitAppointment validates and persists an appointment request.
	SubmitAppointment(ctx context.Context, in AppointmentInput) (*model.AppointmentRequest, error)
}

type submissionService struct {
	repo repository.SubmissionRepository
	now  func() time.Time
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *submissionService) SubmitContact(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	if err := requireText("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireEmail(in.Email); err != nil {
		return nil, err
	}
	if err := requireText("message", in.Message); err != nil {
		return nil, err
	}

	m := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Message:   in.Message,
		CreatedAt: s.now(),
	}
	stored, err := s.repo.CreateContactMessage(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("record contact message: %w", err)
	}
	return stored, nil
}

func (s *submissionService) SubmitAppointment(ctx context.Context, in AppointmentInput) (*model.AppointmentRequest, error) {
	if err := requireText("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireEmail(in.Email); err != nil {
		return nil, err
	}
	if err := requireText("phone", in.Phone); err != nil {
		return nil, err
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		return nil, &ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, &ValidationError{Field: "date", Reason: "must be a calendar date (YYYY-MM-DD)"}
	}
	at := strings.TrimSpace(in.Time)
	if at == "" {
		return nil, &ValidationError{Field: "time", Reason: "is required"}
	}
	if _, err := time.Parse(timeLayout, at); err != nil {
		return nil, &ValidationError{Field: "time", Reason: "must be a time of day (HH:MM)"}
	}

	a := &model.AppointmentRequest{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Date:      date,
		Time:      at,
		Message:   in.Message, // optional, passed through unmodified
		Status:    model.AppointmentStatusPending,
		CreatedAt: s.now(),
	}
	stored, err := s.repo.CreateAppointment(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("record appointment request: %w", err)
	}
	return stored, nil
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

func requireEmail(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if !emailPattern.MatchString(v) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}
