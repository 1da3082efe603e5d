package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"legalsite/internal/model"
)

func TestSubmissionPostgres_CreateContactMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	m := &model.ContactMessage{
		ID:        "contact-uuid",
		Name:      "Test User",
		Email:     "test@example.com",
		Message:   "I need advice on a property matter.",
		CreatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "created_at"}).
			AddRow(m.ID, m.Name, m.Email, m.Message, m.CreatedAt)

		mock.ExpectQuery("INSERT INTO contact_messages").
			WithArgs(m.ID, m.Name, m.Email, m.Message, m.CreatedAt).
			WillReturnRows(rows)

		result, err := repo.CreateContactMessage(ctx, m)

		assert.NoError(t, err)
		assert.Equal(t, m.ID, result.ID)
		assert.Equal(t, m.CreatedAt, result.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("persistence error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO contact_messages").
			WithArgs(m.ID, m.Name, m.Email, m.Message, m.CreatedAt).
			WillReturnError(errors.New("connection refused"))

		result, err := repo.CreateContactMessage(ctx, m)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestSubmissionPostgres_CreateAppointment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	a := &model.AppointmentRequest{
		ID:        "appt-uuid",
		Name:      "Test Client",
		Email:     "client@example.com",
		Phone:     "9876543210",
		Date:      "2025-01-01",
		Time:      "10:00",
		Message:   "",
		Status:    model.AppointmentStatusPending,
		CreatedAt: now,
	}

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "date", "time", "message", "status", "created_at"}).
		AddRow(a.ID, a.Name, a.Email, a.Phone, a.Date, a.Time, a.Message, a.Status, a.CreatedAt)

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(a.ID, a.Name, a.Email, a.Phone, a.Date, a.Time, a.Message, a.Status, a.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.CreateAppointment(ctx, a)

	assert.NoError(t, err)
	assert.Equal(t, a.ID, result.ID)
	assert.Equal(t, model.AppointmentStatusPending, result.Status)
	assert.Equal(t, "", result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
