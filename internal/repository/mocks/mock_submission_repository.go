package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalsite/internal/model"
)

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockSubmissionRepository) CreateAppointment(ctx context.Context, a *model.AppointmentRequest) (*model.AppointmentRequest, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppointmentRequest), args.Error(1)
}
