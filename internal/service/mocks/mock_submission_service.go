package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalsite/internal/model"
	"legalsite/internal/service"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitContact(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockSubmissionService) SubmitAppointment(ctx context.Context, in service.AppointmentInput) (*model.AppointmentRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppointmentRequest), args.Error(1)
}
