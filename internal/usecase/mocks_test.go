package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/galvanlaw/crm-intake/internal/entity"
	"github.com/galvanlaw/crm-intake/internal/infra/queue"
)

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByPhone(ctx context.Context, phone string) (*entity.Contact, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockOpportunityRepository
type MockOpportunityRepository struct {
	mock.Mock
}

func (m *MockOpportunityRepository) FindByContactID(ctx context.Context, contactID string) ([]*entity.Opportunity, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) AddTag(ctx context.Context, opportunityID, tag string) error {
	args := m.Called(ctx, opportunityID, tag)
	return args.Error(0)
}

// MockWorkshopRepository
type MockWorkshopRepository struct {
	mock.Mock
}

func (m *MockWorkshopRepository) ListUpcoming(ctx context.Context, limit int) ([]*entity.Workshop, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Workshop), args.Error(1)
}

// MockRegistrationRepository
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg *entity.WorkshopRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

// MockSignupPublisher
type MockSignupPublisher struct {
	mock.Mock
}

func (m *MockSignupPublisher) PublishSignup(ctx context.Context, payload queue.SignupEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
