package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/galvanlaw/crm-intake/internal/entity"
	"github.com/galvanlaw/crm-intake/internal/infra/queue"
	"github.com/galvanlaw/crm-intake/internal/usecase"
)

type signupFixture struct {
	contacts      *MockContactRepository
	opportunities *MockOpportunityRepository
	workshops     *MockWorkshopRepository
	registrations *MockRegistrationRepository
	publisher     *MockSignupPublisher
	uc            *usecase.ProcessSignupUseCase
}

func newSignupFixture() *signupFixture {
	f := &signupFixture{
		contacts:      new(MockContactRepository),
		opportunities: new(MockOpportunityRepository),
		workshops:     new(MockWorkshopRepository),
		registrations: new(MockRegistrationRepository),
		publisher:     new(MockSignupPublisher),
	}
	logger := zap.NewNop()
	f.uc = usecase.NewProcessSignupUseCase(
		usecase.NewContactResolver(f.contacts, f.opportunities, logger),
		usecase.NewWorkshopMatcher(f.workshops, f.registrations, logger),
		f.publisher,
		logger,
	)
	return f
}

// Full scenario: empty contact store, one known session on the right day,
// slightly reworded title and location.
func TestProcessSignupEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newSignupFixture()

	f.contacts.On("FindByEmail", ctx, "jane@example.com").Return(nil, entity.ErrContactNotFound)
	f.contacts.On("Create", ctx, mock.Anything).Return(nil)

	known := &entity.Workshop{
		ID:       "ws-estate-basics",
		Title:    "Estate Basics 101",
		Location: "Naples Office",
		StartsAt: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
	}
	f.workshops.On("ListUpcoming", ctx, 100).Return([]*entity.Workshop{known}, nil)
	f.registrations.On("Create", ctx, mock.Anything).Return(nil)
	f.publisher.On("PublishSignup", ctx, mock.Anything).Return(nil)

	out, err := f.uc.Execute(ctx, usecase.WorkshopSignupInput{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		WorkshopJoined: "Estate Basics - Naples - Monday, March 2nd, 2026 at 10:00 am – 11:00 am",
	})

	assert.NoError(t, err)
	assert.True(t, out.IsNew)
	assert.NotEmpty(t, out.ContactID)
	assert.Equal(t, "Estate Basics", out.MatchInfo.Title)
	assert.Equal(t, "Naples", out.MatchInfo.Location)
	assert.Equal(t, "ws-estate-basics", out.WorkshopID)
	assert.NotEmpty(t, out.RegistrationID)

	f.publisher.AssertCalled(t, "PublishSignup", ctx, mock.MatchedBy(func(p queue.SignupEventPayload) bool {
		return p.Email == "jane@example.com" && p.WorkshopID == "ws-estate-basics"
	}))
}

func TestProcessSignupAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	f := newSignupFixture()

	f.contacts.On("FindByEmail", ctx, "jane@example.com").Return(nil, entity.ErrContactNotFound)

	var created *entity.Contact
	f.contacts.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.Contact)
	}).Return(nil)

	out, err := f.uc.Execute(ctx, usecase.WorkshopSignupInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		// no guest count, no source tag, no workshop text
	})

	assert.NoError(t, err)
	assert.True(t, out.IsNew)
	assert.True(t, created.HasTag("Workshop Registration"))
	assert.Contains(t, created.Notes, "Guests: 1")
	assert.Equal(t, "Registrant", created.LastName)

	f.workshops.AssertNotCalled(t, "ListUpcoming", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishSignup", mock.Anything, mock.Anything)
}

func TestProcessSignupMalformedDescriptorIsNonFatal(t *testing.T) {
	ctx := context.Background()
	f := newSignupFixture()

	f.contacts.On("FindByEmail", ctx, "jane@example.com").Return(nil, entity.ErrContactNotFound)
	f.contacts.On("Create", ctx, mock.Anything).Return(nil)

	out, err := f.uc.Execute(ctx, usecase.WorkshopSignupInput{
		Email:          "jane@example.com",
		WorkshopJoined: "Just one segment",
	})

	assert.NoError(t, err)
	assert.Nil(t, out.MatchInfo)
	assert.Empty(t, out.WorkshopID)
	assert.Empty(t, out.RegistrationID)
	f.workshops.AssertNotCalled(t, "ListUpcoming", mock.Anything, mock.Anything)
}

func TestProcessSignupNoMatchNoRegistration(t *testing.T) {
	ctx := context.Background()
	f := newSignupFixture()

	f.contacts.On("FindByEmail", ctx, "jane@example.com").Return(nil, entity.ErrContactNotFound)
	f.contacts.On("Create", ctx, mock.Anything).Return(nil)
	f.workshops.On("ListUpcoming", ctx, 100).Return([]*entity.Workshop{}, nil)

	out, err := f.uc.Execute(ctx, usecase.WorkshopSignupInput{
		Email:          "jane@example.com",
		WorkshopJoined: "Estate Basics - Naples - March 2, 2026 at 10:00 am – 11:00 am",
	})

	assert.NoError(t, err)
	assert.NotNil(t, out.MatchInfo)
	assert.Empty(t, out.WorkshopID)
	assert.Empty(t, out.RegistrationID)
	assert.Contains(t, out.Message, "no matching workshop")
	f.publisher.AssertNotCalled(t, "PublishSignup", mock.Anything, mock.Anything)
}

func TestProcessSignupConflictStillSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newSignupFixture()

	existing := entity.NewContact("Jane", "Doe", "jane@example.com", "")
	f.contacts.On("FindByEmail", ctx, "jane@example.com").Return(existing, nil)
	f.contacts.On("Update", ctx, mock.Anything).Return(nil)
	f.opportunities.On("FindByContactID", ctx, existing.ID).Return([]*entity.Opportunity{}, nil)

	known := &entity.Workshop{
		ID:       "ws-1",
		Title:    "Estate Basics 101",
		StartsAt: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
	}
	f.workshops.On("ListUpcoming", ctx, 100).Return([]*entity.Workshop{known}, nil)
	f.registrations.On("Create", ctx, mock.Anything).Return(entity.ErrAlreadyRegistered)

	out, err := f.uc.Execute(ctx, usecase.WorkshopSignupInput{
		Email:          "jane@example.com",
		WorkshopJoined: "Estate Basics - Naples - March 2, 2026 at 10:00 am – 11:00 am",
	})

	assert.NoError(t, err)
	assert.False(t, out.IsNew)
	assert.Equal(t, "ws-1", out.WorkshopID)
	assert.Empty(t, out.RegistrationID)
	assert.Contains(t, out.Message, "registration not created")
	f.publisher.AssertNotCalled(t, "PublishSignup", mock.Anything, mock.Anything)
}

func TestProcessSignupPublishFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newSignupFixture()

	f.contacts.On("FindByEmail", ctx, "jane@example.com").Return(nil, entity.ErrContactNotFound)
	f.contacts.On("Create", ctx, mock.Anything).Return(nil)

	known := &entity.Workshop{
		ID:       "ws-1",
		Title:    "Estate Basics 101",
		StartsAt: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
	}
	f.workshops.On("ListUpcoming", ctx, 100).Return([]*entity.Workshop{known}, nil)
	f.registrations.On("Create", ctx, mock.Anything).Return(nil)
	f.publisher.On("PublishSignup", ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := f.uc.Execute(ctx, usecase.WorkshopSignupInput{
		Email:          "jane@example.com",
		WorkshopJoined: "Estate Basics - Naples - March 2, 2026 at 10:00 am – 11:00 am",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, out.RegistrationID)
}

func TestProcessSignupStoreFailurePropagates(t *testing.T) {
	ctx := context.Background()
	f := newSignupFixture()

	storeErr := errors.New("store unavailable")
	f.contacts.On("FindByEmail", ctx, "jane@example.com").Return(nil, storeErr)

	out, err := f.uc.Execute(ctx, usecase.WorkshopSignupInput{Email: "jane@example.com"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, storeErr)
}
