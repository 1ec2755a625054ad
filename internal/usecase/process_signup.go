package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/galvanlaw/crm-intake/internal/entity"
	"github.com/galvanlaw/crm-intake/internal/infra/queue"
)

const defaultSourceTag = "Workshop Registration"

type ProcessSignupUseCase struct {
	Resolver *ContactResolver
	Matcher  *WorkshopMatcher
	Events   SignupEventPublisherInterface // opcional; nil desliga a fila
	Logger   *zap.Logger
}

func NewProcessSignupUseCase(
	resolver *ContactResolver,
	matcher *WorkshopMatcher,
	events SignupEventPublisherInterface,
	logger *zap.Logger,
) *ProcessSignupUseCase {
	return &ProcessSignupUseCase{
		Resolver: resolver,
		Matcher:  matcher,
		Events:   events,
		Logger:   logger,
	}
}

// Execute runs the intake sequence: resolve-or-create the contact, parse
// the workshop descriptor, match a session, register.
//
// The sequence is deliberately not transactional. Every step is idempotent
// (resolution dedupes, tag union dedupes, registration is guarded by a
// unique constraint), so the webhook sender can safely replay the same
// payload after any failure. No compensation is attempted on partial
// failure for the same reason: replay, not rollback, is the retry contract.
func (uc *ProcessSignupUseCase) Execute(ctx context.Context, in WorkshopSignupInput) (*WorkshopSignupOutput, error) {
	guests := strings.TrimSpace(in.GuestCount)
	if guests == "" {
		guests = "1"
	}
	tag := strings.TrimSpace(in.SourceTag)
	if tag == "" {
		tag = defaultSourceTag
	}

	note := fmt.Sprintf("Workshop signup received. Guests: %s.", guests)
	descriptor := strings.TrimSpace(in.WorkshopJoined)
	if descriptor != "" {
		note += "\nSession: " + descriptor
	}

	contact, isNew, err := uc.Resolver.Resolve(ctx, ResolveContactInput{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		Note:            note,
		Tag:             tag,
		MaritalStatus:   in.MaritalStatus,
		FloridaResident: in.FloridaResident,
	})
	if err != nil {
		return nil, err
	}

	out := &WorkshopSignupOutput{ContactID: contact.ID, IsNew: isNew}
	if isNew {
		out.Message = "contact created"
	} else {
		out.Message = "contact matched"
	}

	if descriptor == "" {
		return out, nil
	}

	info := ParseWorkshopSession(descriptor)
	if info == nil {
		uc.Logger.Info("workshop descriptor did not match the expected format",
			zap.String("descriptor", descriptor))
		out.Message += "; workshop details not recognized"
		return out, nil
	}
	out.MatchInfo = info

	workshopID, registrationID, err := uc.Matcher.Match(ctx, info, contact.ID, guests)
	if err != nil {
		return nil, err
	}
	out.WorkshopID = workshopID
	out.RegistrationID = registrationID

	switch {
	case registrationID != "":
		out.Message += "; registered for workshop"
		uc.publishConfirmation(ctx, contact, info, workshopID, registrationID, guests)
	case workshopID != "":
		out.Message += "; workshop matched but registration not created"
	default:
		out.Message += "; no matching workshop found"
	}

	return out, nil
}

// publishConfirmation hands the confirmation email off to the queue.
// Best-effort: a broker failure is logged, never bubbled into the response.
func (uc *ProcessSignupUseCase) publishConfirmation(
	ctx context.Context,
	contact *entity.Contact,
	info *WorkshopSessionInfo,
	workshopID, registrationID, guests string,
) {
	if uc.Events == nil || contact.Email == "" {
		return
	}

	payload := queue.SignupEventPayload{
		ContactID:      contact.ID,
		Name:           contact.FullName(),
		Email:          contact.Email,
		WorkshopID:     workshopID,
		WorkshopTitle:  info.Title,
		WorkshopDate:   info.DateString,
		RegistrationID: registrationID,
		Guests:         guests,
		Origin:         "WEBHOOK_WORKSHOP",
	}
	if err := uc.Events.PublishSignup(ctx, payload); err != nil {
		uc.Logger.Warn("confirmation event not published",
			zap.String("registration_id", registrationID),
			zap.Error(err))
	}
}
