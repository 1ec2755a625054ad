package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/galvanlaw/crm-intake/internal/entity"
)

type ResolveContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	Note string
	Tag  string

	MaritalStatus   string
	FloridaResident string
}

type ContactResolver struct {
	Contacts      entity.ContactRepositoryInterface
	Opportunities entity.OpportunityRepositoryInterface
	Logger        *zap.Logger
}

func NewContactResolver(
	contacts entity.ContactRepositoryInterface,
	opportunities entity.OpportunityRepositoryInterface,
	logger *zap.Logger,
) *ContactResolver {
	return &ContactResolver{
		Contacts:      contacts,
		Opportunities: opportunities,
		Logger:        logger,
	}
}

// Resolve finds a contact by exact email first, then by each phone variant
// in order, first hit wins. On a match the note is appended, the tag is
// unioned in and demographic fields are overwritten only when provided; the
// tag is also mirrored onto every opportunity the contact owns. On a miss a
// new contact is created with the normalized phone form.
//
// The bool result reports whether the contact was newly created. Store
// failures on the contact itself propagate; a failed tag update on one
// opportunity is logged and the remaining opportunities still run.
func (r *ContactResolver) Resolve(ctx context.Context, in ResolveContactInput) (*entity.Contact, bool, error) {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		first = "Unknown"
	}
	last := strings.TrimSpace(in.LastName)
	if last == "" {
		last = "Registrant"
	}

	contact, err := r.lookup(ctx, in.Email, in.Phone)
	if err != nil {
		return nil, false, err
	}

	if contact == nil {
		contact = entity.NewContact(first, last, strings.TrimSpace(in.Email), NormalizePhone(in.Phone))
		contact.AppendNote(in.Note)
		contact.AddTag(in.Tag)
		contact.MaritalStatus = strings.TrimSpace(in.MaritalStatus)
		contact.FloridaResident = strings.TrimSpace(in.FloridaResident)

		if err := r.Contacts.Create(ctx, contact); err != nil {
			return nil, false, err
		}
		r.Logger.Info("contact created",
			zap.String("contact_id", contact.ID),
			zap.String("name", contact.FullName()))
		return contact, true, nil
	}

	contact.AppendNote(in.Note)
	contact.AddTag(in.Tag)
	if v := strings.TrimSpace(in.MaritalStatus); v != "" {
		contact.MaritalStatus = v
	}
	if v := strings.TrimSpace(in.FloridaResident); v != "" {
		contact.FloridaResident = v
	}

	if err := r.Contacts.Update(ctx, contact); err != nil {
		return nil, false, err
	}

	if err := r.mirrorTag(ctx, contact.ID, in.Tag); err != nil {
		return nil, false, err
	}

	r.Logger.Info("contact matched", zap.String("contact_id", contact.ID))
	return contact, false, nil
}

func (r *ContactResolver) lookup(ctx context.Context, email, phone string) (*entity.Contact, error) {
	if email := strings.TrimSpace(email); email != "" {
		c, err := r.Contacts.FindByEmail(ctx, email)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, entity.ErrContactNotFound) {
			return nil, err
		}
	}

	if strings.TrimSpace(phone) != "" {
		for _, variant := range PhoneVariants(phone) {
			c, err := r.Contacts.FindByPhone(ctx, variant)
			if err == nil {
				return c, nil
			}
			if !errors.Is(err, entity.ErrContactNotFound) {
				return nil, err
			}
		}
	}

	return nil, nil
}

// mirrorTag denormalizes the tag onto the contact's opportunities so the
// pipeline views can filter on it. Best-effort per opportunity.
func (r *ContactResolver) mirrorTag(ctx context.Context, contactID, tag string) error {
	if tag == "" {
		return nil
	}

	opportunities, err := r.Opportunities.FindByContactID(ctx, contactID)
	if err != nil {
		return err
	}

	for _, opp := range opportunities {
		if opp.HasTag(tag) {
			continue
		}
		if err := r.Opportunities.AddTag(ctx, opp.ID, tag); err != nil {
			r.Logger.Warn("opportunity tag update failed",
				zap.String("opportunity_id", opp.ID),
				zap.Error(err))
		}
	}
	return nil
}
