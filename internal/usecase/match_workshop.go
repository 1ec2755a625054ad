package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/galvanlaw/crm-intake/internal/entity"
)

const (
	// First-N-characters containment tolerates slight title rewordings
	// between the sign-up form and the calendar without requiring an exact
	// match. The constant is part of the matching contract; do not tune it
	// without migrating existing form copy.
	titleMatchPrefixLen = 20

	workshopScanLimit = 100
)

type WorkshopMatcher struct {
	Workshops     entity.WorkshopRepositoryInterface
	Registrations entity.RegistrationRepositoryInterface
	Logger        *zap.Logger
}

func NewWorkshopMatcher(
	workshops entity.WorkshopRepositoryInterface,
	registrations entity.RegistrationRepositoryInterface,
	logger *zap.Logger,
) *WorkshopMatcher {
	return &WorkshopMatcher{
		Workshops:     workshops,
		Registrations: registrations,
		Logger:        logger,
	}
}

// Match scans known sessions (bounded, list order, first hit wins) for the
// parsed descriptor and registers the contact on the matched session.
// Returns the matched workshop id and the created registration id. A
// duplicate or at-capacity registration leaves the registration id empty
// without failing; any other store failure propagates.
func (m *WorkshopMatcher) Match(ctx context.Context, info *WorkshopSessionInfo, contactID, guestCount string) (string, string, error) {
	sessions, err := m.Workshops.ListUpcoming(ctx, workshopScanLimit)
	if err != nil {
		return "", "", fmt.Errorf("listing workshops: %w", err)
	}

	parsedDate, dateKnown := ParseLooseDate(info.DateString)

	for _, ws := range sessions {
		if !titlesMatch(info.Title, ws.Title) {
			continue
		}
		if !locationsMatch(info.Location, ws.Location) {
			continue
		}
		// An unparseable date never blocks a match: false positives are
		// preferred over losing a registration.
		if dateKnown && !SameCalendarDay(parsedDate, ws.StartsAt) {
			continue
		}

		reg := &entity.WorkshopRegistration{
			ID:         uuid.New().String(),
			WorkshopID: ws.ID,
			ContactID:  contactID,
			Notes:      "Guests: " + guestCount,
			CreatedAt:  time.Now(),
		}
		if err := m.Registrations.Create(ctx, reg); err != nil {
			if errors.Is(err, entity.ErrAlreadyRegistered) || errors.Is(err, entity.ErrWorkshopFull) {
				m.Logger.Warn("registration not created",
					zap.String("workshop_id", ws.ID),
					zap.String("contact_id", contactID),
					zap.Error(err))
				return ws.ID, "", nil
			}
			return ws.ID, "", err
		}

		m.Logger.Info("registration created",
			zap.String("workshop_id", ws.ID),
			zap.String("registration_id", reg.ID))
		return ws.ID, reg.ID, nil
	}

	m.Logger.Info("no workshop matched",
		zap.String("title", info.Title),
		zap.String("date", info.DateString))
	return "", "", nil
}

// titlesMatch is true when either title contains the first 20 characters of
// the other, case-insensitive.
func titlesMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	return strings.Contains(a, titlePrefix(b)) || strings.Contains(b, titlePrefix(a))
}

func titlePrefix(s string) string {
	if len(s) > titleMatchPrefixLen {
		return s[:titleMatchPrefixLen]
	}
	return s
}

// locationsMatch is vacuously true when either side is empty; otherwise one
// side must contain the other, case-insensitive.
func locationsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
