package entity

import (
	"context"
	"time"
)

// Entidade: Workshop (seminário agendado). Read-only para o fluxo de intake.
type Workshop struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location,omitempty"`
	StartsAt time.Time `json:"starts_at"`
	Capacity int       `json:"capacity"`

	CreatedAt time.Time `json:"created_at"`
}

// WorkshopRegistration liga um Contact a um Workshop.
type WorkshopRegistration struct {
	ID         string    `json:"id"`
	WorkshopID string    `json:"workshop_id"`
	ContactID  string    `json:"contact_id"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type WorkshopRepositoryInterface interface {
	// ListUpcoming returns at most limit sessions ordered by start date.
	ListUpcoming(ctx context.Context, limit int) ([]*Workshop, error)
}

type RegistrationRepositoryInterface interface {
	// Create returns ErrAlreadyRegistered on a duplicate (contact, workshop)
	// pair and ErrWorkshopFull when the session is at capacity.
	Create(ctx context.Context, reg *WorkshopRegistration) error
}
