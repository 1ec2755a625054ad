package entity

import (
	"context"
	"time"
)

// Entidade: Opportunity (pipeline de vendas, pertence a um Contact)
type Opportunity struct {
	ID        string   `json:"id"`
	ContactID string   `json:"contact_id"`
	Title     string   `json:"title"`
	Stage     string   `json:"stage"` // NEW, QUALIFIED, ENGAGED, WON, LOST
	Tags      []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Opportunity) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type OpportunityRepositoryInterface interface {
	FindByContactID(ctx context.Context, contactID string) ([]*Opportunity, error)

	// AddTag is a no-op when the opportunity already carries the tag.
	AddTag(ctx context.Context, opportunityID, tag string) error
}
