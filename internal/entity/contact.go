package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entidade: Contact (pessoa no CRM)
type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email e Phone são opcionais; Phone é guardado normalizado (+1XXXXXXXXXX)
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// Notes é um log append-only; Tags é um conjunto sem duplicatas
	Notes string   `json:"notes,omitempty"`
	Tags  []string `json:"tags,omitempty"`

	MaritalStatus   string `json:"marital_status,omitempty"`
	FloridaResident string `json:"florida_resident,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewContact(firstName, lastName, email, phone string) *Contact {
	return &Contact{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// AppendNote adds a note to the append-only log, separated by a blank line.
// Empty notes are ignored.
func (c *Contact) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if c.Notes == "" {
		c.Notes = note
		return
	}
	c.Notes = c.Notes + "\n\n" + note
}

// AddTag unions the tag into the tag set. Returns false when the tag was
// already present or empty (idempotent).
func (c *Contact) AddTag(tag string) bool {
	if tag == "" || c.HasTag(tag) {
		return false
	}
	c.Tags = append(c.Tags, tag)
	return true
}

func (c *Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type ContactRepositoryInterface interface {
	// FindByEmail / FindByPhone return ErrContactNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*Contact, error)
	FindByPhone(ctx context.Context, phone string) (*Contact, error)

	Create(ctx context.Context, c *Contact) error

	// Update persists notes, tags and demographic fields.
	Update(ctx context.Context, c *Contact) error
}
