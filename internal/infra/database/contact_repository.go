package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/galvanlaw/crm-intake/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

const contactColumns = `
	id, first_name, last_name, email, phone, notes, tags,
	marital_status, florida_resident, created_at, updated_at`

func (r *ContactRepository) FindByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	query := `SELECT` + contactColumns + ` FROM contacts WHERE email = $1`
	return r.findOne(ctx, query, email)
}

func (r *ContactRepository) FindByPhone(ctx context.Context, phone string) (*entity.Contact, error) {
	query := `SELECT` + contactColumns + ` FROM contacts WHERE phone = $1`
	return r.findOne(ctx, query, phone)
}

func (r *ContactRepository) findOne(ctx context.Context, query string, arg any) (*entity.Contact, error) {
	var (
		c            entity.Contact
		email, phone sql.NullString
		tags         pq.StringArray
	)

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&c.ID, &c.FirstName, &c.LastName, &email, &phone, &c.Notes, &tags,
		&c.MaritalStatus, &c.FloridaResident, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}

	c.Email = email.String
	c.Phone = phone.String
	c.Tags = tags
	return &c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, first_name, last_name, email, phone, notes, tags,
			marital_status, florida_resident, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.FirstName, c.LastName,
		nullString(c.Email), nullString(c.Phone),
		c.Notes, pq.Array(c.Tags),
		c.MaritalStatus, c.FloridaResident,
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = $2, last_name = $3, notes = $4, tags = $5,
			marital_status = $6, florida_resident = $7, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Notes, pq.Array(c.Tags),
		c.MaritalStatus, c.FloridaResident,
	)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
