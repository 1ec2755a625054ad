package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/galvanlaw/crm-intake/internal/entity"
)

type RegistrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

// Create inserts a registration guarded by the session's capacity; zero
// capacity means unlimited. The (workshop_id, contact_id) unique constraint
// maps to ErrAlreadyRegistered, a capacity miss to ErrWorkshopFull. The
// matcher only hands us ids it just read, so a vanished workshop surfaces
// as ErrWorkshopFull too, which the caller tolerates the same way.
func (r *RegistrationRepository) Create(ctx context.Context, reg *entity.WorkshopRegistration) error {
	query := `
		INSERT INTO workshop_registrations (id, workshop_id, contact_id, notes, created_at)
		SELECT $1, w.id, $3, $4, $5
		FROM workshops w
		WHERE w.id = $2
		  AND (w.capacity <= 0 OR
			(SELECT COUNT(*) FROM workshop_registrations WHERE workshop_id = w.id) < w.capacity)
	`

	res, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.WorkshopID, reg.ContactID, reg.Notes, reg.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrAlreadyRegistered
		}
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrWorkshopFull
	}

	return nil
}
