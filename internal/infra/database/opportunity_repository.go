package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/galvanlaw/crm-intake/internal/entity"
)

type OpportunityRepository struct {
	DB *sql.DB
}

func NewOpportunityRepository(db *sql.DB) *OpportunityRepository {
	return &OpportunityRepository{DB: db}
}

func (r *OpportunityRepository) FindByContactID(ctx context.Context, contactID string) ([]*entity.Opportunity, error) {
	query := `
		SELECT id, contact_id, title, stage, tags, created_at, updated_at
		FROM opportunities
		WHERE contact_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opportunities []*entity.Opportunity
	for rows.Next() {
		var (
			o    entity.Opportunity
			tags pq.StringArray
		)
		err := rows.Scan(&o.ID, &o.ContactID, &o.Title, &o.Stage, &tags, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		o.Tags = tags
		opportunities = append(opportunities, &o)
	}

	return opportunities, rows.Err()
}

// AddTag appends in SQL; the ANY guard makes it a no-op when the tag is
// already present, so replays stay idempotent.
func (r *OpportunityRepository) AddTag(ctx context.Context, opportunityID, tag string) error {
	query := `
		UPDATE opportunities
		SET tags = array_append(tags, $2), updated_at = NOW()
		WHERE id = $1 AND NOT ($2 = ANY(tags))
	`

	_, err := r.DB.ExecContext(ctx, query, opportunityID, tag)
	return err
}
