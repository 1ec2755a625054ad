package database

import (
	"context"
	"database/sql"

	"github.com/galvanlaw/crm-intake/internal/entity"
)

type WorkshopRepository struct {
	DB *sql.DB
}

func NewWorkshopRepository(db *sql.DB) *WorkshopRepository {
	return &WorkshopRepository{DB: db}
}

func (r *WorkshopRepository) ListUpcoming(ctx context.Context, limit int) ([]*entity.Workshop, error) {
	query := `
		SELECT id, title, location, starts_at, capacity, created_at
		FROM workshops
		ORDER BY starts_at
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workshops []*entity.Workshop
	for rows.Next() {
		var (
			w        entity.Workshop
			location sql.NullString
		)
		err := rows.Scan(&w.ID, &w.Title, &location, &w.StartsAt, &w.Capacity, &w.CreatedAt)
		if err != nil {
			return nil, err
		}
		w.Location = location.String
		workshops = append(workshops, &w)
	}

	return workshops, rows.Err()
}
