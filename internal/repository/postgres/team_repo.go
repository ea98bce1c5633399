package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"teamcalendar/internal/domain"
)

type teamRepository struct {
	db *DB
}

// NewTeamRepository returns a domain.TeamRepository implemented with Postgres.
func NewTeamRepository(db *DB) domain.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) List(ctx context.Context, includeDisabled bool) ([]*domain.Team, error) {
	rows, err := r.db.Conn(ctx).QueryContext(ctx,
		`SELECT team_id, name, primary_color, secondary_color, disabled
		 FROM teams
		 WHERE $1 OR NOT disabled
		 ORDER BY team_id`, includeDisabled)
	if err != nil {
		return nil, storeError("list teams", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.PrimaryColor, &t.SecondaryColor, &t.Disabled); err != nil {
			return nil, storeError("scan team", err)
		}
		teams = append(teams, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list teams", err)
	}
	return teams, nil
}

func (r *teamRepository) Create(ctx context.Context, t *domain.Team) error {
	err := r.db.Conn(ctx).QueryRowContext(ctx,
		`INSERT INTO teams (name, primary_color, secondary_color, disabled) VALUES ($1, $2, $3, FALSE) RETURNING team_id`,
		t.Name, t.PrimaryColor, t.SecondaryColor).Scan(&t.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("insert team: %w: no id returned", domain.ErrQuery)
	}
	if err != nil {
		return storeError("insert team", err)
	}
	t.Disabled = false
	return nil
}

func (r *teamRepository) Update(ctx context.Context, t *domain.Team) error {
	result, err := r.db.Conn(ctx).ExecContext(ctx,
		`UPDATE teams SET name = $1, primary_color = $2, secondary_color = $3, disabled = $4 WHERE team_id = $5`,
		t.Name, t.PrimaryColor, t.SecondaryColor, t.Disabled, t.ID)
	if err != nil {
		return storeError("update team", err)
	}
	return requireAffected(result)
}

func (r *teamRepository) Disable(ctx context.Context, id int64) error {
	result, err := r.db.Conn(ctx).ExecContext(ctx, `UPDATE teams SET disabled = TRUE WHERE team_id = $1`, id)
	if err != nil {
		return storeError("disable team", err)
	}
	return requireAffected(result)
}
