package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"teamcalendar/internal/domain"
)

type eventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) domain.EventRepository {
	return &eventRepository{db: db}
}

// listEventsQuery returns one row per event. The team and the employees are aggregated
// into JSON so that several participants never duplicate the event row.
const listEventsQuery = `
	SELECT
		e.event_id,
		e.title,
		e.details,
		LOWER(e.period) AS start_at,
		UPPER(e.period) AS end_at,
		CASE
			WHEN t.team_id IS NULL THEN NULL
			ELSE JSONB_BUILD_OBJECT(
				'id', t.team_id,
				'name', t.name,
				'primaryColor', t.primary_color,
				'secondaryColor', t.secondary_color,
				'disabled', t.disabled
			)
		END AS team,
		COALESCE(
			JSONB_AGG(
				JSONB_BUILD_OBJECT(
					'id', em.employee_id,
					'name', em.name,
					'color', em.color,
					'disabled', em.disabled
				) ORDER BY em.employee_id
			) FILTER (WHERE em.employee_id IS NOT NULL),
			'[]'
		) AS employees
	FROM events e
	LEFT JOIN teams t ON t.team_id = e.team_id
	LEFT JOIN events__employees ee ON ee.event_id = e.event_id
	LEFT JOIN employees em ON em.employee_id = ee.employee_id
	WHERE TSTZRANGE($1::TIMESTAMPTZ, $2::TIMESTAMPTZ, '[]') && e.period
	GROUP BY e.event_id, t.team_id
	ORDER BY LOWER(e.period), e.event_id
`

func (r *eventRepository) List(ctx context.Context, q domain.EventsQuery) ([]*domain.Event, error) {
	rows, err := r.db.Conn(ctx).QueryContext(ctx, listEventsQuery, nullTime(q.Start), nullTime(q.End))
	if err != nil {
		return nil, storeError("list events", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var team, employees []byte
		if err := rows.Scan(&e.ID, &e.Title, &e.Details, &e.Start, &e.End, &team, &employees); err != nil {
			return nil, storeError("scan event", err)
		}
		if err := decodeEventRelations(e, team, employees); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list events", err)
	}
	return events, nil
}

func decodeEventRelations(e *domain.Event, team, employees []byte) error {
	if team != nil {
		e.Team = &domain.Team{}
		if err := json.Unmarshal(team, e.Team); err != nil {
			return fmt.Errorf("decode team of event %d: %w: %w (payload %s)", e.ID, domain.ErrDataConversion, err, team)
		}
	}
	e.Employees = make([]domain.Employee, 0)
	if err := json.Unmarshal(employees, &e.Employees); err != nil {
		return fmt.Errorf("decode employees of event %d: %w: %w (payload %s)", e.ID, domain.ErrDataConversion, err, employees)
	}
	if e.Employees == nil {
		return fmt.Errorf("decode employees of event %d: %w: null payload", e.ID, domain.ErrDataConversion)
	}
	return nil
}

func (r *eventRepository) Create(ctx context.Context, in *domain.EventInput) (int64, error) {
	query := `
		INSERT INTO events (title, details, period, team_id)
		VALUES ($1, $2, TSTZRANGE($3, $4, '[]'), $5)
		RETURNING event_id
	`
	var id int64
	err := r.db.Conn(ctx).QueryRowContext(ctx, query, in.Title, in.Details, in.Start, in.End, nullInt64(in.TeamID)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("insert event: %w: no id returned", domain.ErrQuery)
	}
	if err != nil {
		return 0, storeError("insert event", err)
	}
	return id, nil
}

func (r *eventRepository) Update(ctx context.Context, in *domain.EventInput) error {
	query := `
		UPDATE events
		SET title = $1, details = $2, period = TSTZRANGE($3, $4, '[]'), team_id = $5
		WHERE event_id = $6
	`
	result, err := r.db.Conn(ctx).ExecContext(ctx, query, in.Title, in.Details, in.Start, in.End, nullInt64(in.TeamID), in.ID)
	if err != nil {
		return storeError("update event", err)
	}
	return requireAffected(result)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE event_id = $1`
	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return storeError("delete event", err)
	}
	return requireAffected(result)
}

func (r *eventRepository) ClearEmployees(ctx context.Context, eventID int64) error {
	if _, err := r.db.Conn(ctx).ExecContext(ctx, `DELETE FROM events__employees WHERE event_id = $1`, eventID); err != nil {
		return storeError("clear event employees", err)
	}
	return nil
}

func (r *eventRepository) AddEmployees(ctx context.Context, eventID int64, employeeIDs []int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO events__employees (event_id, employee_id)
		SELECT $1, UNNEST($2::BIGINT[])
	`
	if _, err := r.db.Conn(ctx).ExecContext(ctx, query, eventID, pq.Array(employeeIDs)); err != nil {
		return storeError("add event employees", err)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
