package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"teamcalendar/internal/domain"
)

type employeeRepository struct {
	db *DB
}

func NewEmployeeRepository(db *DB) domain.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context, includeDisabled bool) ([]*domain.Employee, error) {
	query := `
		SELECT employee_id, name, color, disabled
		FROM employees
		WHERE $1 OR NOT disabled
		ORDER BY employee_id
	`
	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, includeDisabled)
	if err != nil {
		return nil, storeError("list employees", err)
	}
	defer rows.Close()
	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e := &domain.Employee{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Color, &e.Disabled); err != nil {
			return nil, storeError("scan employee", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list employees", err)
	}
	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `
		INSERT INTO employees (name, color, disabled)
		VALUES ($1, $2, FALSE)
		RETURNING employee_id
	`
	err := r.db.Conn(ctx).QueryRowContext(ctx, query, e.Name, e.Color).Scan(&e.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("insert employee: %w: no id returned", domain.ErrQuery)
	}
	if err != nil {
		return storeError("insert employee", err)
	}
	e.Disabled = false
	return nil
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, color = $2, disabled = $3
		WHERE employee_id = $4
	`
	result, err := r.db.Conn(ctx).ExecContext(ctx, query, e.Name, e.Color, e.Disabled, e.ID)
	if err != nil {
		return storeError("update employee", err)
	}
	return requireAffected(result)
}

func (r *employeeRepository) Disable(ctx context.Context, id int64) error {
	query := `UPDATE employees SET disabled = TRUE WHERE employee_id = $1`
	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return storeError("disable employee", err)
	}
	return requireAffected(result)
}
