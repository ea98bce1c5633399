package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"teamcalendar/internal/domain"
)

const pqForeignKeyViolation = "23503"

// storeError tags err with the domain error kind it belongs to.
func storeError(op string, err error) error {
	kind := domain.ErrQuery
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation:
		kind = domain.ErrInvalidReference
	case errors.Is(err, sql.ErrConnDone), errors.Is(err, driver.ErrBadConn):
		kind = domain.ErrConnection
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// requireAffected returns domain.ErrNotFound when result reports zero affected rows.
func requireAffected(result sql.Result) error {
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
