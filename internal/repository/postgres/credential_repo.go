package postgres

import (
	"context"
	"database/sql"
	"errors"

	"teamcalendar/internal/domain"
)

// credentialID is the primary key of the single credential row.
const credentialID = 1

type credentialRepository struct {
	db *DB
}

// NewCredentialRepository returns a domain.CredentialRepository implemented with Postgres.
func NewCredentialRepository(db *DB) domain.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Get(ctx context.Context) (*domain.Credential, error) {
	return r.get(ctx, `SELECT hash, salt, updated_at FROM credentials WHERE id = $1`)
}

func (r *credentialRepository) GetForUpdate(ctx context.Context) (*domain.Credential, error) {
	return r.get(ctx, `SELECT hash, salt, updated_at FROM credentials WHERE id = $1 FOR UPDATE`)
}

func (r *credentialRepository) get(ctx context.Context, query string) (*domain.Credential, error) {
	c := &domain.Credential{}
	err := r.db.Conn(ctx).QueryRowContext(ctx, query, credentialID).Scan(&c.Hash, &c.Salt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError("get credential", err)
	}
	return c, nil
}

func (r *credentialRepository) CreateIfMissing(ctx context.Context, c *domain.Credential) (bool, error) {
	query := `
		INSERT INTO credentials (id, hash, salt, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	result, err := r.db.Conn(ctx).ExecContext(ctx, query, credentialID, c.Hash, c.Salt, c.UpdatedAt)
	if err != nil {
		return false, storeError("insert credential", err)
	}
	rows, _ := result.RowsAffected()
	return rows == 1, nil
}

func (r *credentialRepository) Update(ctx context.Context, c *domain.Credential) error {
	query := `UPDATE credentials SET hash = $2, salt = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.Conn(ctx).ExecContext(ctx, query, credentialID, c.Hash, c.Salt, c.UpdatedAt)
	if err != nil {
		return storeError("update credential", err)
	}
	return requireAffected(result)
}
