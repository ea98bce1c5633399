package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	_ "github.com/lib/pq"

	"teamcalendar/internal/domain"
)

// Options configures the connection pool.
type Options struct {
	MaxOpenConns int
	RetryDelay   time.Duration
}

// Open connects to Postgres and keeps retrying the first ping every RetryDelay until it
// succeeds or ctx is done.
func Open(ctx context.Context, dsn string, opts Options, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w: %w", domain.ErrConnection, err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}

	for attempt := 1; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		logger.Error("failed to ping database", slog.Int("attempt", attempt), slog.Any("error", err))
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("connect database: %w: %w", domain.ErrConnection, errors.Join(err, ctx.Err()))
		case <-time.After(opts.RetryDelay):
		}
	}
}

// DB hands repositories the transaction stored in the context, or the pool when there is none.
type DB struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
}

func NewDB(db *sql.DB) *DB {
	return &DB{
		db:     db,
		getter: trmsql.DefaultCtxGetter,
	}
}

func (db *DB) Conn(ctx context.Context) trmsql.Tr {
	return db.getter.DefaultTrOrDB(ctx, db.db)
}

// Ping checks that a connection can be acquired.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w: %w", domain.ErrConnection, err)
	}
	return nil
}

// TransactionManager implements domain.TransactionManager on top of go-transaction-manager.
type TransactionManager struct {
	manager *manager.Manager
}

func NewTransactionManager(db *sql.DB) (*TransactionManager, error) {
	trManager, err := manager.New(trmsql.NewDefaultFactory(db))
	if err != nil {
		return nil, err
	}

	return &TransactionManager{manager: trManager}, nil
}

// Do runs fn in a transaction. Errors returned by fn come back unchanged; a failure to begin
// or commit is reported as domain.ErrTransaction.
func (tm *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var fnErr error
	err := tm.manager.Do(ctx, func(txCtx context.Context) error {
		fnErr = fn(txCtx)
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil && errors.Is(err, fnErr) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrTransaction, err)
}
