package app

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/poofware/revenue-service/internal/utils"
)

// Store is the injected store-client handle. The pool is created lazily:
// EnsureReady is idempotent and a failure leaves the handle unset, so the
// next caller simply retries. Store satisfies repositories.DB, returning
// utils.ErrStoreUnavailable from query methods while the pool is down.
type Store struct {
	url string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func NewStore(url string) *Store {
	return &Store{url: url}
}

// EnsureReady initializes the underlying pool if it is not up yet.
func (s *Store) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool != nil {
		return nil
	}

	cfg, err := pgxpool.ParseConfig(s.url)
	if err != nil {
		return err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return err
	}
	s.pool = pool
	return nil
}

// Ready reports whether the pool has been initialized.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool != nil
}

func (s *Store) Ping(ctx context.Context) error {
	pool, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

func (s *Store) acquire(ctx context.Context) (*pgxpool.Pool, error) {
	if err := s.EnsureReady(ctx); err != nil {
		utils.Logger.WithError(err).Warn("Store initialization failed")
		return nil, utils.ErrStoreUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool, nil
}

/* ------------------------------------------------------------------
   repositories.DB delegation
------------------------------------------------------------------ */

func (s *Store) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Exec(ctx, sql, arguments...)
}

func (s *Store) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

func (s *Store) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	pool, err := s.acquire(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

// errRow lets QueryRow keep its errorless signature: the failure surfaces on
// Scan, the same way pgx reports its own row errors.
type errRow struct {
	err error
}

func (r errRow) Scan(dest ...interface{}) error {
	return r.err
}
