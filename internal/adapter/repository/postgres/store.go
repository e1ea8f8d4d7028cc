// Package postgres implements the repository ports on PostgreSQL through pgx.
//
// Repository calls made with a context returned by Store.WithinTx run on that
// transaction; every other call runs on the pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/retry"
)

// uniqueViolation is the SQLSTATE raised when a unique index rejects a row.
const uniqueViolation = "23505"

// querier is implemented by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is implemented by pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type txKey struct{}

// Store owns the connection and hands out repositories bound to it.
type Store struct {
	db DB
}

// NewStore creates a Store on db.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Repositories returns the repository ports backed by s.
func (s *Store) Repositories() domain.Repositories {
	return domain.Repositories{
		Flights:      &FlightRepository{store: s},
		Tickets:      &TicketRepository{store: s},
		Reservations: &ReservationRepository{store: s},
		Users:        &UserRepository{store: s},
		Transactor:   s,
	}
}

// WithinTx implements domain.Transactor. Nested calls join the outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rbErr).Msg("Transaction rollback failed")
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// conn returns the transaction carried by ctx, or the pool.
func (s *Store) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return s.db
}

// PoolOptions configures Connect.
type PoolOptions struct {
	URL            string
	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
	Retry          retry.Config
}

// Connect opens a pool and pings it, retrying while the database comes up.
func Connect(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		cfg.MinConns = opts.MinConns
	}
	if opts.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	err = retry.Do(ctx, func() error {
		return pool.Ping(ctx)
	}, opts.Retry)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func parsePrice(amount, currency string) (domain.Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Price{}, fmt.Errorf("parse price %q: %w", amount, err)
	}
	return domain.NewPrice(d, currency)
}

var (
	_ domain.Transactor = (*Store)(nil)
	_ DB                = (*pgxpool.Pool)(nil)
)
