// Package postgres backs the store contract with pgx. Every operation
// is a single statement (or a single-row RETURNING round trip); the
// schema carries no foreign keys, so deletes never cascade and
// references are allowed to dangle.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"slotbook-api/internal/store"
)

type Store struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

var _ store.Store = (*Store)(nil)

func New(pool *pgxpool.Pool, log zerolog.Logger) *Store {
	return &Store{pool: pool, log: log}
}

// classify maps pgx errors onto the store sentinels. Misses and the
// known email constraint are domain outcomes; anything else is an
// infrastructure failure and gets logged before passing through.
func (s *Store) classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "accounts_email_key" {
		return store.ErrEmailTaken
	}
	s.log.Error().Err(err).Str("op", op).Msg("query failed")
	return err
}
