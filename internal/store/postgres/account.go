package postgres

import (
	"context"
	"fmt"
	"strings"

	"slotbook-api/internal/model"
	"slotbook-api/internal/store"
)

const accountCols = `id, name, email, secret, timezone, session_token, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (*model.Account, error) {
	a := &model.Account{}
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Secret, &a.Timezone,
		&a.SessionToken, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *model.Account) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (id, name, email, secret, timezone) VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.Name, a.Email, a.Secret, a.Timezone,
	)
	return s.classify("account.create", err)
}

func (s *Store) AccountByID(ctx context.Context, id string) (*model.Account, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM accounts WHERE id = $1`, id))
	if err != nil {
		return nil, s.classify("account.by_id", err)
	}
	return a, nil
}

func (s *Store) AccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	// case-sensitive match: Alice@x and alice@x are distinct rows
	a, err := scanAccount(s.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM accounts WHERE email = $1`, email))
	if err != nil {
		return nil, s.classify("account.by_email", err)
	}
	return a, nil
}

func (s *Store) AccountByToken(ctx context.Context, tok string) (*model.Account, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM accounts WHERE session_token = $1`, tok))
	if err != nil {
		return nil, s.classify("account.by_token", err)
	}
	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, offset, limit int) ([]model.Account, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+accountCols+` FROM accounts ORDER BY created_at, id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, s.classify("account.list", err)
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Secret, &a.Timezone,
			&a.SessionToken, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, s.classify("account.list", err)
		}
		out = append(out, a)
	}
	return out, s.classify("account.list", rows.Err())
}

func (s *Store) UpdateAccount(ctx context.Context, id string, upd store.AccountUpdate) (*model.Account, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col, val string) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != "" {
		add("name", upd.Name)
	}
	if upd.Timezone != "" {
		add("timezone", upd.Timezone)
	}
	if upd.Secret != "" {
		add("secret", upd.Secret)
	}

	a, err := scanAccount(s.pool.QueryRow(ctx,
		`UPDATE accounts SET `+strings.Join(set, ", ")+` WHERE id = $1 RETURNING `+accountCols,
		args...,
	))
	if err != nil {
		return nil, s.classify("account.update", err)
	}
	return a, nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return s.classify("account.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SetSessionToken(ctx context.Context, id string, tok *string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE accounts SET session_token = $2, updated_at = NOW() WHERE id = $1`,
		id, tok,
	)
	if err != nil {
		return s.classify("account.set_token", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
