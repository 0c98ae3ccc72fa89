// Package auth mints and resolves the opaque session tokens that
// authenticate API calls. A token is 32 bytes of crypto/rand rendered
// as hex and stored verbatim on the account row; whoever presents it
// is the account. Issuing a new token replaces the old one, so an
// account holds at most one live session.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"slotbook-api/internal/model"
	"slotbook-api/internal/store"
)

var ErrBadToken = errors.New("invalid token")

// NewToken returns a fresh 256-bit session token.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Sessions binds token lifecycle to the account store.
type Sessions struct {
	accounts store.AccountStore
}

func NewSessions(accounts store.AccountStore) *Sessions {
	return &Sessions{accounts: accounts}
}

// Issue mints a token for the account and persists it, displacing
// whatever token the account held before.
func (s *Sessions) Issue(ctx context.Context, accountID string) (string, error) {
	tok, err := NewToken()
	if err != nil {
		return "", err
	}
	if err := s.accounts.SetSessionToken(ctx, accountID, &tok); err != nil {
		return "", err
	}
	return tok, nil
}

// Revoke drops the account's live token, if any.
func (s *Sessions) Revoke(ctx context.Context, accountID string) error {
	return s.accounts.SetSessionToken(ctx, accountID, nil)
}

// Resolve maps a presented token back to its account. Accounts without
// a live session hold no token, so the empty string never resolves.
func (s *Sessions) Resolve(ctx context.Context, token string) (*model.Account, error) {
	if token == "" {
		return nil, ErrBadToken
	}
	acct, err := s.accounts.AccountByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBadToken
		}
		return nil, err
	}
	return acct, nil
}
