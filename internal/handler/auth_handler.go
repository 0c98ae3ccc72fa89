package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"slotbook-api/internal/schedpb"
)

func (h *Handler) Login(ctx context.Context, req *schedpb.LoginRequest) (*schedpb.LoginResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	a, err := h.store.AccountByEmail(ctx, req.Email)
	if err != nil {
		// same answer for unknown email and wrong secret
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if a.Secret != req.Secret {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, err := h.sessions.Issue(ctx, a.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &schedpb.LoginResponse{Token: tok, Account: accountView(a)}, nil
}

func (h *Handler) Logout(ctx context.Context, req *schedpb.LogoutRequest) (*schedpb.LogoutResponse, error) {
	if err := h.sessions.Revoke(ctx, caller(ctx)); err != nil {
		return nil, storeErr(err, "account not found")
	}
	return &schedpb.LogoutResponse{}, nil
}
