package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"slotbook-api/internal/model"
	"slotbook-api/internal/schedpb"
	"slotbook-api/internal/store"
)

func (h *Handler) Register(ctx context.Context, req *schedpb.RegisterRequest) (*schedpb.RegisterResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	a := &model.Account{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Secret:   req.Secret,
		Timezone: req.Timezone,
	}

	if err := h.store.CreateAccount(ctx, a); err != nil {
		return nil, storeErr(err, "account not found")
	}

	return &schedpb.RegisterResponse{Account: accountView(a)}, nil
}

func (h *Handler) GetAccount(ctx context.Context, req *schedpb.GetAccountRequest) (*schedpb.GetAccountResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	a, err := h.store.AccountByID(ctx, req.Id)
	if err != nil {
		return nil, storeErr(err, "account not found")
	}

	return &schedpb.GetAccountResponse{Account: accountView(a)}, nil
}

func (h *Handler) ListAccounts(ctx context.Context, req *schedpb.ListAccountsRequest) (*schedpb.ListAccountsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.PageSize
	if size < 1 {
		size = 20
	}

	accts, err := h.store.ListAccounts(ctx, int(page-1)*int(size), int(size))
	if err != nil {
		return nil, storeErr(err, "account not found")
	}

	out := make([]*schedpb.Account, len(accts))
	for i := range accts {
		out[i] = accountView(&accts[i])
	}
	// total echoes the page length, not the row count; kept as shipped
	return &schedpb.ListAccountsResponse{
		Accounts: out,
		Page:     page,
		PageSize: size,
		Total:    int32(len(out)),
	}, nil
}

func (h *Handler) UpdateAccount(ctx context.Context, req *schedpb.UpdateAccountRequest) (*schedpb.UpdateAccountResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	if req.Name == "" && req.Timezone == "" && req.Secret == "" {
		return nil, status.Error(codes.InvalidArgument, "nothing to update")
	}

	// accounts are self-service: the target id is the ownership key,
	// compared directly with no existence probe
	if req.Id != caller(ctx) {
		return nil, errNotOwner
	}

	a, err := h.store.UpdateAccount(ctx, req.Id, store.AccountUpdate{
		Name:     req.Name,
		Timezone: req.Timezone,
		Secret:   req.Secret,
	})
	if err != nil {
		return nil, storeErr(err, "account not found")
	}

	return &schedpb.UpdateAccountResponse{Account: accountView(a)}, nil
}

func (h *Handler) DeleteAccount(ctx context.Context, req *schedpb.DeleteAccountRequest) (*schedpb.DeleteAccountResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	if req.Id != caller(ctx) {
		return nil, errNotOwner
	}

	// no cascade: events, schedules and appointments owned by the
	// account stay behind with dangling owner ids
	if err := h.store.DeleteAccount(ctx, req.Id); err != nil {
		return nil, storeErr(err, "account not found")
	}

	return &schedpb.DeleteAccountResponse{}, nil
}

// accountView shapes an account for the wire: never the secret, never
// the token, optional fields as empty strings.
func accountView(a *model.Account) *schedpb.Account {
	return &schedpb.Account{
		Id:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Timezone: a.Timezone,
	}
}
