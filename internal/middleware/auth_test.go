package middleware_test

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"slotbook-api/internal/auth"
	"slotbook-api/internal/middleware"
	"slotbook-api/internal/model"
	"slotbook-api/internal/schedpb"
)

const (
	goodToken = "good-token"
	sickToken = "store-down"
)

type fakeSessions struct{}

func (fakeSessions) Resolve(_ context.Context, tok string) (*model.Account, error) {
	switch tok {
	case goodToken:
		return &model.Account{ID: "acct-1"}, nil
	case sickToken:
		return nil, errors.New("connection refused")
	default:
		return nil, auth.ErrBadToken
	}
}

// call runs the interceptor against a handler that records the
// identity it was given.
func call(t *testing.T, ctx context.Context, method string) (id any, err error) {
	t.Helper()
	interceptor := middleware.Auth(fakeSessions{})
	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method},
		func(ctx context.Context, _ any) (any, error) {
			id = ctx.Value(middleware.AccountIDKey)
			return nil, nil
		})
	return id, err
}

func headerCtx(value string) context.Context {
	md := metadata.Pairs("authorization", value)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestAuthProtectedMethod(t *testing.T) {
	method := schedpb.EventService_ListEvents_FullMethodName

	tests := []struct {
		name string
		ctx  context.Context
		msg  string
	}{
		{"no metadata", context.Background(), "no token"},
		{"no header", metadata.NewIncomingContext(context.Background(), metadata.MD{}), "no token"},
		{"wrong scheme", headerCtx("Basic " + goodToken), "no token"},
		{"lowercase scheme", headerCtx("bearer " + goodToken), "no token"},
		{"bare token", headerCtx(goodToken), "no token"},
		{"scheme only", headerCtx("Bearer"), "no token"},
		{"unknown token", headerCtx("Bearer nope"), "bad token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := call(t, tt.ctx, method)
			if err == nil {
				t.Fatal("expected error")
			}
			if id != nil {
				t.Error("handler ran despite rejection")
			}
			s, _ := status.FromError(err)
			if s.Code() != codes.Unauthenticated {
				t.Errorf("expected Unauthenticated, got %v", s.Code())
			}
			if s.Message() != tt.msg {
				t.Errorf("expected message %q, got %q", tt.msg, s.Message())
			}
		})
	}
}

func TestAuthValidToken(t *testing.T) {
	id, err := call(t, headerCtx("Bearer "+goodToken), schedpb.EventService_ListEvents_FullMethodName)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if id != "acct-1" {
		t.Errorf("expected caller acct-1, got %v", id)
	}
}

func TestAuthResolverFailure(t *testing.T) {
	// a store outage is not the caller's fault
	_, err := call(t, headerCtx("Bearer "+sickToken), schedpb.EventService_ListEvents_FullMethodName)
	s, _ := status.FromError(err)
	if s.Code() != codes.Internal {
		t.Errorf("expected Internal, got %v", s.Code())
	}
}

func TestAuthOpenMethods(t *testing.T) {
	methods := []string{
		schedpb.AccountService_Register_FullMethodName,
		schedpb.SessionService_Login_FullMethodName,
		schedpb.ScheduleService_GetSchedule_FullMethodName,
		grpc_health_v1.Health_Check_FullMethodName,
	}

	for _, m := range methods {
		id, err := call(t, context.Background(), m)
		if err != nil {
			t.Errorf("%s should pass without a token: %v", m, err)
		}
		if id != nil {
			t.Errorf("%s attached an identity from nowhere: %v", m, id)
		}
	}
}

func TestAuthOpenMethodIdentity(t *testing.T) {
	method := schedpb.ScheduleService_GetSchedule_FullMethodName

	// a valid token attaches the caller even on an open method
	id, err := call(t, headerCtx("Bearer "+goodToken), method)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if id != "acct-1" {
		t.Errorf("expected caller acct-1, got %v", id)
	}

	// a broken token degrades to anonymous instead of failing
	id, err = call(t, headerCtx("Bearer nope"), method)
	if err != nil {
		t.Fatalf("broken token on open method: %v", err)
	}
	if id != nil {
		t.Errorf("expected anonymous, got %v", id)
	}
}
