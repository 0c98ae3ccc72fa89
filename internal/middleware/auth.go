package middleware

import (
	"context"
	"errors"
	"strings"

	"slotbook-api/internal/auth"
	"slotbook-api/internal/model"
	"slotbook-api/internal/schedpb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const AccountIDKey ctxKey = "aid"

// TokenResolver maps a bearer token to its account.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*model.Account, error)
}

// skip auth for these
var open = map[string]bool{
	schedpb.AccountService_Register_FullMethodName:     true,
	schedpb.SessionService_Login_FullMethodName:        true,
	schedpb.ScheduleService_GetSchedule_FullMethodName: true,
	grpc_health_v1.Health_Check_FullMethodName:         true,
}

// Auth resolves the bearer token on every call and rejects protected
// methods without a valid one. Open methods pass through, but a valid
// token still attaches the caller so public reads can report
// ownership.
func Auth(sessions TokenResolver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		tok := bearer(ctx)

		if open[info.FullMethod] {
			if tok != "" {
				if acct, err := sessions.Resolve(ctx, tok); err == nil {
					ctx = context.WithValue(ctx, AccountIDKey, acct.ID)
				}
			}
			return next(ctx, req)
		}

		if tok == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		acct, err := sessions.Resolve(ctx, tok)
		if err != nil {
			if errors.Is(err, auth.ErrBadToken) {
				return nil, status.Error(codes.Unauthenticated, "bad token")
			}
			return nil, status.Error(codes.Internal, "internal error")
		}

		ctx = context.WithValue(ctx, AccountIDKey, acct.ID)
		return next(ctx, req)
	}
}

// bearer pulls the token from "authorization: Bearer <token>". The
// prefix match is exact; anything else reads as no credential.
func bearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	tok, ok := strings.CutPrefix(vals[0], "Bearer ")
	if !ok {
		return ""
	}
	return tok
}
