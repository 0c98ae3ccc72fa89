// Package handler implements the five scheduling services over a
// record store. Every method follows the same skeleton: authenticate
// (interceptor, unless public) -> validate -> locate -> ownership
// check -> store op -> shape response. The locate/own-check half lives
// in fetchOwned so the order stays fixed everywhere: a missing row is
// NotFound before ownership is ever considered.
package handler

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"slotbook-api/internal/auth"
	"slotbook-api/internal/middleware"
	"slotbook-api/internal/model"
	"slotbook-api/internal/schedpb"
	"slotbook-api/internal/store"
)

type Handler struct {
	schedpb.UnimplementedAccountServiceServer
	schedpb.UnimplementedSessionServiceServer
	schedpb.UnimplementedEventServiceServer
	schedpb.UnimplementedScheduleServiceServer
	schedpb.UnimplementedAppointmentServiceServer

	store    store.Store
	sessions *auth.Sessions
	validate *validator.Validate
}

func New(st store.Store, sessions *auth.Sessions) *Handler {
	v := validator.New()
	// report wire field names, not Go ones
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{store: st, sessions: sessions, validate: v}
}

// caller returns the authenticated account id, or "" on public paths
// reached without a token.
func caller(ctx context.Context) string {
	id, _ := ctx.Value(middleware.AccountIDKey).(string)
	return id
}

// check runs struct validation and folds the first failure into an
// InvalidArgument status.
func (h *Handler) check(req any) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return status.Error(codes.InvalidArgument, "invalid request")
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return status.Error(codes.InvalidArgument, fe.Field()+" required")
	}
	return status.Error(codes.InvalidArgument, "invalid "+fe.Field())
}

// storeErr folds a store failure into the closed status taxonomy.
// Anything unclassified becomes Internal with a generic message so no
// storage detail leaks.
func storeErr(err error, missing string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, missing)
	case errors.Is(err, store.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, "email already registered")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

var errNotOwner = status.Error(codes.PermissionDenied, "not the owner")

// fetchOwned locates a row and enforces that the caller owns it.
func fetchOwned[T any](ctx context.Context, get func(context.Context) (T, error), owner func(T) string, missing string) (T, error) {
	var zero T
	v, err := get(ctx)
	if err != nil {
		return zero, storeErr(err, missing)
	}
	if owner(v) != caller(ctx) {
		return zero, errNotOwner
	}
	return v, nil
}

func (h *Handler) ownedEvent(ctx context.Context, id string) (*model.Event, error) {
	return fetchOwned(ctx,
		func(ctx context.Context) (*model.Event, error) { return h.store.EventByID(ctx, id) },
		func(e *model.Event) string { return e.OwnerID },
		"event not found")
}

func (h *Handler) ownedSchedule(ctx context.Context, id int64) (*model.Schedule, error) {
	return fetchOwned(ctx,
		func(ctx context.Context) (*model.Schedule, error) { return h.store.ScheduleByID(ctx, id) },
		func(s *model.Schedule) string { return s.OwnerID },
		"schedule not found")
}

func (h *Handler) ownedAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	return fetchOwned(ctx,
		func(ctx context.Context) (*model.Appointment, error) { return h.store.AppointmentByID(ctx, id) },
		func(a *model.Appointment) string { return a.OwnerID },
		"appointment not found")
}
