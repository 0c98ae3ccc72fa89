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

func (h *Handler) CreateAppointment(ctx context.Context, req *schedpb.CreateAppointmentRequest) (*schedpb.CreateAppointmentResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	// the appointment belongs to the event's owner, never the invitee;
	// invitees hold no account
	ev, err := h.store.EventByID(ctx, req.EventId)
	if err != nil {
		return nil, storeErr(err, "event not found")
	}
	if ev.OwnerID != caller(ctx) {
		return nil, errNotOwner
	}

	a := &model.Appointment{
		ID:           uuid.New().String(),
		EventID:      ev.ID,
		OwnerID:      ev.OwnerID,
		InviteeEmail: req.InviteeEmail,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       "scheduled",
	}

	if err := h.store.CreateAppointment(ctx, a); err != nil {
		return nil, storeErr(err, "appointment not found")
	}

	return &schedpb.CreateAppointmentResponse{Appointment: appointmentView(a)}, nil
}

func (h *Handler) GetAppointment(ctx context.Context, req *schedpb.GetAppointmentRequest) (*schedpb.GetAppointmentResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	a, err := h.store.AppointmentByID(ctx, req.Id)
	if err != nil {
		return nil, storeErr(err, "appointment not found")
	}

	return &schedpb.GetAppointmentResponse{
		Appointment: appointmentView(a),
		IsOwner:     a.OwnerID == caller(ctx),
	}, nil
}

func (h *Handler) ListAppointments(ctx context.Context, req *schedpb.ListAppointmentsRequest) (*schedpb.ListAppointmentsResponse, error) {
	appts, err := h.store.ListAppointmentsByOwner(ctx, caller(ctx))
	if err != nil {
		return nil, storeErr(err, "appointment not found")
	}

	out := make([]*schedpb.Appointment, len(appts))
	for i := range appts {
		out[i] = appointmentView(&appts[i])
	}
	return &schedpb.ListAppointmentsResponse{Appointments: out}, nil
}

func (h *Handler) UpdateAppointment(ctx context.Context, req *schedpb.UpdateAppointmentRequest) (*schedpb.UpdateAppointmentResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	if req.StartTime == "" && req.EndTime == "" && req.Status == "" {
		return nil, status.Error(codes.InvalidArgument, "nothing to update")
	}

	if _, err := h.ownedAppointment(ctx, req.Id); err != nil {
		return nil, err
	}

	a, err := h.store.UpdateAppointment(ctx, req.Id, store.AppointmentUpdate{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
	})
	if err != nil {
		return nil, storeErr(err, "appointment not found")
	}

	return &schedpb.UpdateAppointmentResponse{Appointment: appointmentView(a)}, nil
}

func (h *Handler) DeleteAppointment(ctx context.Context, req *schedpb.DeleteAppointmentRequest) (*schedpb.DeleteAppointmentResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	if _, err := h.ownedAppointment(ctx, req.Id); err != nil {
		return nil, err
	}

	if err := h.store.DeleteAppointment(ctx, req.Id); err != nil {
		return nil, storeErr(err, "appointment not found")
	}

	return &schedpb.DeleteAppointmentResponse{}, nil
}

// appointmentView carries the caller-supplied timestamps back out
// verbatim; the core never parses them.
func appointmentView(a *model.Appointment) *schedpb.Appointment {
	return &schedpb.Appointment{
		Id:           a.ID,
		EventId:      a.EventID,
		OwnerId:      a.OwnerID,
		InviteeEmail: a.InviteeEmail,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Status:       a.Status,
	}
}
