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

func (h *Handler) CreateEvent(ctx context.Context, req *schedpb.CreateEventRequest) (*schedpb.CreateEventResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	e := &model.Event{
		ID:              uuid.New().String(),
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		Color:           req.Color,
		OwnerID:         caller(ctx),
	}

	if err := h.store.CreateEvent(ctx, e); err != nil {
		return nil, storeErr(err, "event not found")
	}

	return &schedpb.CreateEventResponse{Event: eventView(e)}, nil
}

func (h *Handler) GetEvent(ctx context.Context, req *schedpb.GetEventRequest) (*schedpb.GetEventResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	e, err := h.store.EventByID(ctx, req.Id)
	if err != nil {
		return nil, storeErr(err, "event not found")
	}

	return &schedpb.GetEventResponse{
		Event:   eventView(e),
		IsOwner: e.OwnerID == caller(ctx),
	}, nil
}

func (h *Handler) ListEvents(ctx context.Context, req *schedpb.ListEventsRequest) (*schedpb.ListEventsResponse, error) {
	events, err := h.store.ListEventsByOwner(ctx, caller(ctx))
	if err != nil {
		return nil, storeErr(err, "event not found")
	}

	out := make([]*schedpb.Event, len(events))
	for i := range events {
		out[i] = eventView(&events[i])
	}
	return &schedpb.ListEventsResponse{Events: out}, nil
}

func (h *Handler) UpdateEvent(ctx context.Context, req *schedpb.UpdateEventRequest) (*schedpb.UpdateEventResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	if req.Name == "" && req.DurationMinutes == 0 && req.Description == "" && req.Color == "" {
		return nil, status.Error(codes.InvalidArgument, "nothing to update")
	}

	if _, err := h.ownedEvent(ctx, req.Id); err != nil {
		return nil, err
	}

	e, err := h.store.UpdateEvent(ctx, req.Id, store.EventUpdate{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		Color:           req.Color,
	})
	if err != nil {
		return nil, storeErr(err, "event not found")
	}

	return &schedpb.UpdateEventResponse{Event: eventView(e)}, nil
}

func (h *Handler) DeleteEvent(ctx context.Context, req *schedpb.DeleteEventRequest) (*schedpb.DeleteEventResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	if _, err := h.ownedEvent(ctx, req.Id); err != nil {
		return nil, err
	}

	if err := h.store.DeleteEvent(ctx, req.Id); err != nil {
		return nil, storeErr(err, "event not found")
	}

	return &schedpb.DeleteEventResponse{}, nil
}

func eventView(e *model.Event) *schedpb.Event {
	return &schedpb.Event{
		Id:              e.ID,
		Name:            e.Name,
		DurationMinutes: e.DurationMinutes,
		Description:     e.Description,
		Color:           e.Color,
		OwnerId:         e.OwnerID,
	}
}
