package handler_test

import (
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"slotbook-api/internal/handler"
	"slotbook-api/internal/schedpb"
)

func createEvent(t *testing.T, h *handler.Handler, ownerID, name string) *schedpb.Event {
	t.Helper()
	cr, err := h.CreateEvent(authedCtx(ownerID), &schedpb.CreateEventRequest{
		Name: name, DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return cr.Event
}

func TestCreateEvent(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "host")

	cr, err := h.CreateEvent(authedCtx(a.Id), &schedpb.CreateEventRequest{
		Name: "Intro Call", DurationMinutes: 45, Description: "first chat", Color: "#aabbcc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	e := cr.Event
	if e.Id == "" {
		t.Fatal("empty id")
	}
	if e.Name != "Intro Call" || e.DurationMinutes != 45 || e.Description != "first chat" || e.Color != "#aabbcc" {
		t.Errorf("event not echoed back: %+v", e)
	}
	if e.OwnerId != a.Id {
		t.Errorf("owner: got %s, want %s", e.OwnerId, a.Id)
	}
}

func TestCreateEventValidation(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "strict")
	ctx := authedCtx(a.Id)

	tests := []struct {
		name string
		req  *schedpb.CreateEventRequest
	}{
		{"empty name", &schedpb.CreateEventRequest{DurationMinutes: 30}},
		{"zero duration", &schedpb.CreateEventRequest{Name: "X"}},
		{"negative duration", &schedpb.CreateEventRequest{Name: "X", DurationMinutes: -5}},
		{"bad color", &schedpb.CreateEventRequest{Name: "X", DurationMinutes: 30, Color: "reddish"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.CreateEvent(ctx, tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			s, _ := status.FromError(err)
			if s.Code() != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", s.Code())
			}
		})
	}
}

func TestGetEvent(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "mine")
	b := register(t, h, "theirs")
	e := createEvent(t, h, a.Id, "Standup")

	gr, err := h.GetEvent(authedCtx(a.Id), &schedpb.GetEventRequest{Id: e.Id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !gr.IsOwner {
		t.Error("owner should see is_owner=true")
	}

	gr, err = h.GetEvent(authedCtx(b.Id), &schedpb.GetEventRequest{Id: e.Id})
	if err != nil {
		t.Fatalf("get as other: %v", err)
	}
	if gr.IsOwner {
		t.Error("non-owner should see is_owner=false")
	}
	if gr.Event.Name != "Standup" {
		t.Errorf("name: got %s", gr.Event.Name)
	}
}

func TestGetEventNotFound(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "seeker")

	_, err := h.GetEvent(authedCtx(a.Id), &schedpb.GetEventRequest{Id: uuid.New().String()})
	s, _ := status.FromError(err)
	if s.Code() != codes.NotFound {
		t.Errorf("expected NotFound, got %v", s.Code())
	}
}

func TestListEventsScoped(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "busy")
	b := register(t, h, "quiet")

	createEvent(t, h, a.Id, "One")
	createEvent(t, h, a.Id, "Two")
	createEvent(t, h, b.Id, "Other")

	lr, err := h.ListEvents(authedCtx(a.Id), &schedpb.ListEventsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lr.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(lr.Events))
	}
	for _, e := range lr.Events {
		if e.OwnerId != a.Id {
			t.Errorf("foreign event in list: %+v", e)
		}
	}
}

func TestUpdateEvent(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "editor")
	e := createEvent(t, h, a.Id, "Draft")

	ur, err := h.UpdateEvent(authedCtx(a.Id), &schedpb.UpdateEventRequest{
		Id: e.Id, Name: "Final", DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ur.Event.Name != "Final" || ur.Event.DurationMinutes != 60 {
		t.Errorf("update not applied: %+v", ur.Event)
	}
	// untouched fields keep their stored values
	if ur.Event.OwnerId != a.Id {
		t.Errorf("owner changed: %s", ur.Event.OwnerId)
	}
}

func TestUpdateEventValidation(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "picky")
	e := createEvent(t, h, a.Id, "Fixed")
	ctx := authedCtx(a.Id)

	tests := []struct {
		name string
		req  *schedpb.UpdateEventRequest
	}{
		{"missing id", &schedpb.UpdateEventRequest{Name: "X"}},
		{"nothing to update", &schedpb.UpdateEventRequest{Id: e.Id}},
		{"negative duration", &schedpb.UpdateEventRequest{Id: e.Id, DurationMinutes: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.UpdateEvent(ctx, tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			s, _ := status.FromError(err)
			if s.Code() != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", s.Code())
			}
		})
	}
}

func TestUpdateEventOwnership(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "author")
	b := register(t, h, "rival")
	e := createEvent(t, h, a.Id, "Protected")

	_, err := h.UpdateEvent(authedCtx(b.Id), &schedpb.UpdateEventRequest{Id: e.Id, Name: "Stolen"})
	s, _ := status.FromError(err)
	if s.Code() != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", s.Code())
	}

	// a missing row reports NotFound before ownership is ever considered
	_, err = h.UpdateEvent(authedCtx(b.Id), &schedpb.UpdateEventRequest{Id: uuid.New().String(), Name: "Ghost"})
	s, _ = status.FromError(err)
	if s.Code() != codes.NotFound {
		t.Errorf("expected NotFound, got %v", s.Code())
	}

	// the owner still can
	if _, err := h.UpdateEvent(authedCtx(a.Id), &schedpb.UpdateEventRequest{Id: e.Id, Name: "Kept"}); err != nil {
		t.Errorf("owner update: %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "cleaner")
	b := register(t, h, "vandal")
	e := createEvent(t, h, a.Id, "Doomed")

	_, err := h.DeleteEvent(authedCtx(b.Id), &schedpb.DeleteEventRequest{Id: e.Id})
	s, _ := status.FromError(err)
	if s.Code() != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", s.Code())
	}
	if _, err := h.GetEvent(authedCtx(a.Id), &schedpb.GetEventRequest{Id: e.Id}); err != nil {
		t.Fatalf("event should survive the denied delete: %v", err)
	}

	if _, err := h.DeleteEvent(authedCtx(a.Id), &schedpb.DeleteEventRequest{Id: e.Id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = h.GetEvent(authedCtx(a.Id), &schedpb.GetEventRequest{Id: e.Id})
	s, _ = status.FromError(err)
	if s.Code() != codes.NotFound {
		t.Errorf("expected NotFound after delete, got %v", s.Code())
	}
}
