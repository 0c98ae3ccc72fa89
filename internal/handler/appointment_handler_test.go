package handler_test

import (
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"slotbook-api/internal/handler"
	"slotbook-api/internal/schedpb"
)

func createAppointment(t *testing.T, h *handler.Handler, ownerID, eventID string) *schedpb.Appointment {
	t.Helper()
	cr, err := h.CreateAppointment(authedCtx(ownerID), &schedpb.CreateAppointmentRequest{
		EventId:      eventID,
		InviteeEmail: "invitee@test.com",
		StartTime:    "2026-09-01T10:00:00Z",
		EndTime:      "2026-09-01T10:30:00Z",
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return cr.Appointment
}

func TestCreateAppointment(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "host")
	e := createEvent(t, h, a.Id, "Call")

	appt := createAppointment(t, h, a.Id, e.Id)
	if appt.Id == "" {
		t.Fatal("empty id")
	}
	if appt.EventId != e.Id {
		t.Errorf("event id: got %s", appt.EventId)
	}
	// the booking hangs off the event owner's account, not the invitee
	if appt.OwnerId != a.Id {
		t.Errorf("owner: got %s, want %s", appt.OwnerId, a.Id)
	}
	if appt.Status != "scheduled" {
		t.Errorf("status: got %s", appt.Status)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "careful")
	e := createEvent(t, h, a.Id, "Slot")
	ctx := authedCtx(a.Id)

	tests := []struct {
		name string
		req  *schedpb.CreateAppointmentRequest
	}{
		{"missing event", &schedpb.CreateAppointmentRequest{
			InviteeEmail: "x@y.com", StartTime: "t1", EndTime: "t2",
		}},
		{"missing invitee", &schedpb.CreateAppointmentRequest{
			EventId: e.Id, StartTime: "t1", EndTime: "t2",
		}},
		{"malformed invitee", &schedpb.CreateAppointmentRequest{
			EventId: e.Id, InviteeEmail: "not-an-email", StartTime: "t1", EndTime: "t2",
		}},
		{"missing start", &schedpb.CreateAppointmentRequest{
			EventId: e.Id, InviteeEmail: "x@y.com", EndTime: "t2",
		}},
		{"missing end", &schedpb.CreateAppointmentRequest{
			EventId: e.Id, InviteeEmail: "x@y.com", StartTime: "t1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.CreateAppointment(ctx, tt.req)
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

func TestCreateAppointmentEventChecks(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "lister")
	b := register(t, h, "booker")
	e := createEvent(t, h, a.Id, "Private")

	// unknown event answers NotFound before any ownership question
	_, err := h.CreateAppointment(authedCtx(a.Id), &schedpb.CreateAppointmentRequest{
		EventId: uuid.New().String(), InviteeEmail: "x@y.com", StartTime: "t1", EndTime: "t2",
	})
	s, _ := status.FromError(err)
	if s.Code() != codes.NotFound {
		t.Errorf("expected NotFound, got %v", s.Code())
	}

	// only the event owner can book against it
	_, err = h.CreateAppointment(authedCtx(b.Id), &schedpb.CreateAppointmentRequest{
		EventId: e.Id, InviteeEmail: "x@y.com", StartTime: "t1", EndTime: "t2",
	})
	s, _ = status.FromError(err)
	if s.Code() != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", s.Code())
	}
}

func TestAppointmentTimesVerbatim(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "loose")
	e := createEvent(t, h, a.Id, "Flexible")

	// timestamps are opaque strings; nothing parses or normalizes them
	cr, err := h.CreateAppointment(authedCtx(a.Id), &schedpb.CreateAppointmentRequest{
		EventId:      e.Id,
		InviteeEmail: "x@y.com",
		StartTime:    "next tuesday, tea time",
		EndTime:      "2026-99-99T99:99:99+27:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	gr, err := h.GetAppointment(authedCtx(a.Id), &schedpb.GetAppointmentRequest{Id: cr.Appointment.Id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gr.Appointment.StartTime != "next tuesday, tea time" {
		t.Errorf("start mangled: %q", gr.Appointment.StartTime)
	}
	if gr.Appointment.EndTime != "2026-99-99T99:99:99+27:00" {
		t.Errorf("end mangled: %q", gr.Appointment.EndTime)
	}
}

func TestGetAppointment(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "owner")
	b := register(t, h, "guest")
	e := createEvent(t, h, a.Id, "Sync")
	appt := createAppointment(t, h, a.Id, e.Id)

	gr, err := h.GetAppointment(authedCtx(a.Id), &schedpb.GetAppointmentRequest{Id: appt.Id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !gr.IsOwner {
		t.Error("owner should see is_owner=true")
	}

	gr, err = h.GetAppointment(authedCtx(b.Id), &schedpb.GetAppointmentRequest{Id: appt.Id})
	if err != nil {
		t.Fatalf("get as other: %v", err)
	}
	if gr.IsOwner {
		t.Error("non-owner should see is_owner=false")
	}

	_, err = h.GetAppointment(authedCtx(a.Id), &schedpb.GetAppointmentRequest{Id: uuid.New().String()})
	s, _ := status.FromError(err)
	if s.Code() != codes.NotFound {
		t.Errorf("expected NotFound, got %v", s.Code())
	}
}

func TestListAppointmentsScoped(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "full")
	b := register(t, h, "empty")
	e := createEvent(t, h, a.Id, "Recurring")

	createAppointment(t, h, a.Id, e.Id)
	createAppointment(t, h, a.Id, e.Id)

	lr, err := h.ListAppointments(authedCtx(a.Id), &schedpb.ListAppointmentsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lr.Appointments) != 2 {
		t.Errorf("expected 2 appointments, got %d", len(lr.Appointments))
	}

	lr, err = h.ListAppointments(authedCtx(b.Id), &schedpb.ListAppointmentsRequest{})
	if err != nil {
		t.Fatalf("list as other: %v", err)
	}
	if len(lr.Appointments) != 0 {
		t.Errorf("expected no appointments for other account, got %d", len(lr.Appointments))
	}
}

func TestUpdateAppointment(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "shifter")
	e := createEvent(t, h, a.Id, "Movable")
	appt := createAppointment(t, h, a.Id, e.Id)

	ur, err := h.UpdateAppointment(authedCtx(a.Id), &schedpb.UpdateAppointmentRequest{
		Id: appt.Id, Status: "cancelled",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ur.Appointment.Status != "cancelled" {
		t.Errorf("status: got %s", ur.Appointment.Status)
	}
	// fields left out stay as stored
	if ur.Appointment.StartTime != appt.StartTime {
		t.Errorf("start changed: %s", ur.Appointment.StartTime)
	}
}

func TestUpdateAppointmentChecks(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "chief")
	b := register(t, h, "grunt")
	e := createEvent(t, h, a.Id, "Guarded")
	appt := createAppointment(t, h, a.Id, e.Id)

	_, err := h.UpdateAppointment(authedCtx(a.Id), &schedpb.UpdateAppointmentRequest{Id: appt.Id})
	s, _ := status.FromError(err)
	if s.Code() != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument for empty update, got %v", s.Code())
	}

	_, err = h.UpdateAppointment(authedCtx(b.Id), &schedpb.UpdateAppointmentRequest{Id: appt.Id, Status: "done"})
	s, _ = status.FromError(err)
	if s.Code() != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", s.Code())
	}

	_, err = h.UpdateAppointment(authedCtx(b.Id), &schedpb.UpdateAppointmentRequest{Id: uuid.New().String(), Status: "done"})
	s, _ = status.FromError(err)
	if s.Code() != codes.NotFound {
		t.Errorf("expected NotFound, got %v", s.Code())
	}
}

func TestDeleteAppointment(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "finisher")
	b := register(t, h, "outsider")
	e := createEvent(t, h, a.Id, "Done")
	appt := createAppointment(t, h, a.Id, e.Id)

	_, err := h.DeleteAppointment(authedCtx(b.Id), &schedpb.DeleteAppointmentRequest{Id: appt.Id})
	s, _ := status.FromError(err)
	if s.Code() != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", s.Code())
	}

	if _, err := h.DeleteAppointment(authedCtx(a.Id), &schedpb.DeleteAppointmentRequest{Id: appt.Id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = h.GetAppointment(authedCtx(a.Id), &schedpb.GetAppointmentRequest{Id: appt.Id})
	s, _ = status.FromError(err)
	if s.Code() != codes.NotFound {
		t.Errorf("expected NotFound after delete, got %v", s.Code())
	}
}

func TestAppointmentSurvivesEventDelete(t *testing.T) {
	h, _, _ := setup(t)
	a := register(t, h, "pruner")
	e := createEvent(t, h, a.Id, "Ephemeral")
	appt := createAppointment(t, h, a.Id, e.Id)

	if _, err := h.DeleteEvent(authedCtx(a.Id), &schedpb.DeleteEventRequest{Id: e.Id}); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	// no cascade: the appointment keeps its dangling event reference
	gr, err := h.GetAppointment(authedCtx(a.Id), &schedpb.GetAppointmentRequest{Id: appt.Id})
	if err != nil {
		t.Fatalf("appointment should survive the event: %v", err)
	}
	if gr.Appointment.EventId != e.Id {
		t.Errorf("event reference rewritten: %s", gr.Appointment.EventId)
	}
}
