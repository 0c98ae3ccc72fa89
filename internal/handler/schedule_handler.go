package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"slotbook-api/internal/model"
	"slotbook-api/internal/schedpb"
)

func (h *Handler) CreateSchedule(ctx context.Context, req *schedpb.CreateScheduleRequest) (*schedpb.CreateScheduleResponse, error) {
	if len(req.Days) == 0 {
		return nil, status.Error(codes.InvalidArgument, "days required")
	}

	s := &model.Schedule{
		OwnerID:      caller(ctx),
		Availability: toAvailability(req.Days),
	}

	// nothing stops an owner from creating a second row; lookup by
	// owner will keep answering with the oldest one
	if err := h.store.CreateSchedule(ctx, s); err != nil {
		return nil, storeErr(err, "schedule not found")
	}

	return &schedpb.CreateScheduleResponse{Schedule: scheduleView(s)}, nil
}

func (h *Handler) GetSchedule(ctx context.Context, req *schedpb.GetScheduleRequest) (*schedpb.GetScheduleResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	s, err := h.store.ScheduleByOwner(ctx, req.OwnerId)
	if err != nil {
		return nil, storeErr(err, "schedule not found")
	}

	// public read: anonymous callers get is_owner false
	return &schedpb.GetScheduleResponse{
		Schedule: scheduleView(s),
		IsOwner:  s.OwnerID == caller(ctx),
	}, nil
}

func (h *Handler) UpdateSchedule(ctx context.Context, req *schedpb.UpdateScheduleRequest) (*schedpb.UpdateScheduleResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	if len(req.Days) == 0 {
		return nil, status.Error(codes.InvalidArgument, "days required")
	}

	if _, err := h.ownedSchedule(ctx, req.Id); err != nil {
		return nil, err
	}

	s, err := h.store.UpdateScheduleAvailability(ctx, req.Id, toAvailability(req.Days))
	if err != nil {
		return nil, storeErr(err, "schedule not found")
	}

	return &schedpb.UpdateScheduleResponse{Schedule: scheduleView(s)}, nil
}

func (h *Handler) DeleteSchedule(ctx context.Context, req *schedpb.DeleteScheduleRequest) (*schedpb.DeleteScheduleResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	if _, err := h.ownedSchedule(ctx, req.Id); err != nil {
		return nil, err
	}

	if err := h.store.DeleteSchedule(ctx, req.Id); err != nil {
		return nil, storeErr(err, "schedule not found")
	}

	return &schedpb.DeleteScheduleResponse{}, nil
}

// toAvailability and scheduleView convert between the wire shape and
// the stored blob. Order is preserved both ways; day labels and times
// are carried verbatim.

func toAvailability(days []*schedpb.DayAvailability) model.Availability {
	av := make(model.Availability, 0, len(days))
	for _, d := range days {
		windows := make([]model.Window, 0, len(d.Windows))
		for _, w := range d.Windows {
			windows = append(windows, model.Window{Start: w.Start, End: w.End})
		}
		av = append(av, model.DayAvailability{Day: d.Day, Windows: windows})
	}
	return av
}

func scheduleView(s *model.Schedule) *schedpb.Schedule {
	days := make([]*schedpb.DayAvailability, 0, len(s.Availability))
	for _, d := range s.Availability {
		windows := make([]*schedpb.Window, 0, len(d.Windows))
		for _, w := range d.Windows {
			windows = append(windows, &schedpb.Window{Start: w.Start, End: w.End})
		}
		days = append(days, &schedpb.DayAvailability{Day: d.Day, Windows: windows})
	}
	return &schedpb.Schedule{
		Id:      s.ID,
		OwnerId: s.OwnerID,
		Days:    days,
	}
}
