package postgres

import (
	"context"
	"fmt"
	"strings"

	"slotbook-api/internal/model"
	"slotbook-api/internal/store"
)

const appointmentCols = `id, event_id, owner_id, invitee_email, start_time, end_time, status, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := row.Scan(&a.ID, &a.EventID, &a.OwnerID, &a.InviteeEmail,
		&a.StartTime, &a.EndTime, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	// event_id is not a foreign key; the referenced event may vanish
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, event_id, owner_id, invitee_email, start_time, end_time, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.EventID, a.OwnerID, a.InviteeEmail, a.StartTime, a.EndTime, a.Status,
	)
	return s.classify("appointment.create", err)
}

func (s *Store) AppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := scanAppointment(s.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id))
	if err != nil {
		return nil, s.classify("appointment.by_id", err)
	}
	return a, nil
}

func (s *Store) ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE owner_id = $1 ORDER BY created_at, id`,
		ownerID,
	)
	if err != nil {
		return nil, s.classify("appointment.list", err)
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.EventID, &a.OwnerID, &a.InviteeEmail,
			&a.StartTime, &a.EndTime, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, s.classify("appointment.list", err)
		}
		out = append(out, a)
	}
	return out, s.classify("appointment.list", rows.Err())
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, upd store.AppointmentUpdate) (*model.Appointment, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col, val string) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.StartTime != "" {
		add("start_time", upd.StartTime)
	}
	if upd.EndTime != "" {
		add("end_time", upd.EndTime)
	}
	if upd.Status != "" {
		add("status", upd.Status)
	}

	a, err := scanAppointment(s.pool.QueryRow(ctx,
		`UPDATE appointments SET `+strings.Join(set, ", ")+` WHERE id = $1 RETURNING `+appointmentCols,
		args...,
	))
	if err != nil {
		return nil, s.classify("appointment.update", err)
	}
	return a, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return s.classify("appointment.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
