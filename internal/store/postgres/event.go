package postgres

import (
	"context"
	"fmt"
	"strings"

	"slotbook-api/internal/model"
	"slotbook-api/internal/store"
)

const eventCols = `id, name, duration_minutes, description, color, owner_id, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*model.Event, error) {
	e := &model.Event{}
	err := row.Scan(&e.ID, &e.Name, &e.DurationMinutes, &e.Description,
		&e.Color, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO events (id, name, duration_minutes, description, color, owner_id)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.Name, e.DurationMinutes, e.Description, e.Color, e.OwnerID,
	)
	return s.classify("event.create", err)
}

func (s *Store) EventByID(ctx context.Context, id string) (*model.Event, error) {
	e, err := scanEvent(s.pool.QueryRow(ctx,
		`SELECT `+eventCols+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, s.classify("event.by_id", err)
	}
	return e, nil
}

func (s *Store) ListEventsByOwner(ctx context.Context, ownerID string) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+eventCols+` FROM events WHERE owner_id = $1 ORDER BY created_at, id`,
		ownerID,
	)
	if err != nil {
		return nil, s.classify("event.list", err)
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.DurationMinutes, &e.Description,
			&e.Color, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, s.classify("event.list", err)
		}
		out = append(out, e)
	}
	return out, s.classify("event.list", rows.Err())
}

func (s *Store) UpdateEvent(ctx context.Context, id string, upd store.EventUpdate) (*model.Event, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col string, val any) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != "" {
		add("name", upd.Name)
	}
	if upd.DurationMinutes != 0 {
		add("duration_minutes", upd.DurationMinutes)
	}
	if upd.Description != "" {
		add("description", upd.Description)
	}
	if upd.Color != "" {
		add("color", upd.Color)
	}

	e, err := scanEvent(s.pool.QueryRow(ctx,
		`UPDATE events SET `+strings.Join(set, ", ")+` WHERE id = $1 RETURNING `+eventCols,
		args...,
	))
	if err != nil {
		return nil, s.classify("event.update", err)
	}
	return e, nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return s.classify("event.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
