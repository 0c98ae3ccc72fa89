package postgres

import (
	"context"
	"encoding/json"

	"slotbook-api/internal/model"
	"slotbook-api/internal/store"
)

// Availability rests as a JSONB blob. json.Marshal keeps slice order,
// so a stored schedule unmarshals deep-equal to what was submitted.

func scanSchedule(row interface{ Scan(...any) error }) (*model.Schedule, error) {
	sc := &model.Schedule{}
	var blob []byte
	err := row.Scan(&sc.ID, &sc.OwnerID, &blob, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(blob, &sc.Availability); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *Store) CreateSchedule(ctx context.Context, sc *model.Schedule) error {
	blob, err := json.Marshal(sc.Availability)
	if err != nil {
		return s.classify("schedule.create", err)
	}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO schedules (owner_id, availability) VALUES ($1,$2)
		 RETURNING id, created_at, updated_at`,
		sc.OwnerID, blob,
	).Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
	return s.classify("schedule.create", err)
}

func (s *Store) ScheduleByID(ctx context.Context, id int64) (*model.Schedule, error) {
	sc, err := scanSchedule(s.pool.QueryRow(ctx,
		`SELECT id, owner_id, availability, created_at, updated_at
		 FROM schedules WHERE id = $1`, id))
	if err != nil {
		return nil, s.classify("schedule.by_id", err)
	}
	return sc, nil
}

func (s *Store) ScheduleByOwner(ctx context.Context, ownerID string) (*model.Schedule, error) {
	// several rows per owner are possible; always answer with the oldest
	sc, err := scanSchedule(s.pool.QueryRow(ctx,
		`SELECT id, owner_id, availability, created_at, updated_at
		 FROM schedules WHERE owner_id = $1 ORDER BY id LIMIT 1`, ownerID))
	if err != nil {
		return nil, s.classify("schedule.by_owner", err)
	}
	return sc, nil
}

func (s *Store) UpdateScheduleAvailability(ctx context.Context, id int64, av model.Availability) (*model.Schedule, error) {
	blob, err := json.Marshal(av)
	if err != nil {
		return nil, s.classify("schedule.update", err)
	}
	sc, err := scanSchedule(s.pool.QueryRow(ctx,
		`UPDATE schedules SET availability = $2, updated_at = NOW() WHERE id = $1
		 RETURNING id, owner_id, availability, created_at, updated_at`,
		id, blob,
	))
	if err != nil {
		return nil, s.classify("schedule.update", err)
	}
	return sc, nil
}

func (s *Store) DeleteSchedule(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return s.classify("schedule.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
