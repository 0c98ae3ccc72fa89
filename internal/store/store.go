// Package store declares the record-store contract the handlers run
// against. Implementations are per-table keyed get/scan/insert/update/
// delete with statement-level atomicity only; there are no
// cross-statement transactions and no foreign keys, so references can
// dangle after deletes.
package store

import (
	"context"
	"errors"

	"slotbook-api/internal/model"
)

var (
	// ErrNotFound is returned when a keyed lookup resolves no row.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when the accounts email uniqueness
	// constraint rejects an insert. Matching is case-sensitive: two
	// emails differing only in case are distinct rows.
	ErrEmailTaken = errors.New("email already registered")
)

// AccountUpdate carries the mutable account fields. Zero values mean
// "leave unchanged"; implementations write only the supplied fields.
type AccountUpdate struct {
	Name     string
	Timezone string
	Secret   string
}

// EventUpdate mirrors AccountUpdate for event rows.
type EventUpdate struct {
	Name            string
	DurationMinutes int32
	Description     string
	Color           string
}

// AppointmentUpdate mirrors AccountUpdate for appointment rows.
type AppointmentUpdate struct {
	StartTime string
	EndTime   string
	Status    string
}

type AccountStore interface {
	CreateAccount(ctx context.Context, a *model.Account) error
	AccountByID(ctx context.Context, id string) (*model.Account, error)
	AccountByEmail(ctx context.Context, email string) (*model.Account, error)
	// AccountByToken resolves the account whose current session token
	// equals tok. Revoked (null) tokens never match.
	AccountByToken(ctx context.Context, tok string) (*model.Account, error)
	ListAccounts(ctx context.Context, offset, limit int) ([]model.Account, error)
	UpdateAccount(ctx context.Context, id string, upd AccountUpdate) (*model.Account, error)
	DeleteAccount(ctx context.Context, id string) error
	// SetSessionToken overwrites the account's token column; nil clears
	// it. Clearing an already-clear token is not an error.
	SetSessionToken(ctx context.Context, id string, tok *string) error
}

type EventStore interface {
	CreateEvent(ctx context.Context, e *model.Event) error
	EventByID(ctx context.Context, id string) (*model.Event, error)
	ListEventsByOwner(ctx context.Context, ownerID string) ([]model.Event, error)
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type ScheduleStore interface {
	// CreateSchedule assigns the sequential row id. Nothing stops an
	// owner from accumulating several rows; ScheduleByOwner then always
	// answers with the lowest id.
	CreateSchedule(ctx context.Context, s *model.Schedule) error
	ScheduleByID(ctx context.Context, id int64) (*model.Schedule, error)
	ScheduleByOwner(ctx context.Context, ownerID string) (*model.Schedule, error)
	UpdateScheduleAvailability(ctx context.Context, id int64, av model.Availability) (*model.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	AppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]model.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, upd AppointmentUpdate) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// Store is the full collaborator surface the server wires together.
type Store interface {
	AccountStore
	EventStore
	ScheduleStore
	AppointmentStore
}
