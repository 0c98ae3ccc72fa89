// Package memory is an in-process store for tests and local runs. It
// mirrors the postgres semantics: statement-level atomicity, no
// foreign keys, sequential schedule ids, case-sensitive email match,
// list order by creation.
package memory

import (
	"context"
	"sync"
	"time"

	"slotbook-api/internal/model"
	"slotbook-api/internal/store"
)

type Store struct {
	mu sync.Mutex

	accounts     map[string]*model.Account
	accountOrder []string

	events     map[string]*model.Event
	eventOrder []string

	schedules     map[int64]*model.Schedule
	scheduleOrder []int64
	scheduleID    int64

	appointments     map[string]*model.Appointment
	appointmentOrder []string
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		accounts:     map[string]*model.Account{},
		events:       map[string]*model.Event{},
		schedules:    map[int64]*model.Schedule{},
		appointments: map[string]*model.Appointment{},
	}
}

func remove[T comparable](list []T, v T) []T {
	for i := range list {
		if list[i] == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Stored rows are never handed out directly; everything going in or
// out is copied so callers cannot alias store state.

func copyAccount(a *model.Account) *model.Account {
	c := *a
	if a.SessionToken != nil {
		t := *a.SessionToken
		c.SessionToken = &t
	}
	return &c
}

func copyEvent(e *model.Event) *model.Event {
	c := *e
	return &c
}

func cloneAvailability(av model.Availability) model.Availability {
	out := make(model.Availability, len(av))
	for i, d := range av {
		windows := make([]model.Window, len(d.Windows))
		copy(windows, d.Windows)
		out[i] = model.DayAvailability{Day: d.Day, Windows: windows}
	}
	return out
}

func copySchedule(s *model.Schedule) *model.Schedule {
	c := *s
	c.Availability = cloneAvailability(s.Availability)
	return &c
}

func copyAppointment(a *model.Appointment) *model.Appointment {
	c := *a
	return &c
}

func (s *Store) CreateAccount(_ context.Context, a *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.accountOrder {
		if s.accounts[id].Email == a.Email {
			return store.ErrEmailTaken
		}
	}

	c := copyAccount(a)
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.accounts[c.ID] = c
	s.accountOrder = append(s.accountOrder, c.ID)
	return nil
}

func (s *Store) AccountByID(_ context.Context, id string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyAccount(a), nil
}

func (s *Store) AccountByEmail(_ context.Context, email string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.accountOrder {
		if s.accounts[id].Email == email {
			return copyAccount(s.accounts[id]), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) AccountByToken(_ context.Context, tok string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok == "" {
		return nil, store.ErrNotFound
	}
	for _, id := range s.accountOrder {
		a := s.accounts[id]
		if a.SessionToken != nil && *a.SessionToken == tok {
			return copyAccount(a), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListAccounts(_ context.Context, offset, limit int) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset >= len(s.accountOrder) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.accountOrder) {
		end = len(s.accountOrder)
	}

	var out []model.Account
	for _, id := range s.accountOrder[offset:end] {
		out = append(out, *copyAccount(s.accounts[id]))
	}
	return out, nil
}

func (s *Store) UpdateAccount(_ context.Context, id string, upd store.AccountUpdate) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Name != "" {
		a.Name = upd.Name
	}
	if upd.Timezone != "" {
		a.Timezone = upd.Timezone
	}
	if upd.Secret != "" {
		a.Secret = upd.Secret
	}
	a.UpdatedAt = time.Now()
	return copyAccount(a), nil
}

func (s *Store) DeleteAccount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.accounts, id)
	s.accountOrder = remove(s.accountOrder, id)
	return nil
}

func (s *Store) SetSessionToken(_ context.Context, id string, tok *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return store.ErrNotFound
	}
	if tok == nil {
		a.SessionToken = nil
	} else {
		t := *tok
		a.SessionToken = &t
	}
	a.UpdatedAt = time.Now()
	return nil
}

func (s *Store) CreateEvent(_ context.Context, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := copyEvent(e)
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.events[c.ID] = c
	s.eventOrder = append(s.eventOrder, c.ID)
	return nil
}

func (s *Store) EventByID(_ context.Context, id string) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyEvent(e), nil
}

func (s *Store) ListEventsByOwner(_ context.Context, ownerID string) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Event
	for _, id := range s.eventOrder {
		if s.events[id].OwnerID == ownerID {
			out = append(out, *copyEvent(s.events[id]))
		}
	}
	return out, nil
}

func (s *Store) UpdateEvent(_ context.Context, id string, upd store.EventUpdate) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Name != "" {
		e.Name = upd.Name
	}
	if upd.DurationMinutes != 0 {
		e.DurationMinutes = upd.DurationMinutes
	}
	if upd.Description != "" {
		e.Description = upd.Description
	}
	if upd.Color != "" {
		e.Color = upd.Color
	}
	e.UpdatedAt = time.Now()
	return copyEvent(e), nil
}

func (s *Store) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.events, id)
	s.eventOrder = remove(s.eventOrder, id)
	return nil
}

func (s *Store) CreateSchedule(_ context.Context, sc *model.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduleID++
	sc.ID = s.scheduleID
	now := time.Now()
	sc.CreatedAt, sc.UpdatedAt = now, now

	s.schedules[sc.ID] = copySchedule(sc)
	s.scheduleOrder = append(s.scheduleOrder, sc.ID)
	return nil
}

func (s *Store) ScheduleByID(_ context.Context, id int64) (*model.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.schedules[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copySchedule(sc), nil
}

func (s *Store) ScheduleByOwner(_ context.Context, ownerID string) (*model.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// ids ascend with creation, so the first match is the lowest id
	for _, id := range s.scheduleOrder {
		if s.schedules[id].OwnerID == ownerID {
			return copySchedule(s.schedules[id]), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateScheduleAvailability(_ context.Context, id int64, av model.Availability) (*model.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.schedules[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	sc.Availability = cloneAvailability(av)
	sc.UpdatedAt = time.Now()
	return copySchedule(sc), nil
}

func (s *Store) DeleteSchedule(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.schedules, id)
	s.scheduleOrder = remove(s.scheduleOrder, id)
	return nil
}

func (s *Store) CreateAppointment(_ context.Context, a *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := copyAppointment(a)
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.appointments[c.ID] = c
	s.appointmentOrder = append(s.appointmentOrder, c.ID)
	return nil
}

func (s *Store) AppointmentByID(_ context.Context, id string) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyAppointment(a), nil
}

func (s *Store) ListAppointmentsByOwner(_ context.Context, ownerID string) ([]model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Appointment
	for _, id := range s.appointmentOrder {
		if s.appointments[id].OwnerID == ownerID {
			out = append(out, *copyAppointment(s.appointments[id]))
		}
	}
	return out, nil
}

func (s *Store) UpdateAppointment(_ context.Context, id string, upd store.AppointmentUpdate) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.StartTime != "" {
		a.StartTime = upd.StartTime
	}
	if upd.EndTime != "" {
		a.EndTime = upd.EndTime
	}
	if upd.Status != "" {
		a.Status = upd.Status
	}
	a.UpdatedAt = time.Now()
	return copyAppointment(a), nil
}

func (s *Store) DeleteAppointment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.appointments, id)
	s.appointmentOrder = remove(s.appointmentOrder, id)
	return nil
}
