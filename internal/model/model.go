package model

import "time"

type Account struct {
	ID           string
	Name         string
	Email        string
	Secret       string
	Timezone     string
	SessionToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Event struct {
	ID              string
	Name            string
	DurationMinutes int32
	Description     string
	Color           string
	OwnerID         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Window is one bookable interval within a day; both bounds are "HH:MM"
// strings kept exactly as supplied.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayAvailability struct {
	Day     string   `json:"day"`
	Windows []Window `json:"windows"`
}

// Availability is the ordered per-day structure persisted as one opaque
// JSON blob on the schedule row. Day and window order must survive the
// trip to storage and back unchanged.
type Availability []DayAvailability

type Schedule struct {
	ID           int64
	OwnerID      string
	Availability Availability
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Appointment struct {
	ID           string
	EventID      string
	OwnerID      string
	InviteeEmail string
	StartTime    string
	EndTime      string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
