package schedpb

import "google.golang.org/protobuf/encoding/protowire"

// Shared resource messages.

type Account struct {
	Id       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

func (m *Account) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Email)
	b = appendString(b, 4, m.Timezone)
	return b
}

func (m *Account) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Id = string(p)
		case 2:
			m.Name = string(p)
		case 3:
			m.Email = string(p)
		case 4:
			m.Timezone = string(p)
		}
		return nil
	}, nil)
}

type Event struct {
	Id              string `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	DurationMinutes int32  `json:"duration_minutes,omitempty"`
	Description     string `json:"description,omitempty"`
	Color           string `json:"color,omitempty"`
	OwnerId         string `json:"owner_id,omitempty"`
}

func (m *Event) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendInt32(b, 3, m.DurationMinutes)
	b = appendString(b, 4, m.Description)
	b = appendString(b, 5, m.Color)
	b = appendString(b, 6, m.OwnerId)
	return b
}

func (m *Event) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Id = string(p)
		case 2:
			m.Name = string(p)
		case 4:
			m.Description = string(p)
		case 5:
			m.Color = string(p)
		case 6:
			m.OwnerId = string(p)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 3 {
			m.DurationMinutes = int32(v)
		}
		return nil
	})
}

type Window struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

func (m *Window) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Start)
	b = appendString(b, 2, m.End)
	return b
}

func (m *Window) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Start = string(p)
		case 2:
			m.End = string(p)
		}
		return nil
	}, nil)
}

type DayAvailability struct {
	Day     string    `json:"day,omitempty"`
	Windows []*Window `json:"windows,omitempty"`
}

func (m *DayAvailability) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Day)
	for _, w := range m.Windows {
		b = appendMsg(b, 2, w)
	}
	return b
}

func (m *DayAvailability) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Day = string(p)
		case 2:
			w := new(Window)
			if err := w.unmarshal(p); err != nil {
				return err
			}
			m.Windows = append(m.Windows, w)
		}
		return nil
	}, nil)
}

type Schedule struct {
	Id      int64              `json:"id,omitempty"`
	OwnerId string             `json:"owner_id,omitempty"`
	Days    []*DayAvailability `json:"days,omitempty"`
}

func (m *Schedule) marshal() []byte {
	var b []byte
	b = appendInt64(b, 1, m.Id)
	b = appendString(b, 2, m.OwnerId)
	for _, d := range m.Days {
		b = appendMsg(b, 3, d)
	}
	return b
}

func (m *Schedule) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 2:
			m.OwnerId = string(p)
		case 3:
			d := new(DayAvailability)
			if err := d.unmarshal(p); err != nil {
				return err
			}
			m.Days = append(m.Days, d)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 1 {
			m.Id = int64(v)
		}
		return nil
	})
}

type Appointment struct {
	Id           string `json:"id,omitempty"`
	EventId      string `json:"event_id,omitempty"`
	OwnerId      string `json:"owner_id,omitempty"`
	InviteeEmail string `json:"invitee_email,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Status       string `json:"status,omitempty"`
}

func (m *Appointment) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.EventId)
	b = appendString(b, 3, m.OwnerId)
	b = appendString(b, 4, m.InviteeEmail)
	b = appendString(b, 5, m.StartTime)
	b = appendString(b, 6, m.EndTime)
	b = appendString(b, 7, m.Status)
	return b
}

func (m *Appointment) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Id = string(p)
		case 2:
			m.EventId = string(p)
		case 3:
			m.OwnerId = string(p)
		case 4:
			m.InviteeEmail = string(p)
		case 5:
			m.StartTime = string(p)
		case 6:
			m.EndTime = string(p)
		case 7:
			m.Status = string(p)
		}
		return nil
	}, nil)
}

// AccountService messages.

type RegisterRequest struct {
	Name     string `json:"name,omitempty" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Secret   string `json:"secret,omitempty" validate:"required"`
	Timezone string `json:"timezone,omitempty"`
}

func (m *RegisterRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Email)
	b = appendString(b, 3, m.Secret)
	b = appendString(b, 4, m.Timezone)
	return b
}

func (m *RegisterRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Name = string(p)
		case 2:
			m.Email = string(p)
		case 3:
			m.Secret = string(p)
		case 4:
			m.Timezone = string(p)
		}
		return nil
	}, nil)
}

type RegisterResponse struct {
	Account *Account `json:"account,omitempty"`
}

func (m *RegisterResponse) marshal() []byte {
	var b []byte
	if m.Account != nil {
		b = appendMsg(b, 1, m.Account)
	}
	return b
}

func (m *RegisterResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Account = new(Account)
			return m.Account.unmarshal(p)
		}
		return nil
	}, nil)
}

type GetAccountRequest struct {
	Id string `json:"id,omitempty" validate:"required"`
}

func (m *GetAccountRequest) marshal() []byte {
	return appendString(nil, 1, m.Id)
}

func (m *GetAccountRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Id = string(p)
		}
		return nil
	}, nil)
}

type GetAccountResponse struct {
	Account *Account `json:"account,omitempty"`
}

func (m *GetAccountResponse) marshal() []byte {
	var b []byte
	if m.Account != nil {
		b = appendMsg(b, 1, m.Account)
	}
	return b
}

func (m *GetAccountResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Account = new(Account)
			return m.Account.unmarshal(p)
		}
		return nil
	}, nil)
}

type ListAccountsRequest struct {
	Page     int32 `json:"page,omitempty"`
	PageSize int32 `json:"page_size,omitempty"`
}

func (m *ListAccountsRequest) marshal() []byte {
	var b []byte
	b = appendInt32(b, 1, m.Page)
	b = appendInt32(b, 2, m.PageSize)
	return b
}

func (m *ListAccountsRequest) unmarshal(b []byte) error {
	return scan(b, nil, func(num protowire.Number, v uint64) error {
		switch num {
		case 1:
			m.Page = int32(v)
		case 2:
			m.PageSize = int32(v)
		}
		return nil
	})
}

type ListAccountsResponse struct {
	Accounts []*Account `json:"accounts,omitempty"`
	Page     int32      `json:"page,omitempty"`
	PageSize int32      `json:"page_size,omitempty"`
	Total    int32      `json:"total,omitempty"`
}

func (m *ListAccountsResponse) marshal() []byte {
	var b []byte
	for _, a := range m.Accounts {
		b = appendMsg(b, 1, a)
	}
	b = appendInt32(b, 2, m.Page)
	b = appendInt32(b, 3, m.PageSize)
	b = appendInt32(b, 4, m.Total)
	return b
}

func (m *ListAccountsResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			a := new(Account)
			if err := a.unmarshal(p); err != nil {
				return err
			}
			m.Accounts = append(m.Accounts, a)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		switch num {
		case 2:
			m.Page = int32(v)
		case 3:
			m.PageSize = int32(v)
		case 4:
			m.Total = int32(v)
		}
		return nil
	})
}

type UpdateAccountRequest struct {
	Id       string `json:"id,omitempty" validate:"required"`
	Name     string `json:"name,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Secret   string `json:"secret,omitempty"`
}

func (m *UpdateAccountRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Timezone)
	b = appendString(b, 4, m.Secret)
	return b
}

func (m *UpdateAccountRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Id = string(p)
		case 2:
			m.Name = string(p)
		case 3:
			m.Timezone = string(p)
		case 4:
			m.Secret = string(p)
		}
		return nil
	}, nil)
}

type UpdateAccountResponse struct {
	Account *Account `json:"account,omitempty"`
}

func (m *UpdateAccountResponse) marshal() []byte {
	var b []byte
	if m.Account != nil {
		b = appendMsg(b, 1, m.Account)
	}
	return b
}

func (m *UpdateAccountResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Account = new(Account)
			return m.Account.unmarshal(p)
		}
		return nil
	}, nil)
}

type DeleteAccountRequest struct {
	Id string `json:"id,omitempty" validate:"required"`
}

func (m *DeleteAccountRequest) marshal() []byte {
	return appendString(nil, 1, m.Id)
}

func (m *DeleteAccountRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Id = string(p)
		}
		return nil
	}, nil)
}

type DeleteAccountResponse struct{}

func (m *DeleteAccountResponse) marshal() []byte          { return nil }
func (m *DeleteAccountResponse) unmarshal(b []byte) error { return scan(b, nil, nil) }

// SessionService messages.

type LoginRequest struct {
	Email  string `json:"email,omitempty" validate:"required"`
	Secret string `json:"secret,omitempty" validate:"required"`
}

func (m *LoginRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Secret)
	return b
}

func (m *LoginRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Email = string(p)
		case 2:
			m.Secret = string(p)
		}
		return nil
	}, nil)
}

type LoginResponse struct {
	Token   string   `json:"token,omitempty"`
	Account *Account `json:"account,omitempty"`
}

func (m *LoginResponse) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Token)
	if m.Account != nil {
		b = appendMsg(b, 2, m.Account)
	}
	return b
}

func (m *LoginResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Token = string(p)
		case 2:
			m.Account = new(Account)
			return m.Account.unmarshal(p)
		}
		return nil
	}, nil)
}

type LogoutRequest struct{}

func (m *LogoutRequest) marshal() []byte          { return nil }
func (m *LogoutRequest) unmarshal(b []byte) error { return scan(b, nil, nil) }

type LogoutResponse struct{}

func (m *LogoutResponse) marshal() []byte          { return nil }
func (m *LogoutResponse) unmarshal(b []byte) error { return scan(b, nil, nil) }

// EventService messages.

type CreateEventRequest struct {
	Name            string `json:"name,omitempty" validate:"required"`
	DurationMinutes int32  `json:"duration_minutes,omitempty" validate:"required,gt=0"`
	Description     string `json:"description,omitempty"`
	Color           string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

func (m *CreateEventRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendInt32(b, 2, m.DurationMinutes)
	b = appendString(b, 3, m.Description)
	b = appendString(b, 4, m.Color)
	return b
}

func (m *CreateEventRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Name = string(p)
		case 3:
			m.Description = string(p)
		case 4:
			m.Color = string(p)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 2 {
			m.DurationMinutes = int32(v)
		}
		return nil
	})
}

type CreateEventResponse struct {
	Event *Event `json:"event,omitempty"`
}

func (m *CreateEventResponse) marshal() []byte {
	var b []byte
	if m.Event != nil {
		b = appendMsg(b, 1, m.Event)
	}
	return b
}

func (m *CreateEventResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Event = new(Event)
			return m.Event.unmarshal(p)
		}
		return nil
	}, nil)
}

type GetEventRequest struct {
	Id string `json:"id,omitempty" validate:"required"`
}

func (m *GetEventRequest) marshal() []byte {
	return appendString(nil, 1, m.Id)
}

func (m *GetEventRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Id = string(p)
		}
		return nil
	}, nil)
}

type GetEventResponse struct {
	Event   *Event `json:"event,omitempty"`
	IsOwner bool   `json:"is_owner,omitempty"`
}

func (m *GetEventResponse) marshal() []byte {
	var b []byte
	if m.Event != nil {
		b = appendMsg(b, 1, m.Event)
	}
	b = appendBool(b, 2, m.IsOwner)
	return b
}

func (m *GetEventResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Event = new(Event)
			return m.Event.unmarshal(p)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 2 {
			m.IsOwner = v != 0
		}
		return nil
	})
}

type ListEventsRequest struct{}

func (m *ListEventsRequest) marshal() []byte          { return nil }
func (m *ListEventsRequest) unmarshal(b []byte) error { return scan(b, nil, nil) }

type ListEventsResponse struct {
	Events []*Event `json:"events,omitempty"`
}

func (m *ListEventsResponse) marshal() []byte {
	var b []byte
	for _, e := range m.Events {
		b = appendMsg(b, 1, e)
	}
	return b
}

func (m *ListEventsResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			e := new(Event)
			if err := e.unmarshal(p); err != nil {
				return err
			}
			m.Events = append(m.Events, e)
		}
		return nil
	}, nil)
}

type UpdateEventRequest struct {
	Id              string `json:"id,omitempty" validate:"required"`
	Name            string `json:"name,omitempty"`
	DurationMinutes int32  `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	Description     string `json:"description,omitempty"`
	Color           string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

func (m *UpdateEventRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendInt32(b, 3, m.DurationMinutes)
	b = appendString(b, 4, m.Description)
	b = appendString(b, 5, m.Color)
	return b
}

func (m *UpdateEventRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Id = string(p)
		case 2:
			m.Name = string(p)
		case 4:
			m.Description = string(p)
		case 5:
			m.Color = string(p)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 3 {
			m.DurationMinutes = int32(v)
		}
		return nil
	})
}

type UpdateEventResponse struct {
	Event *Event `json:"event,omitempty"`
}

func (m *UpdateEventResponse) marshal() []byte {
	var b []byte
	if m.Event != nil {
		b = appendMsg(b, 1, m.Event)
	}
	return b
}

func (m *UpdateEventResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Event = new(Event)
			return m.Event.unmarshal(p)
		}
		return nil
	}, nil)
}

type DeleteEventRequest struct {
	Id string `json:"id,omitempty" validate:"required"`
}

func (m *DeleteEventRequest) marshal() []byte {
	return appendString(nil, 1, m.Id)
}

func (m *DeleteEventRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Id = string(p)
		}
		return nil
	}, nil)
}

type DeleteEventResponse struct{}

func (m *DeleteEventResponse) marshal() []byte          { return nil }
func (m *DeleteEventResponse) unmarshal(b []byte) error { return scan(b, nil, nil) }

// ScheduleService messages.

type CreateScheduleRequest struct {
	Days []*DayAvailability `json:"days,omitempty"`
}

func (m *CreateScheduleRequest) marshal() []byte {
	var b []byte
	for _, d := range m.Days {
		b = appendMsg(b, 1, d)
	}
	return b
}

func (m *CreateScheduleRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			d := new(DayAvailability)
			if err := d.unmarshal(p); err != nil {
				return err
			}
			m.Days = append(m.Days, d)
		}
		return nil
	}, nil)
}

type CreateScheduleResponse struct {
	Schedule *Schedule `json:"schedule,omitempty"`
}

func (m *CreateScheduleResponse) marshal() []byte {
	var b []byte
	if m.Schedule != nil {
		b = appendMsg(b, 1, m.Schedule)
	}
	return b
}

func (m *CreateScheduleResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Schedule = new(Schedule)
			return m.Schedule.unmarshal(p)
		}
		return nil
	}, nil)
}

type GetScheduleRequest struct {
	OwnerId string `json:"owner_id,omitempty" validate:"required"`
}

func (m *GetScheduleRequest) marshal() []byte {
	return appendString(nil, 1, m.OwnerId)
}

func (m *GetScheduleRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.OwnerId = string(p)
		}
		return nil
	}, nil)
}

type GetScheduleResponse struct {
	Schedule *Schedule `json:"schedule,omitempty"`
	IsOwner  bool      `json:"is_owner,omitempty"`
}

func (m *GetScheduleResponse) marshal() []byte {
	var b []byte
	if m.Schedule != nil {
		b = appendMsg(b, 1, m.Schedule)
	}
	b = appendBool(b, 2, m.IsOwner)
	return b
}

func (m *GetScheduleResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Schedule = new(Schedule)
			return m.Schedule.unmarshal(p)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 2 {
			m.IsOwner = v != 0
		}
		return nil
	})
}

type UpdateScheduleRequest struct {
	Id   int64              `json:"id,omitempty" validate:"required"`
	Days []*DayAvailability `json:"days,omitempty"`
}

func (m *UpdateScheduleRequest) marshal() []byte {
	var b []byte
	b = appendInt64(b, 1, m.Id)
	for _, d := range m.Days {
		b = appendMsg(b, 2, d)
	}
	return b
}

func (m *UpdateScheduleRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 2 {
			d := new(DayAvailability)
			if err := d.unmarshal(p); err != nil {
				return err
			}
			m.Days = append(m.Days, d)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 1 {
			m.Id = int64(v)
		}
		return nil
	})
}

type UpdateScheduleResponse struct {
	Schedule *Schedule `json:"schedule,omitempty"`
}

func (m *UpdateScheduleResponse) marshal() []byte {
	var b []byte
	if m.Schedule != nil {
		b = appendMsg(b, 1, m.Schedule)
	}
	return b
}

func (m *UpdateScheduleResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Schedule = new(Schedule)
			return m.Schedule.unmarshal(p)
		}
		return nil
	}, nil)
}

type DeleteScheduleRequest struct {
	Id int64 `json:"id,omitempty" validate:"required"`
}

func (m *DeleteScheduleRequest) marshal() []byte {
	return appendInt64(nil, 1, m.Id)
}

func (m *DeleteScheduleRequest) unmarshal(b []byte) error {
	return scan(b, nil, func(num protowire.Number, v uint64) error {
		if num == 1 {
			m.Id = int64(v)
		}
		return nil
	})
}

type DeleteScheduleResponse struct{}

func (m *DeleteScheduleResponse) marshal() []byte          { return nil }
func (m *DeleteScheduleResponse) unmarshal(b []byte) error { return scan(b, nil, nil) }

// AppointmentService messages.

type CreateAppointmentRequest struct {
	EventId      string `json:"event_id,omitempty" validate:"required"`
	InviteeEmail string `json:"invitee_email,omitempty" validate:"required,email"`
	StartTime    string `json:"start_time,omitempty" validate:"required"`
	EndTime      string `json:"end_time,omitempty" validate:"required"`
}

func (m *CreateAppointmentRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.EventId)
	b = appendString(b, 2, m.InviteeEmail)
	b = appendString(b, 3, m.StartTime)
	b = appendString(b, 4, m.EndTime)
	return b
}

func (m *CreateAppointmentRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.EventId = string(p)
		case 2:
			m.InviteeEmail = string(p)
		case 3:
			m.StartTime = string(p)
		case 4:
			m.EndTime = string(p)
		}
		return nil
	}, nil)
}

type CreateAppointmentResponse struct {
	Appointment *Appointment `json:"appointment,omitempty"`
}

func (m *CreateAppointmentResponse) marshal() []byte {
	var b []byte
	if m.Appointment != nil {
		b = appendMsg(b, 1, m.Appointment)
	}
	return b
}

func (m *CreateAppointmentResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Appointment = new(Appointment)
			return m.Appointment.unmarshal(p)
		}
		return nil
	}, nil)
}

type GetAppointmentRequest struct {
	Id string `json:"id,omitempty" validate:"required"`
}

func (m *GetAppointmentRequest) marshal() []byte {
	return appendString(nil, 1, m.Id)
}

func (m *GetAppointmentRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Id = string(p)
		}
		return nil
	}, nil)
}

type GetAppointmentResponse struct {
	Appointment *Appointment `json:"appointment,omitempty"`
	IsOwner     bool         `json:"is_owner,omitempty"`
}

func (m *GetAppointmentResponse) marshal() []byte {
	var b []byte
	if m.Appointment != nil {
		b = appendMsg(b, 1, m.Appointment)
	}
	b = appendBool(b, 2, m.IsOwner)
	return b
}

func (m *GetAppointmentResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Appointment = new(Appointment)
			return m.Appointment.unmarshal(p)
		}
		return nil
	}, func(num protowire.Number, v uint64) error {
		if num == 2 {
			m.IsOwner = v != 0
		}
		return nil
	})
}

type ListAppointmentsRequest struct{}

func (m *ListAppointmentsRequest) marshal() []byte          { return nil }
func (m *ListAppointmentsRequest) unmarshal(b []byte) error { return scan(b, nil, nil) }

type ListAppointmentsResponse struct {
	Appointments []*Appointment `json:"appointments,omitempty"`
}

func (m *ListAppointmentsResponse) marshal() []byte {
	var b []byte
	for _, a := range m.Appointments {
		b = appendMsg(b, 1, a)
	}
	return b
}

func (m *ListAppointmentsResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			a := new(Appointment)
			if err := a.unmarshal(p); err != nil {
				return err
			}
			m.Appointments = append(m.Appointments, a)
		}
		return nil
	}, nil)
}

type UpdateAppointmentRequest struct {
	Id        string `json:"id,omitempty" validate:"required"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Status    string `json:"status,omitempty"`
}

func (m *UpdateAppointmentRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.StartTime)
	b = appendString(b, 3, m.EndTime)
	b = appendString(b, 4, m.Status)
	return b
}

func (m *UpdateAppointmentRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		switch num {
		case 1:
			m.Id = string(p)
		case 2:
			m.StartTime = string(p)
		case 3:
			m.EndTime = string(p)
		case 4:
			m.Status = string(p)
		}
		return nil
	}, nil)
}

type UpdateAppointmentResponse struct {
	Appointment *Appointment `json:"appointment,omitempty"`
}

func (m *UpdateAppointmentResponse) marshal() []byte {
	var b []byte
	if m.Appointment != nil {
		b = appendMsg(b, 1, m.Appointment)
	}
	return b
}

func (m *UpdateAppointmentResponse) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Appointment = new(Appointment)
			return m.Appointment.unmarshal(p)
		}
		return nil
	}, nil)
}

type DeleteAppointmentRequest struct {
	Id string `json:"id,omitempty" validate:"required"`
}

func (m *DeleteAppointmentRequest) marshal() []byte {
	return appendString(nil, 1, m.Id)
}

func (m *DeleteAppointmentRequest) unmarshal(b []byte) error {
	return scan(b, func(num protowire.Number, p []byte) error {
		if num == 1 {
			m.Id = string(p)
		}
		return nil
	}, nil)
}

type DeleteAppointmentResponse struct{}

func (m *DeleteAppointmentResponse) marshal() []byte          { return nil }
func (m *DeleteAppointmentResponse) unmarshal(b []byte) error { return scan(b, nil, nil) }
