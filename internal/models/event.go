package models

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Event struct {
	ID              string         `json:"id" yaml:"id"`
	Title           string         `json:"title" yaml:"title"`
	Description     string         `json:"description" yaml:"description"`
	Date            string         `json:"date" yaml:"date"`
	Time            string         `json:"time" yaml:"time"`
	Location        string         `json:"location" yaml:"location"`
	Capacity        int            `json:"capacity" yaml:"capacity"`
	Category        Category       `json:"category" yaml:"category"`
	CreatedAt       time.Time      `json:"createdAt" yaml:"createdAt"`
	RegisteredUsers []Registration `json:"registeredUsers" yaml:"registeredUsers"`
}

// Day returns the calendar date of the event at UTC midnight.
func (e Event) Day() (time.Time, error) {
	day, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s: invalid date %q: %w", e.ID, e.Date, err)
	}

	return day, nil
}

func (e Event) RegisteredCount() int {
	return len(e.RegisteredUsers)
}

// IsFull reports whether the event has reached its capacity. Registration
// is offered only while it returns false.
func (e Event) IsFull() bool {
	return len(e.RegisteredUsers) >= e.Capacity
}

// WithRegistration returns a copy of e with r appended to its registrants.
// The receiver's slice is never shared with the copy.
func (e Event) WithRegistration(r Registration) Event {
	users := make([]Registration, 0, len(e.RegisteredUsers)+1)
	users = append(users, e.RegisteredUsers...)
	e.RegisteredUsers = append(users, r)

	return e
}

// EventFields are the user supplied values of the create event form.
type EventFields struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"required,datetime=15:04"`
	Location    string   `json:"location" validate:"required"`
	Capacity    int      `json:"capacity" validate:"required,min=1"`
	Category    Category `json:"category" validate:"required,oneof=conference workshop seminar networking social other"`
}

// NewEventFields returns an empty form with the default category selected.
func NewEventFields() EventFields {
	return EventFields{Category: CategoryConference}
}
