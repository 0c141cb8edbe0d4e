package planner

import (
	"eventPlanner/internal/models"
	"slices"
	"time"
)

// Events returns a copy of all events in creation order.
func (s *Store) Events() []models.Event {
	return slices.Clone(s.events)
}

// Registrations returns a copy of all registrations in creation order.
func (s *Store) Registrations() []models.Registration {
	return slices.Clone(s.registrations)
}

func (s *Store) Event(id string) (models.Event, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Event{}, false
	}

	return s.events[idx], true
}

// UpcomingEvents returns the events dated on or after now's calendar day,
// ordered by date. Events sharing a date keep their creation order. Events
// with an unparseable date are left out.
func (s *Store) UpcomingEvents(now time.Time) []models.Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type dated struct {
		event models.Event
		day   time.Time
	}

	var upcoming []dated
	for _, event := range s.events {
		day, err := event.Day()
		if err != nil || day.Before(today) {
			continue
		}
		upcoming = append(upcoming, dated{event: event, day: day})
	}

	slices.SortStableFunc(upcoming, func(a, b dated) int {
		return a.day.Compare(b.day)
	})

	events := make([]models.Event, 0, len(upcoming))
	for _, u := range upcoming {
		events = append(events, u.event)
	}

	return events
}

// ScheduledRegistration is a registration joined with the event it points
// to. Event is nil when the event no longer exists.
type ScheduledRegistration struct {
	Registration models.Registration
	Event        *models.Event
}

// UserRegistrations joins every registration with its event, in
// registration order.
func (s *Store) UserRegistrations() []ScheduledRegistration {
	out := make([]ScheduledRegistration, 0, len(s.registrations))

	for _, r := range s.registrations {
		entry := ScheduledRegistration{Registration: r}
		if event, ok := s.Event(r.EventID); ok {
			entry.Event = &event
		}
		out = append(out, entry)
	}

	return out
}
