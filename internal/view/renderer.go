package view

import (
	"eventPlanner/internal/planner"
	"eventPlanner/internal/session"
	"fmt"
)

// StateReader grants locked access to the session state and the store.
type StateReader interface {
	Read(fn func(state session.State, store *planner.Store))
}

// Renderer builds view models from a live session.
type Renderer struct {
	reader StateReader
}

func NewRenderer(reader StateReader) *Renderer {
	return &Renderer{reader: reader}
}

func (r *Renderer) Screen() Screen {
	var screen Screen
	r.reader.Read(func(st session.State, store *planner.Store) {
		screen = Build(st, store, store.Now())
	})

	return screen
}

func (r *Renderer) Home() HomeView {
	var home HomeView
	r.reader.Read(func(_ session.State, store *planner.Store) {
		home = Home(store, store.Now())
	})

	return home
}

func (r *Renderer) Events() EventsView {
	var events EventsView
	r.reader.Read(func(_ session.State, store *planner.Store) {
		events = Events(store)
	})

	return events
}

func (r *Renderer) Event(id string) (EventDetail, error) {
	var (
		detail EventDetail
		found  bool
	)
	r.reader.Read(func(_ session.State, store *planner.Store) {
		event, ok := store.Event(id)
		if ok {
			detail, found = Detail(event), true
		}
	})

	if !found {
		return EventDetail{}, fmt.Errorf("view.Renderer.Event: %w: %s", planner.ErrEventNotFound, id)
	}

	return detail, nil
}

func (r *Renderer) Schedule() ScheduleView {
	var schedule ScheduleView
	r.reader.Read(func(_ session.State, store *planner.Store) {
		schedule = Schedule(store, store.Now())
	})

	return schedule
}
