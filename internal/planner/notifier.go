package planner

import (
	"context"
	"eventPlanner/internal/models"
	"log/slog"
	"time"
)

type ChangeKind string

const (
	ChangeEventCreated        ChangeKind = "event.created"
	ChangeRegistrationCreated ChangeKind = "registration.created"
)

// Change describes one committed mutation. Event is the event as stored
// after the change.
type Change struct {
	Kind         ChangeKind           `json:"kind"`
	At           time.Time            `json:"at"`
	Event        models.Event         `json:"event"`
	Registration *models.Registration `json:"registration,omitempty"`
}

// EntityID is the id of the entity the change created.
func (c Change) EntityID() string {
	if c.Registration != nil {
		return c.Registration.ID
	}

	return c.Event.ID
}

// Notifier observes committed mutations.
type Notifier interface {
	Notify(ctx context.Context, change Change) error
}

type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, change Change) error {
	n.log.InfoContext(ctx, "state changed",
		slog.String("kind", string(change.Kind)),
		slog.String("event_id", change.Event.ID),
		slog.String("entity_id", change.EntityID()),
	)

	return nil
}
