// Package planner holds the event and registration collections and mirrors
// them to a key-value backend after every committed mutation.
package planner

import (
	"context"
	"errors"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"fmt"
	"github.com/google/uuid"
	"log/slog"
	"time"
)

const (
	KeyEvents        = "events"
	KeyRegistrations = "registrations"
)

var (
	ErrCorruptState  = errors.New("persisted state is malformed")
	ErrEventNotFound = errors.New("event not found")
)

// KV is the persistence collaborator. Get reports ok=false for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type Store struct {
	kv             KV
	codec          Codec
	log            *slog.Logger
	notifier       Notifier
	now            func() time.Time
	newID          func() string
	resetOnCorrupt bool

	events        []models.Event
	registrations []models.Registration
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithResetOnCorrupt makes Load replace a malformed collection with an empty
// one instead of failing.
func WithResetOnCorrupt(reset bool) Option {
	return func(s *Store) { s.resetOnCorrupt = reset }
}

func New(kv KV, codec Codec, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:            kv,
		codec:         codec,
		log:           log,
		now:           time.Now,
		newID:         uuid.NewString,
		events:        []models.Event{},
		registrations: []models.Registration{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.notifier == nil {
		s.notifier = NewLogNotifier(log)
	}

	return s
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Load replaces the in-memory collections with the persisted ones. A missing
// key yields an empty collection.
func (s *Store) Load(ctx context.Context) error {
	const op = "planner.Store.Load"

	log := s.log.With(slog.String("op", op))

	events, err := loadCollection[models.Event](ctx, s, KeyEvents)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	registrations, err := loadCollection[models.Registration](ctx, s, KeyRegistrations)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i := range events {
		if events[i].RegisteredUsers == nil {
			events[i].RegisteredUsers = []models.Registration{}
		}
	}

	s.events = events
	s.registrations = registrations

	log.Info("state loaded",
		slog.Int("events", len(events)),
		slog.Int("registrations", len(registrations)),
	)

	return nil
}

func loadCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}

	if !ok {
		return []T{}, nil
	}

	var items []T
	if err = s.codec.Unmarshal([]byte(raw), &items); err != nil {
		if s.resetOnCorrupt {
			s.log.Warn("malformed persisted collection, starting empty",
				slog.String("key", key),
				sl.Err(err),
			)
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorruptState, key, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save writes both collections to the backend.
func (s *Store) Save(ctx context.Context) error {
	const op = "planner.Store.Save"

	if err := s.persist(ctx, KeyEvents, s.events); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.persist(ctx, KeyRegistrations, s.registrations); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	if err = s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}

	return nil
}

// writeBack mirrors one collection after a committed mutation. Failures are
// logged; the in-memory state stays authoritative.
func (s *Store) writeBack(ctx context.Context, key string, v any) {
	if err := s.persist(ctx, key, v); err != nil {
		s.log.Error("failed to persist collection", slog.String("key", key), sl.Err(err))
	}
}

func (s *Store) notify(ctx context.Context, change Change) {
	if err := s.notifier.Notify(ctx, change); err != nil {
		s.log.Error("failed to publish change", slog.String("kind", string(change.Kind)), sl.Err(err))
	}
}

// CreateEvent appends a new event built from fields.
func (s *Store) CreateEvent(ctx context.Context, fields models.EventFields) models.Event {
	event := models.Event{
		ID:              s.newID(),
		Title:           fields.Title,
		Description:     fields.Description,
		Date:            fields.Date,
		Time:            fields.Time,
		Location:        fields.Location,
		Capacity:        fields.Capacity,
		Category:        fields.Category,
		CreatedAt:       s.now().UTC(),
		RegisteredUsers: []models.Registration{},
	}

	s.events = append(s.events, event)
	s.writeBack(ctx, KeyEvents, s.events)

	s.notify(ctx, Change{Kind: ChangeEventCreated, At: event.CreatedAt, Event: event})

	return event
}

// RegisterForEvent records a registration for the event with eventID. The
// registration is appended to the global collection and to a copy of the
// event that replaces the stored one. Capacity is not checked here.
func (s *Store) RegisterForEvent(ctx context.Context, eventID string, fields models.RegistrationFields) (models.Registration, error) {
	const op = "planner.Store.RegisterForEvent"

	idx := s.indexOf(eventID)
	if idx < 0 {
		return models.Registration{}, fmt.Errorf("%s: %w: %s", op, ErrEventNotFound, eventID)
	}

	event := s.events[idx]

	registration := models.Registration{
		ID:           s.newID(),
		EventID:      event.ID,
		EventTitle:   event.Title,
		Name:         fields.Name,
		Email:        fields.Email,
		Phone:        fields.Phone,
		RegisteredAt: s.now().UTC(),
	}

	s.registrations = append(s.registrations, registration)
	s.writeBack(ctx, KeyRegistrations, s.registrations)

	events := make([]models.Event, len(s.events))
	copy(events, s.events)
	events[idx] = event.WithRegistration(registration)
	s.events = events
	s.writeBack(ctx, KeyEvents, s.events)

	s.notify(ctx, Change{
		Kind:         ChangeRegistrationCreated,
		At:           registration.RegisteredAt,
		Event:        events[idx],
		Registration: &registration,
	})

	return registration, nil
}

func (s *Store) indexOf(eventID string) int {
	for i := range s.events {
		if s.events[i].ID == eventID {
			return i
		}
	}

	return -1
}
