// Package session is the view controller: it tracks the current screen and
// the drafts of both forms, and turns user actions into planner mutations.
package session

import (
	"context"
	"errors"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"
	"fmt"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNoEventSelected   = errors.New("no event selected")
	ErrEventFull         = errors.New("event is full")
	ErrUnknownForm       = errors.New("unknown form")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidValue      = errors.New("invalid value")
)

// ValidationError is returned when a submitted form fails validation.
type ValidationError struct {
	Form   Form
	Errors validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s form: %v", e.Form, e.Errors)
}

func (e *ValidationError) Unwrap() error {
	return e.Errors
}

// State is a snapshot of the controller.
type State struct {
	CurrentView       View
	SelectedEvent     *models.Event
	EventDraft        models.EventFields
	RegistrationDraft models.RegistrationFields
}

// Controller serializes every action: one runs to completion before the
// next starts.
type Controller struct {
	mu       sync.Mutex
	store    *planner.Store
	log      *slog.Logger
	validate *validator.Validate
	state    State
}

func New(store *planner.Store, log *slog.Logger) *Controller {
	return &Controller{
		store:    store,
		log:      log,
		validate: validator.New(),
		state: State{
			CurrentView: ViewHome,
			EventDraft:  models.NewEventFields(),
		},
	}
}

// Read calls fn with a snapshot of the state and the store while holding the
// controller lock. fn must not retain the store.
func (c *Controller) Read(fn func(state State, store *planner.Store)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	if st.SelectedEvent != nil {
		selected := *st.SelectedEvent
		st.SelectedEvent = &selected
	}

	fn(st, c.store)
}

func (c *Controller) CurrentView() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.CurrentView
}

// Navigate moves to another screen through the navigation bar or the
// contextual "Explore Events", "Browse Events" and "Create Event" buttons.
func (c *Controller) Navigate(to View) (View, error) {
	const op = "session.Controller.Navigate"

	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.state.CurrentView
	if !canNavigate(from, to) {
		return from, fmt.Errorf("%s: %w: %s -> %s", op, ErrInvalidTransition, from, to)
	}

	if from == ViewRegister {
		c.state.SelectedEvent = nil
	}
	c.state.CurrentView = to

	c.log.Debug("navigated", slog.String("op", op), slog.String("from", string(from)), slog.String("to", string(to)))

	return to, nil
}

// SetField applies one input change to a draft form.
func (c *Controller) SetField(form Form, name, value string) error {
	const op = "session.Controller.SetField"

	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	switch form {
	case FormEvent:
		err = setEventField(&c.state.EventDraft, name, value)
	case FormRegistration:
		err = setRegistrationField(&c.state.RegistrationDraft, name, value)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func setEventField(draft *models.EventFields, name, value string) error {
	switch name {
	case "title":
		draft.Title = value
	case "description":
		draft.Description = value
	case "date":
		draft.Date = value
	case "time":
		draft.Time = value
	case "location":
		draft.Location = value
	case "capacity":
		if strings.TrimSpace(value) == "" {
			draft.Capacity = 0
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: capacity %q", ErrInvalidValue, value)
		}
		draft.Capacity = n
	case "category":
		category, err := models.ParseCategory(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		draft.Category = category
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return nil
}

func setRegistrationField(draft *models.RegistrationFields, name, value string) error {
	switch name {
	case "name":
		draft.Name = value
	case "email":
		draft.Email = value
	case "phone":
		draft.Phone = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return nil
}

// SubmitCreate submits the create form. Non-empty values in fields are
// merged into the draft first. On success the draft is reset and the
// events screen is shown.
func (c *Controller) SubmitCreate(ctx context.Context, fields *models.EventFields) (View, error) {
	const op = "session.Controller.SubmitCreate"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentView != ViewCreate {
		return c.state.CurrentView, fmt.Errorf("%s: %w: not on create form", op, ErrInvalidTransition)
	}

	if fields != nil {
		mergeEventFields(&c.state.EventDraft, *fields)
	}

	if err := c.check(FormEvent, c.state.EventDraft); err != nil {
		return c.state.CurrentView, fmt.Errorf("%s: %w", op, err)
	}

	event := c.store.CreateEvent(ctx, c.state.EventDraft)

	c.state.EventDraft = models.NewEventFields()
	c.state.CurrentView = ViewEvents

	c.log.Info("event created", slog.String("op", op), slog.String("event_id", event.ID))

	return c.state.CurrentView, nil
}

func mergeEventFields(draft *models.EventFields, in models.EventFields) {
	if in.Title != "" {
		draft.Title = in.Title
	}
	if in.Description != "" {
		draft.Description = in.Description
	}
	if in.Date != "" {
		draft.Date = in.Date
	}
	if in.Time != "" {
		draft.Time = in.Time
	}
	if in.Location != "" {
		draft.Location = in.Location
	}
	if in.Capacity != 0 {
		draft.Capacity = in.Capacity
	}
	if in.Category != "" {
		draft.Category = in.Category
	}
}

// CancelCreate leaves the create form. The draft is kept.
func (c *Controller) CancelCreate() (View, error) {
	const op = "session.Controller.CancelCreate"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentView != ViewCreate {
		return c.state.CurrentView, fmt.Errorf("%s: %w: not on create form", op, ErrInvalidTransition)
	}

	c.state.CurrentView = ViewEvents

	return c.state.CurrentView, nil
}

// SelectEvent opens the registration form for an event. Full events cannot
// be selected.
func (c *Controller) SelectEvent(id string) (View, error) {
	const op = "session.Controller.SelectEvent"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentView != ViewEvents {
		return c.state.CurrentView, fmt.Errorf("%s: %w: not on events screen", op, ErrInvalidTransition)
	}

	event, ok := c.store.Event(id)
	if !ok {
		return c.state.CurrentView, fmt.Errorf("%s: %w: %s", op, planner.ErrEventNotFound, id)
	}

	if event.IsFull() {
		return c.state.CurrentView, fmt.Errorf("%s: %w: %s", op, ErrEventFull, id)
	}

	c.state.SelectedEvent = &event
	c.state.CurrentView = ViewRegister

	return c.state.CurrentView, nil
}

// SubmitRegistration registers the draft for the selected event and shows
// the schedule.
func (c *Controller) SubmitRegistration(ctx context.Context, fields *models.RegistrationFields) (View, error) {
	const op = "session.Controller.SubmitRegistration"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentView != ViewRegister {
		return c.state.CurrentView, fmt.Errorf("%s: %w: not on registration form", op, ErrInvalidTransition)
	}

	if c.state.SelectedEvent == nil {
		return c.state.CurrentView, fmt.Errorf("%s: %w", op, ErrNoEventSelected)
	}

	if fields != nil {
		mergeRegistrationFields(&c.state.RegistrationDraft, *fields)
	}

	if err := c.check(FormRegistration, c.state.RegistrationDraft); err != nil {
		return c.state.CurrentView, fmt.Errorf("%s: %w", op, err)
	}

	reg, err := c.store.RegisterForEvent(ctx, c.state.SelectedEvent.ID, c.state.RegistrationDraft)
	if err != nil {
		return c.state.CurrentView, fmt.Errorf("%s: %w", op, err)
	}

	c.state.RegistrationDraft = models.RegistrationFields{}
	c.state.SelectedEvent = nil
	c.state.CurrentView = ViewSchedule

	c.log.Info("registered for event",
		slog.String("op", op),
		slog.String("event_id", reg.EventID),
		slog.String("registration_id", reg.ID),
	)

	return c.state.CurrentView, nil
}

func mergeRegistrationFields(draft *models.RegistrationFields, in models.RegistrationFields) {
	if in.Name != "" {
		draft.Name = in.Name
	}
	if in.Email != "" {
		draft.Email = in.Email
	}
	if in.Phone != "" {
		draft.Phone = in.Phone
	}
}

// CancelRegistration leaves the registration form and drops the selection.
func (c *Controller) CancelRegistration() (View, error) {
	const op = "session.Controller.CancelRegistration"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentView != ViewRegister {
		return c.state.CurrentView, fmt.Errorf("%s: %w: not on registration form", op, ErrInvalidTransition)
	}

	c.state.SelectedEvent = nil
	c.state.CurrentView = ViewEvents

	return c.state.CurrentView, nil
}

// Cancel dispatches to CancelCreate or CancelRegistration.
func (c *Controller) Cancel(form Form) (View, error) {
	switch form {
	case FormEvent:
		return c.CancelCreate()
	case FormRegistration:
		return c.CancelRegistration()
	}

	return c.CurrentView(), fmt.Errorf("session.Controller.Cancel: %w: %q", ErrUnknownForm, form)
}

func (c *Controller) check(form Form, draft any) error {
	if err := c.validate.Struct(draft); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			return &ValidationError{Form: form, Errors: validateErr}
		}
		return err
	}

	return nil
}
