// Package view derives the screens shown to the user from the planner state.
// Everything here is a pure function of its inputs.
package view

import (
	"bytes"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"
	"eventPlanner/internal/session"
	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"html/template"
	"time"
)

const (
	DisplayDateLayout = "1/2/2006"
	NotAvailable      = "N/A"
	HomePreviewSize   = 3
)

// Source is the read side of the planner store.
type Source interface {
	Events() []models.Event
	Event(id string) (models.Event, bool)
	UpcomingEvents(now time.Time) []models.Event
	UserRegistrations() []planner.ScheduledRegistration
}

var _ Source = (*planner.Store)(nil)

// mdRenderer omits raw HTML in descriptions.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type NavItem struct {
	View   session.View `json:"view"`
	Label  string       `json:"label"`
	Active bool         `json:"active"`
}

type Action struct {
	Label  string       `json:"label"`
	Target session.View `json:"target"`
}

type Screen struct {
	View     session.View  `json:"view"`
	Nav      []NavItem     `json:"nav"`
	Home     *HomeView     `json:"home,omitempty"`
	Events   *EventsView   `json:"events,omitempty"`
	Create   *CreateView   `json:"create,omitempty"`
	Register *RegisterView `json:"register,omitempty"`
	Schedule *ScheduleView `json:"schedule,omitempty"`
}

type FeatureCard struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type EventPreview struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type HomeView struct {
	Heading      string         `json:"heading"`
	Tagline      string         `json:"tagline"`
	CallToAction Action         `json:"callToAction"`
	Features     []FeatureCard  `json:"features"`
	Upcoming     []EventPreview `json:"upcoming"`
	EmptyMessage string         `json:"emptyMessage,omitempty"`
}

type EventCard struct {
	ID              string        `json:"id"`
	Category        string        `json:"category"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	DescriptionHTML template.HTML `json:"descriptionHtml"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Location        string        `json:"location"`
	Capacity        int           `json:"capacity"`
	Registered      int           `json:"registered"`
	RegisterEnabled bool          `json:"registerEnabled"`
	ActionLabel     string        `json:"actionLabel"`
}

type EventsView struct {
	CreateAction Action      `json:"createAction"`
	Cards        []EventCard `json:"cards"`
	EmptyMessage string      `json:"emptyMessage,omitempty"`
}

// EventDetail is one event card with everyone registered for it.
type EventDetail struct {
	Card          EventCard             `json:"card"`
	Registrations []models.Registration `json:"registrations"`
}

type CategoryOption struct {
	Value    models.Category `json:"value"`
	Label    string          `json:"label"`
	Selected bool            `json:"selected"`
}

type CreateView struct {
	Draft      models.EventFields `json:"draft"`
	Categories []CategoryOption   `json:"categories"`
}

type RegisterView struct {
	EventID  string                    `json:"eventId"`
	Title    string                    `json:"title"`
	Date     string                    `json:"date"`
	Time     string                    `json:"time"`
	Location string                    `json:"location"`
	Draft    models.RegistrationFields `json:"draft"`
}

type ScheduleEntry struct {
	RegistrationID string `json:"registrationId"`
	EventTitle     string `json:"eventTitle"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	RegisteredOn   string `json:"registeredOn"`
	RegisteredAgo  string `json:"registeredAgo"`
}

type ScheduleView struct {
	Entries      []ScheduleEntry `json:"entries"`
	EmptyMessage string          `json:"emptyMessage,omitempty"`
	BrowseAction *Action         `json:"browseAction,omitempty"`
}

func Nav(current session.View) []NavItem {
	items := []NavItem{
		{View: session.ViewHome, Label: "Home"},
		{View: session.ViewEvents, Label: "Events"},
		{View: session.ViewSchedule, Label: "My Schedule"},
	}

	for i := range items {
		items[i].Active = items[i].View == current
	}

	return items
}

// Build renders the screen for the current view of st.
func Build(st session.State, src Source, now time.Time) Screen {
	screen := Screen{
		View: st.CurrentView,
		Nav:  Nav(st.CurrentView),
	}

	switch st.CurrentView {
	case session.ViewHome:
		home := Home(src, now)
		screen.Home = &home
	case session.ViewEvents:
		events := Events(src)
		screen.Events = &events
	case session.ViewCreate:
		create := Create(st.EventDraft)
		screen.Create = &create
	case session.ViewRegister:
		register := Register(st.SelectedEvent, st.RegistrationDraft)
		screen.Register = &register
	case session.ViewSchedule:
		schedule := Schedule(src, now)
		screen.Schedule = &schedule
	}

	return screen
}

func Home(src Source, now time.Time) HomeView {
	home := HomeView{
		Heading:      "Welcome to Event Planner",
		Tagline:      "Discover, register, and manage your events all in one place",
		CallToAction: Action{Label: "Explore Events", Target: session.ViewEvents},
		Features: []FeatureCard{
			{Title: "Create Events", Text: "Organize and manage your own events with ease"},
			{Title: "Register for Events", Text: "Find and register for events that interest you"},
			{Title: "Track Your Schedule", Text: "Keep track of all your registered events"},
		},
		Upcoming: []EventPreview{},
	}

	upcoming := src.UpcomingEvents(now)
	if len(upcoming) == 0 {
		home.EmptyMessage = "No upcoming events. Create one to get started!"
		return home
	}

	if len(upcoming) > HomePreviewSize {
		upcoming = upcoming[:HomePreviewSize]
	}

	for _, e := range upcoming {
		home.Upcoming = append(home.Upcoming, EventPreview{
			ID:       e.ID,
			Title:    e.Title,
			Date:     displayDate(e),
			Location: e.Location,
		})
	}

	return home
}

func Events(src Source) EventsView {
	events := src.Events()

	v := EventsView{
		CreateAction: Action{Label: "Create Event", Target: session.ViewCreate},
		Cards:        make([]EventCard, 0, len(events)),
	}

	for _, e := range events {
		v.Cards = append(v.Cards, Card(e))
	}

	if len(events) == 0 {
		v.EmptyMessage = "No events created yet. Be the first to create one!"
	}

	return v
}

// Card renders one event of the events screen. The register action is
// disabled once the event is full.
func Card(e models.Event) EventCard {
	card := EventCard{
		ID:              e.ID,
		Category:        string(e.Category),
		Title:           e.Title,
		Description:     e.Description,
		DescriptionHTML: renderMarkdown(e.Description),
		Date:            displayDate(e),
		Time:            e.Time,
		Location:        e.Location,
		Capacity:        e.Capacity,
		Registered:      e.RegisteredCount(),
		RegisterEnabled: !e.IsFull(),
		ActionLabel:     "Register",
	}

	if e.IsFull() {
		card.ActionLabel = "Full"
	}

	return card
}

func Detail(e models.Event) EventDetail {
	regs := e.RegisteredUsers
	if regs == nil {
		regs = []models.Registration{}
	}

	return EventDetail{Card: Card(e), Registrations: regs}
}

func Create(draft models.EventFields) CreateView {
	v := CreateView{
		Draft:      draft,
		Categories: make([]CategoryOption, 0, len(models.Categories)),
	}

	for _, c := range models.Categories {
		v.Categories = append(v.Categories, CategoryOption{
			Value:    c,
			Label:    c.Label(),
			Selected: c == draft.Category,
		})
	}

	return v
}

func Register(selected *models.Event, draft models.RegistrationFields) RegisterView {
	v := RegisterView{Draft: draft}
	if selected == nil {
		return v
	}

	v.EventID = selected.ID
	v.Title = selected.Title
	v.Date = displayDate(*selected)
	v.Time = selected.Time
	v.Location = selected.Location

	return v
}

// Schedule lists every registration. Fields of an event that no longer
// exists render as N/A.
func Schedule(src Source, now time.Time) ScheduleView {
	entries := src.UserRegistrations()

	v := ScheduleView{Entries: make([]ScheduleEntry, 0, len(entries))}

	for _, sr := range entries {
		entry := ScheduleEntry{
			RegistrationID: sr.Registration.ID,
			EventTitle:     sr.Registration.EventTitle,
			Date:           NotAvailable,
			Time:           NotAvailable,
			Location:       NotAvailable,
			RegisteredOn:   sr.Registration.RegisteredAt.Format(DisplayDateLayout),
			RegisteredAgo:  humanize.RelTime(sr.Registration.RegisteredAt, now, "ago", "from now"),
		}

		if sr.Event != nil {
			entry.Date = displayDate(*sr.Event)
			entry.Time = orNotAvailable(sr.Event.Time)
			entry.Location = orNotAvailable(sr.Event.Location)
		}

		v.Entries = append(v.Entries, entry)
	}

	if len(entries) == 0 {
		v.EmptyMessage = "You haven't registered for any events yet."
		v.BrowseAction = &Action{Label: "Browse Events", Target: session.ViewEvents}
	}

	return v
}

func displayDate(e models.Event) string {
	day, err := e.Day()
	if err != nil {
		return NotAvailable
	}

	return day.Format(DisplayDateLayout)
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}

	return template.HTML(buf.String())
}
