package session

import "fmt"

// View names the screen the user is on.
type View string

const (
	ViewHome     View = "home"
	ViewEvents   View = "events"
	ViewCreate   View = "create"
	ViewRegister View = "register"
	ViewSchedule View = "schedule"
)

var views = []View{ViewHome, ViewEvents, ViewCreate, ViewRegister, ViewSchedule}

func ParseView(s string) (View, error) {
	for _, v := range views {
		if string(v) == s {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: unknown view %q", ErrInvalidTransition, s)
}

// Form names one of the two draft forms.
type Form string

const (
	FormEvent        Form = "event"
	FormRegistration Form = "registration"
)

func ParseForm(s string) (Form, error) {
	switch Form(s) {
	case FormEvent, FormRegistration:
		return Form(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// navigable lists, per target view, the views it may be entered from
// through Navigate. A nil entry means any view.
var navigable = map[View][]View{
	ViewHome:     nil,
	ViewEvents:   nil,
	ViewSchedule: nil,
	ViewCreate:   {ViewEvents},
}

func canNavigate(from, to View) bool {
	sources, ok := navigable[to]
	if !ok {
		return false
	}

	if sources == nil {
		return true
	}

	for _, v := range sources {
		if v == from {
			return true
		}
	}

	return false
}
