package action

import (
	"errors"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/planner"
	"eventPlanner/internal/session"
	"github.com/go-chi/render"
	"io"
	"net/http"
)

// Response is returned by every handler that moves the session to another screen.
type Response struct {
	response.Response
	View session.View `json:"view"`
}

func OK(w http.ResponseWriter, r *http.Request, view session.View) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		View:     view,
	})
}

// DecodeOptional decodes a JSON body into v. It reports false when the request has no body.
func DecodeOptional(r *http.Request, v any) (bool, error) {
	if r.Body == nil {
		return false, nil
	}

	err := render.DecodeJSON(r.Body, v)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Fail maps a session or store error to a status code and writes the error envelope.
func Fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var validateErr *session.ValidationError

	switch {
	case errors.As(err, &validateErr):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErr.Errors))
	case errors.Is(err, planner.ErrEventNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("event not found"))
	case errors.Is(err, session.ErrEventFull):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("event is full"))
	case errors.Is(err, session.ErrNoEventSelected):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("no event selected"))
	case errors.Is(err, session.ErrInvalidTransition):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("action is not available on the current screen"))
	case errors.Is(err, session.ErrUnknownForm):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown form"))
	case errors.Is(err, session.ErrUnknownField):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown field"))
	case errors.Is(err, session.ErrInvalidValue):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid value"))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(fallback))
	}
}
