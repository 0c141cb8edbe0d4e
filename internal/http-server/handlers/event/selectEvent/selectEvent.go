package selectEvent

import (
	"eventPlanner/internal/http-server/handlers/action"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSelector
type EventSelector interface {
	SelectEvent(id string) (session.View, error)
}

// New opens the registration form for the event in the path. Full events
// are rejected with 409.
func New(log *slog.Logger, selector EventSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.selectEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		view, err := selector.SelectEvent(eventID)
		if err != nil {
			log.Error("failed to select event", sl.Err(err))
			action.Fail(w, r, err, "failed to select event")
			return
		}

		log.Info("event selected")

		action.OK(w, r, view)
	}
}
