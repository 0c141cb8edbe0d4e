package getAllEvents

import (
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/view"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type EventsResponse struct {
	response.Response
	view.EventsView
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events() view.EventsView
}

func New(log *slog.Logger, events EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list := events.Events()

		log.Info("events retrieved", slog.Int("count", len(list.Cards)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, list view.EventsView) {
	render.JSON(w, r, EventsResponse{
		Response:   response.OK(),
		EventsView: list,
	})
}
