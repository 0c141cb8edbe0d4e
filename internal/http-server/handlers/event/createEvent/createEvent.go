package createEvent

import (
	"context"
	"eventPlanner/internal/http-server/handlers/action"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/session"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSubmitter
type EventSubmitter interface {
	SubmitCreate(ctx context.Context, fields *models.EventFields) (session.View, error)
}

// New submits the create form. A body, when present, is merged into the
// draft before validation.
func New(log *slog.Logger, submitter EventSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.EventFields

		hasBody, err := action.DecodeOptional(r, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		var fields *models.EventFields
		if hasBody {
			log.Info("request body decoded", slog.Any("request", req))
			fields = &req
		}

		view, err := submitter.SubmitCreate(r.Context(), fields)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			action.Fail(w, r, err, "failed to create event")

			return
		}

		log.Info("event created")

		action.OK(w, r, view)
	}
}
