package navigate

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Navigator
type Navigator interface {
	Navigate(to session.View) (session.View, error)
}

func New(log *slog.Logger, nav Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.screen.navigate.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		to, err := session.ParseView(chi.URLParam(r, "view"))
		if err != nil {
			log.Error("unknown view", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown view"))
			return
		}

		view, err := nav.Navigate(to)
		if err != nil {
			log.Error("failed to navigate", slog.String("to", string(to)), sl.Err(err))
			action.Fail(w, r, err, "failed to navigate")
			return
		}

		log.Info("navigated", slog.String("view", string(view)))

		action.OK(w, r, view)
	}
}
