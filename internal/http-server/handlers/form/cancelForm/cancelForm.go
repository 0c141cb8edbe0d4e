package cancelForm

import (
	"eventPlanner/internal/http-server/handlers/action"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FormCanceler
type FormCanceler interface {
	Cancel(form session.Form) (session.View, error)
}

// New leaves a form and goes back to the events screen.
func New(log *slog.Logger, canceler FormCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.form.cancelForm.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		form, err := session.ParseForm(chi.URLParam(r, "form"))
		if err != nil {
			log.Error("unknown form", sl.Err(err))
			action.Fail(w, r, err, "unknown form")
			return
		}

		view, err := canceler.Cancel(form)
		if err != nil {
			log.Error("failed to cancel form", slog.String("form", string(form)), sl.Err(err))
			action.Fail(w, r, err, "failed to cancel form")
			return
		}

		log.Info("form cancelled", slog.String("form", string(form)))

		action.OK(w, r, view)
	}
}
