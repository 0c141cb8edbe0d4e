package editForm

import (
	"errors"
	"eventPlanner/internal/http-server/handlers/action"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

// FieldRequest is one input change on a draft form.
type FieldRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FormEditor
type FormEditor interface {
	SetField(form session.Form, name, value string) error
}

func New(log *slog.Logger, editor FormEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.form.editForm.New"

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

		var req FieldRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err = editor.SetField(form, req.Name, req.Value); err != nil {
			log.Error("failed to set field", slog.String("field", req.Name), sl.Err(err))
			action.Fail(w, r, err, "failed to set field")
			return
		}

		log.Debug("field set", slog.String("form", string(form)), slog.String("field", req.Name))

		render.JSON(w, r, response.OK())
	}
}
