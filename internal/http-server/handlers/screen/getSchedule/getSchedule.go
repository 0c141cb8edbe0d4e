package getSchedule

import (
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/view"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type ScheduleResponse struct {
	response.Response
	Schedule view.ScheduleView `json:"schedule"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ScheduleGetter
type ScheduleGetter interface {
	Schedule() view.ScheduleView
}

func New(log *slog.Logger, schedule ScheduleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.screen.getSchedule.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		page := schedule.Schedule()

		log.Debug("schedule rendered", slog.Int("entries", len(page.Entries)))

		render.JSON(w, r, ScheduleResponse{
			Response: response.OK(),
			Schedule: page,
		})
	}
}
