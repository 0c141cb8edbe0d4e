package getHome

import (
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/view"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type HomeResponse struct {
	response.Response
	Home view.HomeView `json:"home"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HomeGetter
type HomeGetter interface {
	Home() view.HomeView
}

func New(log *slog.Logger, home HomeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.screen.getHome.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		page := home.Home()

		log.Debug("home rendered", slog.Int("upcoming", len(page.Upcoming)))

		render.JSON(w, r, HomeResponse{
			Response: response.OK(),
			Home:     page,
		})
	}
}
