package getScreen

import (
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/view"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type ScreenResponse struct {
	response.Response
	Screen view.Screen `json:"screen"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ScreenGetter
type ScreenGetter interface {
	Screen() view.Screen
}

// New renders whatever screen the session is currently on.
func New(log *slog.Logger, screens ScreenGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.screen.getScreen.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		screen := screens.Screen()

		log.Debug("screen rendered", slog.String("view", string(screen.View)))

		render.JSON(w, r, ScreenResponse{
			Response: response.OK(),
			Screen:   screen,
		})
	}
}
