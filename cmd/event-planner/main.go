package main

import (
	"context"
	"errors"
	"eventPlanner/internal/config"
	"eventPlanner/internal/http-server/handlers/event/createEvent"
	"eventPlanner/internal/http-server/handlers/event/getAllEvents"
	"eventPlanner/internal/http-server/handlers/event/getEventInfo"
	"eventPlanner/internal/http-server/handlers/event/selectEvent"
	"eventPlanner/internal/http-server/handlers/form/cancelForm"
	"eventPlanner/internal/http-server/handlers/form/editForm"
	"eventPlanner/internal/http-server/handlers/registration/createRegistration"
	"eventPlanner/internal/http-server/handlers/screen/getHome"
	"eventPlanner/internal/http-server/handlers/screen/getSchedule"
	"eventPlanner/internal/http-server/handlers/screen/getScreen"
	"eventPlanner/internal/http-server/handlers/screen/navigate"
	"eventPlanner/internal/http-server/middleware/mwlogger"
	"eventPlanner/internal/lib/logger/handlers/slogpretty"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/notifier/kafka"
	"eventPlanner/internal/planner"
	"eventPlanner/internal/session"
	"eventPlanner/internal/storage"
	"eventPlanner/internal/storage/codec"
	"eventPlanner/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event planner", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	backend, err := storage.Open(ctx, &cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	cdc, err := codec.ByName(cfg.Storage.Codec)
	if err != nil {
		log.Error("failed to init codec", sl.Err(err))
		os.Exit(1)
	}

	opts := []planner.Option{planner.WithResetOnCorrupt(cfg.Storage.ResetOnCorrupt)}

	var publisher *kafka.Publisher
	if cfg.Notifier.Kafka.Enabled {
		publisher, err = kafka.New(ctx, &cfg.Notifier.Kafka)
		if err != nil {
			log.Error("failed to init kafka notifier", sl.Err(err))
			os.Exit(1)
		}

		opts = append(opts, planner.WithNotifier(publisher))
	}

	store := planner.New(backend, cdc, log, opts...)

	if err = store.Load(ctx); err != nil {
		log.Error("failed to load persisted state", sl.Err(err))
		os.Exit(1)
	}

	log.Info("storage ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("codec", cdc.Name()),
	)

	controller := session.New(store, log)
	renderer := view.NewRenderer(controller)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", getScreen.New(log, renderer))
	router.Get("/home", getHome.New(log, renderer))
	router.Get("/schedule", getSchedule.New(log, renderer))
	router.Post("/navigate/{view}", navigate.New(log, controller))

	router.Put("/forms/{form}", editForm.New(log, controller))
	router.Post("/forms/{form}/cancel", cancelForm.New(log, controller))

	router.Get("/events", getAllEvents.New(log, renderer))
	router.Get("/events/{id}", getEventInfo.New(log, renderer))
	router.Post("/events", createEvent.New(log, controller))
	router.Post("/events/{id}/select", selectEvent.New(log, controller))
	router.Post("/registrations", createRegistration.New(log, controller))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Save(shutdownCtx); err != nil {
		log.Error("failed to save state", sl.Err(err))
	}

	if publisher != nil {
		publisher.Close()
	}

	if err = backend.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed", slog.String("driver", cfg.Storage.Driver))
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
