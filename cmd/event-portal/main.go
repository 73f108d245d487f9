package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eventPortal/internal/ai"
	"eventPortal/internal/config"
	"eventPortal/internal/http-server/handlers/admin/resetDB"
	"eventPortal/internal/http-server/handlers/assist/chat"
	"eventPortal/internal/http-server/handlers/assist/describe"
	"eventPortal/internal/http-server/handlers/assist/poster"
	"eventPortal/internal/http-server/handlers/assist/search"
	"eventPortal/internal/http-server/handlers/auth/login"
	"eventPortal/internal/http-server/handlers/auth/logout"
	"eventPortal/internal/http-server/handlers/auth/me"
	"eventPortal/internal/http-server/handlers/event/createEvent"
	"eventPortal/internal/http-server/handlers/event/deleteEvent"
	"eventPortal/internal/http-server/handlers/event/getAllEvents"
	"eventPortal/internal/http-server/handlers/event/getClubEvents"
	"eventPortal/internal/http-server/handlers/event/getEventInfo"
	"eventPortal/internal/http-server/handlers/event/registerEvent"
	"eventPortal/internal/http-server/handlers/event/updateStatus"
	"eventPortal/internal/http-server/handlers/hall/getHalls"
	"eventPortal/internal/http-server/middleware/mwlogger"
	"eventPortal/internal/lib/logger/handlers/slogpretty"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/session"
	"eventPortal/internal/storage/localstore"
	"eventPortal/internal/store"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event portal", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	db, err := localstore.New(&cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	sessions := session.New(log, db)
	events := store.New(log, db)
	assistant := ai.New(log, cfg.Assistant)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Post("/auth/login", login.New(log, sessions))
	router.Post("/auth/logout", logout.New(log, sessions))
	router.Get("/auth/me", me.New(log, sessions))

	router.Get("/events", getAllEvents.New(log, events))
	router.Post("/events", createEvent.New(log, sessions, events))
	router.Get("/events/{id}", getEventInfo.New(log, sessions, events))
	router.Delete("/events/{id}", deleteEvent.New(log, sessions, events))
	router.Post("/events/{id}/status", updateStatus.New(log, sessions, events))
	router.Post("/events/{id}/register", registerEvent.New(log, sessions, events))
	router.Get("/events/club/{clubId}", getClubEvents.New(log, events))

	router.Get("/halls", getHalls.New(log, events))
	router.Post("/admin/reset", resetDB.New(log, sessions, events))

	router.Post("/assist/describe", describe.New(log, assistant))
	router.Post("/assist/poster", poster.New(log, assistant))
	router.Post("/assist/search", search.New(log, assistant))
	router.Post("/assist/chat", chat.New(log, assistant))

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
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
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
