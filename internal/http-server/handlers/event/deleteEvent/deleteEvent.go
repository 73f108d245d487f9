package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/store"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(actor models.User, id string) error
}

type Session interface {
	Current() (models.User, bool)
}

func New(log *slog.Logger, sessions Session, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		actor, ok := sessions.Current()
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not logged in"))
			return
		}

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		err := events.DeleteEvent(actor, eventID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUnauthorized):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not allowed to delete this event"))
			case errors.Is(err, store.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			default:
				log.Error("failed to delete event", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete event"))
			}
			return
		}

		log.Info("event deleted", slog.String("event_id", eventID))

		render.JSON(w, r, response.OK())
	}
}
