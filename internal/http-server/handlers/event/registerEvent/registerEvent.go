package registerEvent

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

type RegisterResponse struct {
	response.Response
	Registration models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRegistrar
type EventRegistrar interface {
	RegisterForEvent(actor models.User, eventID string) (models.Registration, error)
}

type Session interface {
	Current() (models.User, bool)
}

func New(log *slog.Logger, sessions Session, events EventRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerEvent.New"

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

		log = log.With(slog.String("event_id", eventID))

		reg, err := events.RegisterForEvent(actor, eventID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUnauthorized):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only students can register for events"))
			case errors.Is(err, store.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, store.ErrNotApproved):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is not open for registration"))
			case errors.Is(err, store.ErrAlreadyRegistered):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already registered for this event"))
			case errors.Is(err, store.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is at full capacity"))
			default:
				log.Error("failed to register for event", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register for event"))
			}
			return
		}

		log.Info("student registered",
			slog.String("student_id", actor.ID),
			slog.String("registration_id", reg.ID),
		)

		render.JSON(w, r, RegisterResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
