package getEventInfo

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

type EventInfoResponse struct {
	response.Response
	Event         models.Event          `json:"event"`
	Registrations []models.Registration `json:"registrations,omitempty"`
	IsRegistered  bool                  `json:"isRegistered"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	EventByID(id string) (models.Event, error)
	Registrations(eventID string) []models.Registration
	IsRegistered(eventID, studentID string) bool
}

type Session interface {
	Current() (models.User, bool)
}

func New(log *slog.Logger, sessions Session, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, err := events.EventByID(eventID)
		if err != nil {
			if errors.Is(err, store.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		resp := EventInfoResponse{
			Response: response.OK(),
			Event:    event,
		}

		// The attendee list is organizer-facing; students instead get their
		// own registration status.
		if user, ok := sessions.Current(); ok {
			switch user.Role {
			case models.RoleStudent:
				resp.IsRegistered = events.IsRegistered(eventID, user.ID)
			case models.RoleAdmin:
				resp.Registrations = events.Registrations(eventID)
			case models.RoleClub:
				if user.ID == event.ClubID {
					resp.Registrations = events.Registrations(eventID)
				}
			}
		}

		log.Info("event info served")

		render.JSON(w, r, resp)
	}
}
