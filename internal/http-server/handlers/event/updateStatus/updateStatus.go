package updateStatus

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/store"
)

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected Pending"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	UpdateEventStatus(actor models.User, id string, status models.EventStatus) error
}

type Session interface {
	Current() (models.User, bool)
}

func New(log *slog.Logger, sessions Session, events StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateStatus.New"

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

		var req StatusRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
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

		err = events.UpdateEventStatus(actor, eventID, models.EventStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUnauthorized):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only admins can change event status"))
			case errors.Is(err, store.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			default:
				log.Error("failed to update event status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event status"))
			}
			return
		}

		log.Info("event status updated", slog.String("status", req.Status))

		render.JSON(w, r, response.OK())
	}
}
