package createEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/store"
)

type EventRequest struct {
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description"`
	Date               string `json:"date" validate:"required"`
	Time               string `json:"time" validate:"required"`
	Location           string `json:"location" validate:"required"`
	Category           string `json:"category" validate:"required"`
	Capacity           int    `json:"capacity" validate:"required,gt=0"`
	ImageURL           string `json:"imageUrl"`
	HODLetterURL       string `json:"hodLetterUrl"`
	PrincipalLetterURL string `json:"principalLetterUrl"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	AddEvent(actor models.User, event models.Event) (models.Event, error)
}

type Session interface {
	Current() (models.User, bool)
}

func New(log *slog.Logger, sessions Session, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		actor, ok := sessions.Current()
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not logged in"))
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		event, err := events.AddEvent(actor, models.Event{
			Title:              req.Title,
			Description:        req.Description,
			Date:               req.Date,
			Time:               req.Time,
			Location:           req.Location,
			Category:           req.Category,
			Capacity:           req.Capacity,
			ImageURL:           req.ImageURL,
			HODLetterURL:       req.HODLetterURL,
			PrincipalLetterURL: req.PrincipalLetterURL,
		})
		if err != nil {
			if errors.Is(err, store.ErrUnauthorized) {
				log.Info("submission rejected", slog.String("role", string(actor.Role)))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only clubs can submit events"))
				return
			}

			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))
			return
		}

		log.Info("event submitted", slog.String("id", event.ID), slog.String("club_id", event.ClubID))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
