package getClubEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"
)

type ClubEventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubEventsLister
type ClubEventsLister interface {
	EventsByClub(clubID string) []models.Event
}

// New lists a club's own submissions in every status, for its dashboard.
func New(log *slog.Logger, events ClubEventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getClubEvents.New"

		log = log.With(slog.String("op", op))

		clubID := chi.URLParam(r, "clubId")
		if clubID == "" {
			log.Error("club id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("club id is required"))
			return
		}

		list := events.EventsByClub(clubID)

		log.Info("club events listed", slog.String("club_id", clubID), slog.Int("count", len(list)))

		render.JSON(w, r, ClubEventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}
