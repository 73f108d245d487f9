package getAllEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"
	"eventPortal/internal/views"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	EventsForStudent() []models.Event
}

// New lists approved events, optionally narrowed by ?q= free text and
// ?category= (with the dashboard's alias mappings).
func New(log *slog.Logger, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query().Get("q")
		category := r.URL.Query().Get("category")

		filtered := views.Filter(events.EventsForStudent(), query, category)

		log.Info("events listed",
			slog.Int("count", len(filtered)),
			slog.String("q", query),
			slog.String("category", category),
		)

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   filtered,
		})
	}
}
