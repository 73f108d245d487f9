package getHalls

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"
)

type HallsResponse struct {
	response.Response
	Halls []models.Hall `json:"halls"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HallsLister
type HallsLister interface {
	Halls() []models.Hall
}

func New(log *slog.Logger, halls HallsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hall.getHalls.New"

		log = log.With(slog.String("op", op))

		list := halls.Halls()

		log.Info("halls listed", slog.Int("count", len(list)))

		render.JSON(w, r, HallsResponse{
			Response: response.OK(),
			Halls:    list,
		})
	}
}
