package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCloser
type SessionCloser interface {
	Logout() error
}

func New(log *slog.Logger, sessions SessionCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log = log.With(slog.String("op", op))

		if err := sessions.Logout(); err != nil {
			log.Error("failed to clear session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log out"))
			return
		}

		log.Info("user logged out")

		render.JSON(w, r, response.OK())
	}
}
