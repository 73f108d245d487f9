package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"
)

type MeResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionReader
type SessionReader interface {
	Current() (models.User, bool)
}

func New(log *slog.Logger, sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log = log.With(slog.String("op", op))

		user, ok := sessions.Current()
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not logged in"))
			return
		}

		log.Info("current user served", slog.String("user_id", user.ID))

		render.JSON(w, r, MeResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
