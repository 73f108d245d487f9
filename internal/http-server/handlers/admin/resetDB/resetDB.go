package resetDB

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

// ResetRequest requires explicit confirmation; the reset is destructive and
// restores the seed dataset.
type ResetRequest struct {
	Confirm bool `json:"confirm" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Resetter
type Resetter interface {
	Reset(actor models.User) error
}

type Session interface {
	Current() (models.User, bool)
}

func New(log *slog.Logger, sessions Session, db Resetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.resetDB.New"

		log = log.With(slog.String("op", op))

		actor, ok := sessions.Current()
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not logged in"))
			return
		}

		var req ResetRequest

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

			log.Error("reset not confirmed", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err = db.Reset(actor); err != nil {
			if errors.Is(err, store.ErrUnauthorized) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only admins can reset the database"))
				return
			}

			log.Error("failed to reset database", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to reset database"))
			return
		}

		log.Info("database reset to seed data", slog.String("admin_id", actor.ID))

		render.JSON(w, r, response.OK())
	}
}
