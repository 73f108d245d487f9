package login

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPortal/internal/identity"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
)

type LoginRequest struct {
	Role   string `json:"role" validate:"required,oneof=admin club student"`
	USN    string `json:"usn,omitempty"`
	ClubID string `json:"club_id,omitempty"`
}

type LoginResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionWriter
type SessionWriter interface {
	Login(user models.User) error
}

func New(log *slog.Logger, sessions SessionWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

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

		var user models.User

		switch models.UserRole(req.Role) {
		case models.RoleAdmin:
			user = identity.ResolveAdmin()
		case models.RoleClub:
			user = identity.ResolveClub(req.ClubID)
		case models.RoleStudent:
			user, err = identity.ResolveStudent(req.USN)
			if err != nil {
				log.Info("seat number rejected", slog.String("usn", req.USN))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid USN format. Example: 4PA21CS001"))
				return
			}
		}

		if err = sessions.Login(user); err != nil {
			log.Error("failed to store session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("user logged in",
			slog.String("user_id", user.ID),
			slog.String("role", string(user.Role)),
		)

		render.JSON(w, r, LoginResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
