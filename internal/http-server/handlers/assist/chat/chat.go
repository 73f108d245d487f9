package chat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
)

type ChatRequest struct {
	History []models.ChatMessage `json:"history"`
	Message string               `json:"message" validate:"required"`
}

type ChatResponse struct {
	response.Response
	Reply string `json:"reply"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Assistant
type Assistant interface {
	Chat(ctx context.Context, history []models.ChatMessage, message string) string
}

func New(log *slog.Logger, assistant Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assist.chat.New"

		log = log.With(slog.String("op", op))

		var req ChatRequest

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

		reply := assistant.Chat(r.Context(), req.History, req.Message)

		log.Info("chat reply served", slog.Int("history_len", len(req.History)))

		render.JSON(w, r, ChatResponse{
			Response: response.OK(),
			Reply:    reply,
		})
	}
}
