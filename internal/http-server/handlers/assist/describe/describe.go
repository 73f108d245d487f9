package describe

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
)

type DescribeRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type DescribeResponse struct {
	response.Response
	Description string `json:"description"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DescriptionGenerator
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, title, category string) string
}

// New drafts an event description for the submission form. The generator
// never fails; at worst the description is a fallback message.
func New(log *slog.Logger, gen DescriptionGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assist.describe.New"

		log = log.With(slog.String("op", op))

		var req DescribeRequest

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

		description := gen.GenerateDescription(r.Context(), req.Title, req.Category)

		log.Info("description generated", slog.String("title", req.Title))

		render.JSON(w, r, DescribeResponse{
			Response:    response.OK(),
			Description: description,
		})
	}
}
