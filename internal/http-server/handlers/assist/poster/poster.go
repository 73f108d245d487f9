package poster

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
)

type PosterRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	AspectRatio string `json:"aspectRatio"`
}

type PosterResponse struct {
	response.Response
	// Image is a data URL suitable for direct use as an event poster
	// reference.
	Image string `json:"image"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PosterGenerator
type PosterGenerator interface {
	GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error)
}

func New(log *slog.Logger, gen PosterGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assist.poster.New"

		log = log.With(slog.String("op", op))

		var req PosterRequest

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

		image, err := gen.GenerateImage(r.Context(), req.Prompt, req.AspectRatio)
		if err != nil {
			log.Error("failed to generate poster", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to generate poster image"))
			return
		}

		log.Info("poster generated", slog.Int("bytes", len(image)))

		render.JSON(w, r, PosterResponse{
			Response: response.OK(),
			Image:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(image),
		})
	}
}
