package search

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPortal/internal/ai"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
)

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

type SearchResponse struct {
	response.Response
	Result ai.SearchResult `json:"result"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Searcher
type Searcher interface {
	GroundedSearch(ctx context.Context, query string) ai.SearchResult
}

func New(log *slog.Logger, searcher Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assist.search.New"

		log = log.With(slog.String("op", op))

		var req SearchRequest

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

		result := searcher.GroundedSearch(r.Context(), req.Query)

		log.Info("grounded search served", slog.Int("links", len(result.Links)))

		render.JSON(w, r, SearchResponse{
			Response: response.OK(),
			Result:   result,
		})
	}
}
