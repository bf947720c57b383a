package search

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/avGenie/go-food-bag/internal/app/metrics"
	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/avGenie/go-food-bag/internal/app/usecase/search"
	writer "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	"go.uber.org/zap"
)

const (
	ErrInvalidLimit    = "limit must be a positive number"
	errInternalRequest = "internal server error"
)

type Suggester interface {
	Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error)
}

type Search struct {
	suggester Suggester
}

func New(suggester Suggester) Search {
	return Search{
		suggester: suggester,
	}
}

// Suggestions stops working as soon as the client goes away, a newer query
// from the same client simply replaces the abandoned one.
func (s *Search) Suggestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		limit := 0
		if raw := r.URL.Query().Get("limit"); len(raw) != 0 {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writer.WriteMessage(w, http.StatusBadRequest, ErrInvalidLimit)
				return
			}
			limit = parsed
		}

		suggestions, err := s.suggester.Suggest(r.Context(), query, limit)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				zap.L().Debug("suggestion request cancelled", zap.String("query", query))
				return
			}

			zap.L().Error("error while suggesting", zap.Error(err), zap.String("query", query))
			metrics.OperationErrorsTotal.WithLabelValues("suggest").Inc()
			writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
			return
		}
		metrics.SearchQueriesTotal.Inc()

		out := model.SuggestionsResponse{
			Query:       query,
			Suggestions: make([]model.SuggestionResponse, 0, len(suggestions)),
		}
		for _, suggestion := range suggestions {
			out.Suggestions = append(out.Suggestions, model.SuggestionResponse{
				Kind:     string(suggestion.Kind),
				ID:       suggestion.ID,
				Name:     suggestion.Name,
				Subtitle: suggestion.Subtitle,
				Href:     suggestion.Href,
			})
		}

		writer.WriteJSON(w, http.StatusOK, out)
	}
}
