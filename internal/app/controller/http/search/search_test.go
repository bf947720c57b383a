package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/avGenie/go-food-bag/internal/app/usecase/catalog"
	"github.com/avGenie/go-food-bag/internal/app/usecase/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestions(t *testing.T) {
	s := New(search.NewSuggester(catalog.Default(), 0))

	type want struct {
		statusCode int
		names      []string
	}
	tests := []struct {
		name   string
		target string

		want want
	}{
		{
			name:   "matching query",
			target: "/api/search/suggestions?q=burger",

			want: want{
				statusCode: http.StatusOK,
				names:      []string{"Burger Hub", "Double Cheeseburger"},
			},
		},
		{
			name:   "limited",
			target: "/api/search/suggestions?q=burger&limit=1",

			want: want{
				statusCode: http.StatusOK,
				names:      []string{"Burger Hub"},
			},
		},
		{
			name:   "empty query",
			target: "/api/search/suggestions",

			want: want{
				statusCode: http.StatusOK,
				names:      []string{},
			},
		},
		{
			name:   "invalid limit",
			target: "/api/search/suggestions?q=burger&limit=-2",

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, test.target, nil)
			writer := httptest.NewRecorder()

			handler := s.Suggestions()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			require.Equal(t, test.want.statusCode, res.StatusCode)
			if test.want.statusCode != http.StatusOK {
				return
			}

			var body model.SuggestionsResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

			names := make([]string, 0, len(body.Suggestions))
			for _, suggestion := range body.Suggestions {
				names = append(names, suggestion.Name)
			}
			assert.Equal(t, test.want.names, names)
		})
	}
}
