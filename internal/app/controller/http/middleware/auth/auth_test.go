package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/stretchr/testify/assert"
)

func TestRequireAuth(t *testing.T) {
	type want struct {
		statusCode int
		called     bool
	}
	tests := []struct {
		name      string
		isContext bool
		userIDCtx entity.UserIDCtx

		want want
	}{
		{
			name:      "authorized",
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx("ac2a4811-4f10-487f-bde3-e39a14af7cd8", http.StatusOK),

			want: want{
				statusCode: http.StatusOK,
				called:     true,
			},
		},
		{
			name:      "unauthorized",
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx("", http.StatusUnauthorized),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:      "bad user id in token",
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx("", http.StatusBadRequest),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:      "invalid user id with status ok",
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx("not-a-uuid", http.StatusOK),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:      "revocation check failed",
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx("", http.StatusInternalServerError),

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "no context",
			isContext: false,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			writer := httptest.NewRecorder()

			if test.isContext {
				request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, test.userIDCtx))
			}

			called := false
			handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			assert.Equal(t, test.want.called, called)
		})
	}
}
