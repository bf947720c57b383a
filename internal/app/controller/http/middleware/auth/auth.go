package auth

import (
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	httputils "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	"go.uber.org/zap"
)

const (
	ErrTokenExpired = "token is missing, expired or revoked"
	ErrInvalidAuth  = "auth credentials are invalid"
	ErrAuthCheck    = "auth credentials couldn't be checked, try again later"
)

// RequireAuth rejects requests whose token was not accepted by the token
// parser middleware.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
		if !ok {
			zap.L().Error("user id couldn't obtain from context")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		switch {
		case userIDCtx.StatusCode == http.StatusInternalServerError:
			httputils.WriteMessage(w, http.StatusInternalServerError, ErrAuthCheck)
			return
		case userIDCtx.StatusCode == http.StatusBadRequest:
			httputils.WriteMessage(w, http.StatusUnauthorized, ErrInvalidAuth)
			return
		case userIDCtx.StatusCode != http.StatusOK:
			httputils.WriteMessage(w, http.StatusUnauthorized, ErrTokenExpired)
			return
		case !userIDCtx.UserID.Valid():
			httputils.WriteMessage(w, http.StatusUnauthorized, ErrInvalidAuth)
			return
		}

		next.ServeHTTP(w, r)
	})
}
