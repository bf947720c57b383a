package token

import (
	"context"
	"errors"
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	usecase "github.com/avGenie/go-food-bag/internal/app/usecase/converter"
	"github.com/avGenie/go-food-bag/internal/app/usecase/crypto"
	usecase_errors "github.com/avGenie/go-food-bag/internal/app/usecase/errors"
	"go.uber.org/zap"
)

type TokenParser interface {
	ParseToken(tokenString string) (crypto.Token, error)
}

type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenParserMiddleware never rejects a request by itself: it stores the
// parsing outcome in the request context for the handlers that need a user.
func TokenParserMiddleware(parser TokenParser, checker RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header[usecase.AuthHeader]
			userCtx := processAuthToken(r.Context(), authHeader, parser, checker)

			ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

func processAuthToken(ctx context.Context, authHeader []string, parser TokenParser, checker RevocationChecker) entity.UserIDCtx {
	if len(authHeader) == 0 {
		zap.L().Debug("authorization header is empty")

		return entity.CreateUserIDCtx("", http.StatusUnauthorized)
	}

	tokenString, err := usecase.GetTokenFromAuthHeader(authHeader[0])
	if err != nil {
		zap.L().Info("error while parsing auth header", zap.Error(err))

		return entity.CreateUserIDCtx("", http.StatusUnauthorized)
	}

	token, err := parser.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, usecase_errors.ErrTokenExpired) {
			zap.L().Info("token has expired")
		} else {
			zap.L().Info("error while parsing token", zap.Error(err))
		}

		return entity.CreateUserIDCtx("", http.StatusUnauthorized)
	}

	if !token.UserID.Valid() {
		zap.L().Info("invalid user id in token", zap.String("user_id", token.UserID.String()))

		return entity.CreateUserIDCtx("", http.StatusBadRequest)
	}

	revoked, err := checker.IsTokenRevoked(ctx, token.ID)
	if err != nil {
		zap.L().Error("error while checking token revocation", zap.Error(err))

		return entity.CreateUserIDCtx("", http.StatusInternalServerError)
	}
	if revoked {
		zap.L().Info("revoked token used", zap.String("user_id", token.UserID.String()))

		return entity.CreateUserIDCtx("", http.StatusUnauthorized)
	}

	userCtx := entity.CreateUserIDCtx(token.UserID, http.StatusOK)
	userCtx.TokenID = token.ID
	userCtx.TokenExp = token.ExpiresAt

	return userCtx
}
