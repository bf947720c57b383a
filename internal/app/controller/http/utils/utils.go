package httputils

import (
	"fmt"
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/entity"
)

func GetUserIDCtx(r *http.Request) (entity.UserIDCtx, error) {
	userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
	if !ok {
		return entity.UserIDCtx{}, fmt.Errorf("user id couldn't obtain from context")
	}

	if userIDCtx.StatusCode == http.StatusOK && !userIDCtx.UserID.Valid() {
		return entity.UserIDCtx{}, fmt.Errorf("invalid user id with status ok")
	}

	return userIDCtx, nil
}

func GetUserIDFromContext(r *http.Request) (entity.UserID, error) {
	userIDCtx, err := GetUserIDCtx(r)
	if err != nil {
		return entity.UserID(""), err
	}

	if userIDCtx.StatusCode != http.StatusOK {
		return entity.UserID(""), fmt.Errorf("request is not authorized, status %d", userIDCtx.StatusCode)
	}

	return userIDCtx.UserID, nil
}
