package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/metrics"
	"github.com/avGenie/go-food-bag/internal/app/model"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	"github.com/avGenie/go-food-bag/internal/app/usecase/crypto"
	httputils "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ErrLoginExists       = "user with this phone or email already exists"
	ErrWrongCredentials  = "invalid phone or password"
	ErrEmailNotExist     = "no account found with this email"
	ErrUnauthorized      = "unauthorized"
	ErrInternal          = "internal server error"
	MessageResetSent     = "password reset instructions have been sent to your email"
	MessageLoggedOut     = "logged out successfully"
	PasswordResetExpires = time.Hour
)

type UserAuthenticator interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUserByPhone(ctx context.Context, phone string) (entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)
	CreatePasswordReset(ctx context.Context, reset entity.PasswordReset) error
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error
}

func CreateUser(ctx context.Context, user entity.User, authenticator UserAuthenticator, w http.ResponseWriter) error {
	ctx, cancel := context.WithTimeout(ctx, httputils.RequestTimeout)
	defer cancel()

	err := authenticator.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, err_storage.ErrLoginExists) {
			zap.L().Info("user already exists while creating user", zap.String("phone", user.Phone))
			metrics.AuthRequestsTotal.WithLabelValues("register", "conflict").Inc()
			httputils.WriteMessage(w, http.StatusConflict, ErrLoginExists)
			return fmt.Errorf("error while creating user: %w", err)
		}

		zap.L().Error("error while creating user", zap.Error(err))
		metrics.AuthRequestsTotal.WithLabelValues("register", "error").Inc()
		httputils.WriteMessage(w, http.StatusInternalServerError, ErrInternal)
		return fmt.Errorf("error while creating user: %w", err)
	}
	metrics.AuthRequestsTotal.WithLabelValues("register", "ok").Inc()

	return nil
}

// AuthUser answers 400 for both an unknown phone and a wrong password so the
// caller can't tell which one failed.
func AuthUser(ctx context.Context, request model.LoginRequest, authenticator UserAuthenticator, w http.ResponseWriter) (entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, httputils.RequestTimeout)
	defer cancel()

	storageUser, err := authenticator.GetUserByPhone(ctx, request.Phone)
	if err != nil {
		if errors.Is(err, err_storage.ErrLoginNotFound) {
			zap.L().Info("login doesn't exist while authentication request", zap.String("phone", request.Phone))
			metrics.AuthRequestsTotal.WithLabelValues("login", "rejected").Inc()
			httputils.WriteMessage(w, http.StatusBadRequest, ErrWrongCredentials)
			return entity.User{}, err
		}

		zap.L().Error("error while getting user while authentication request", zap.Error(err))
		metrics.AuthRequestsTotal.WithLabelValues("login", "error").Inc()
		httputils.WriteMessage(w, http.StatusInternalServerError, ErrInternal)
		return entity.User{}, err
	}

	err = crypto.CheckPasswordHash(request.Password, storageUser.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrWrongPassword) {
			zap.L().Info("wrong password while authentication request", zap.String("phone", request.Phone))
			metrics.AuthRequestsTotal.WithLabelValues("login", "rejected").Inc()
			httputils.WriteMessage(w, http.StatusBadRequest, ErrWrongCredentials)
			return entity.User{}, err
		}

		zap.L().Error("error while checking user password while authentication request", zap.Error(err))
		metrics.AuthRequestsTotal.WithLabelValues("login", "error").Inc()
		httputils.WriteMessage(w, http.StatusInternalServerError, ErrInternal)
		return entity.User{}, err
	}
	metrics.AuthRequestsTotal.WithLabelValues("login", "ok").Inc()

	return storageUser, nil
}

func GetProfile(ctx context.Context, userID entity.UserID, authenticator UserAuthenticator, w http.ResponseWriter) (entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, httputils.RequestTimeout)
	defer cancel()

	user, err := authenticator.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, err_storage.ErrLoginNotFound) {
			httputils.WriteMessage(w, http.StatusUnauthorized, ErrUnauthorized)
			return entity.User{}, fmt.Errorf("user from token not found: %w", err)
		}

		httputils.WriteMessage(w, http.StatusInternalServerError, ErrInternal)
		return entity.User{}, fmt.Errorf("error while getting user profile: %w", err)
	}

	return user, nil
}

func Logout(ctx context.Context, userCtx entity.UserIDCtx, authenticator UserAuthenticator, w http.ResponseWriter) error {
	ctx, cancel := context.WithTimeout(ctx, httputils.RequestTimeout)
	defer cancel()

	err := authenticator.RevokeToken(ctx, userCtx.TokenID, userCtx.TokenExp)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("logout", "error").Inc()
		httputils.WriteMessage(w, http.StatusInternalServerError, ErrInternal)
		return fmt.Errorf("error while revoking token: %w", err)
	}
	metrics.AuthRequestsTotal.WithLabelValues("logout", "ok").Inc()

	httputils.WriteMessage(w, http.StatusOK, MessageLoggedOut)

	return nil
}

func ForgotPassword(ctx context.Context, email string, authenticator UserAuthenticator, w http.ResponseWriter) error {
	ctx, cancel := context.WithTimeout(ctx, httputils.RequestTimeout)
	defer cancel()

	user, err := authenticator.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, err_storage.ErrLoginNotFound) {
			metrics.AuthRequestsTotal.WithLabelValues("forgot_password", "not_found").Inc()
			httputils.WriteMessage(w, http.StatusNotFound, ErrEmailNotExist)
			return fmt.Errorf("error while requesting password reset: %w", err)
		}

		metrics.AuthRequestsTotal.WithLabelValues("forgot_password", "error").Inc()
		httputils.WriteMessage(w, http.StatusInternalServerError, ErrInternal)
		return fmt.Errorf("error while requesting password reset: %w", err)
	}

	reset := entity.PasswordReset{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(PasswordResetExpires),
	}
	err = authenticator.CreatePasswordReset(ctx, reset)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("forgot_password", "error").Inc()
		httputils.WriteMessage(w, http.StatusInternalServerError, ErrInternal)
		return fmt.Errorf("error while storing password reset: %w", err)
	}
	metrics.AuthRequestsTotal.WithLabelValues("forgot_password", "ok").Inc()

	httputils.WriteMessage(w, http.StatusOK, MessageResetSent)

	return nil
}
