package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	httputils "github.com/avGenie/go-food-bag/internal/app/controller/http/utils"
	"github.com/avGenie/go-food-bag/internal/app/converter"
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/avGenie/go-food-bag/internal/app/usecase/auth"
	"github.com/avGenie/go-food-bag/internal/app/usecase/crypto"
	writer "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	"github.com/avGenie/go-food-bag/internal/app/validator"
	"go.uber.org/zap"
)

const (
	ErrInvalidRequest  = "request body is invalid"
	ErrValidation      = "validation failed"
	MessageRegistered  = "user registered successfully"
	MessageLoggedIn    = "logged in successfully"
	errInternalRequest = "internal server error"
)

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type UserAuthenticator interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUserByPhone(ctx context.Context, phone string) (entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)
	CreatePasswordReset(ctx context.Context, reset entity.PasswordReset) error
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type TokenBuilder interface {
	BuildJWTString(userID entity.UserID) (string, error)
}

type AuthUser struct {
	storage UserAuthenticator
	tokens  TokenBuilder
}

func New(storage UserAuthenticator, tokens TokenBuilder) AuthUser {
	return AuthUser{
		storage: storage,
		tokens:  tokens,
	}
}

func (a *AuthUser) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.RegisterRequest
		if !a.decodeRequest(&request, w, r) {
			return
		}

		errs := validator.ValidateRegisterRequest(request)
		if !errs.Valid() {
			writer.WriteValidationErrors(w, ErrValidation, errs)
			return
		}

		user, err := a.createUserPassHashed(request)
		if err != nil {
			zap.L().Error("error while preparing user while registration", zap.Error(err))
			writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
			return
		}

		err = auth.CreateUser(r.Context(), user, a.storage, w)
		if err != nil {
			return
		}

		a.sendAuthResponse(user, http.StatusCreated, MessageRegistered, w)
	}
}

func (a *AuthUser) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.LoginRequest
		if !a.decodeRequest(&request, w, r) {
			return
		}

		errs := validator.ValidateLoginRequest(request)
		if !errs.Valid() {
			writer.WriteValidationErrors(w, ErrValidation, errs)
			return
		}

		user, err := auth.AuthUser(r.Context(), request, a.storage, w)
		if err != nil {
			return
		}

		a.sendAuthResponse(user, http.StatusOK, MessageLoggedIn, w)
	}
}

func (a *AuthUser) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.GetUserIDFromContext(r)
		if err != nil {
			zap.L().Error("error while getting user id from context while profile request", zap.Error(err))
			writer.WriteMessage(w, http.StatusUnauthorized, auth.ErrUnauthorized)
			return
		}

		user, err := auth.GetProfile(r.Context(), userID, a.storage, w)
		if err != nil {
			zap.L().Info("error while getting profile", zap.Error(err))
			return
		}

		writer.WriteJSON(w, http.StatusOK, model.ProfileResponse{
			User: converter.ConvertUserToResponse(user),
		})
	}
}

func (a *AuthUser) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := httputils.GetUserIDCtx(r)
		if err != nil || userCtx.StatusCode != http.StatusOK {
			writer.WriteMessage(w, http.StatusUnauthorized, auth.ErrUnauthorized)
			return
		}

		err = auth.Logout(r.Context(), userCtx, a.storage, w)
		if err != nil {
			zap.L().Error("error while logging out", zap.Error(err))
		}
	}
}

func (a *AuthUser) ForgotPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.ForgotPasswordRequest
		if !a.decodeRequest(&request, w, r) {
			return
		}

		errs := validator.ValidateForgotPasswordRequest(request)
		if !errs.Valid() {
			writer.WriteValidationErrors(w, ErrValidation, errs)
			return
		}

		err := auth.ForgotPassword(r.Context(), request.Email, a.storage, w)
		if err != nil {
			zap.L().Info("error while requesting password reset", zap.Error(err))
		}
	}
}

func (a *AuthUser) decodeRequest(request any, w http.ResponseWriter, r *http.Request) bool {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		zap.L().Info("error while decoding auth request", zap.Error(err))
		writer.WriteMessage(w, http.StatusBadRequest, ErrInvalidRequest)
		return false
	}

	return true
}

func (a *AuthUser) createUserPassHashed(request model.RegisterRequest) (entity.User, error) {
	user := converter.ConvertRegisterRequestToUser(entity.NewUserID(), request)

	hashedPassword, err := crypto.HashPassword(user.Password)
	if err != nil {
		return entity.User{}, fmt.Errorf("error while hashing password: %w", err)
	}
	user.Password = hashedPassword

	now := time.Now().UTC()
	user.CreatedAt = now
	user.LastModified = now

	return user, nil
}

func (a *AuthUser) sendAuthResponse(user entity.User, statusCode int, message string, w http.ResponseWriter) {
	token, err := a.tokens.BuildJWTString(user.ID)
	if err != nil {
		zap.L().Error("error while building auth token", zap.Error(err))
		writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
		return
	}

	writer.WriteJSON(w, statusCode, model.AuthResponse{
		User:    converter.ConvertUserToResponse(user),
		Token:   token,
		Message: message,
	})
}
