package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/controller/http/auth/mock"
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	"github.com/avGenie/go-food-bag/internal/app/usecase/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = entity.UserID("ac2a4811-4f10-487f-bde3-e39a14af7cd8")

var (
	inputRegisterCorrect = strings.TrimSpace(`
	{
		"fullName": "John Smith",
		"phone": "+1234567890",
		"email": "john.smith@example.com",
		"password": "password123",
		"confirmPassword": "password123"
	}`)

	inputRegisterShortPassword = strings.TrimSpace(`
	{
		"fullName": "John Smith",
		"phone": "+1234567890",
		"email": "john.smith@example.com",
		"password": "123"
	}`)

	inputLoginCorrect = strings.TrimSpace(`
	{
		"phone": "+1234567890",
		"password": "password123"
	}`)

	inputLoginWrongPassword = strings.TrimSpace(`
	{
		"phone": "+1234567890",
		"password": "wrong-password"
	}`)

	inputLoginEmptyPhone = strings.TrimSpace(`
	{
		"phone": "",
		"password": "password123"
	}`)

	inputInvalid = `<invalid json>`
)

func decodeMessage(t *testing.T, res *http.Response) model.MessageResponse {
	t.Helper()

	var body model.MessageResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	return body
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)
	tokens := mock.NewMockTokenBuilder(ctrl)

	type want struct {
		statusCode  int
		fieldErrors []string
	}
	tests := []struct {
		name          string
		body          string
		createUserErr error
		isCreateUser  bool

		want want
	}{
		{
			name:          "correct input data",
			body:          inputRegisterCorrect,
			createUserErr: nil,
			isCreateUser:  true,

			want: want{
				statusCode: http.StatusCreated,
			},
		},
		{
			name:          "login exists in storage",
			body:          inputRegisterCorrect,
			createUserErr: err_storage.ErrLoginExists,
			isCreateUser:  true,

			want: want{
				statusCode: http.StatusConflict,
			},
		},
		{
			name:          "storage error",
			body:          inputRegisterCorrect,
			createUserErr: errors.New(""),
			isCreateUser:  true,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:         "invalid json",
			body:         inputInvalid,
			isCreateUser: false,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:         "short password",
			body:         inputRegisterShortPassword,
			isCreateUser: false,

			want: want{
				statusCode:  http.StatusBadRequest,
				fieldErrors: []string{"password"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isCreateUser {
				s.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user entity.User) error {
						assert.True(t, user.ID.Valid())
						assert.NotEqual(t, "password123", user.Password)
						assert.NoError(t, crypto.CheckPasswordHash("password123", user.Password))
						return test.createUserErr
					})

				if test.createUserErr == nil {
					tokens.EXPECT().
						BuildJWTString(gomock.Any()).
						Return("token", nil)
				}
			}

			auth := New(s, tokens)
			handler := auth.Register()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

			if test.want.statusCode == http.StatusCreated {
				var body model.AuthResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				assert.Equal(t, "token", body.Token)
				assert.Equal(t, "John Smith", body.User.FullName)
				assert.Equal(t, MessageRegistered, body.Message)
				return
			}

			body := decodeMessage(t, res)
			assert.NotEmpty(t, body.Message)
			for _, field := range test.want.fieldErrors {
				assert.Contains(t, body.Errors, field)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)
	tokens := mock.NewMockTokenBuilder(ctrl)

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	storageUser := entity.User{
		ID:       testUserID,
		FullName: "John Smith",
		Phone:    "+1234567890",
		Email:    "john.smith@example.com",
		Password: hash,
	}

	type want struct {
		statusCode int
		token      string
	}
	tests := []struct {
		name       string
		body       string
		isGetUser  bool
		getUserErr error

		want want
	}{
		{
			name:      "correct credentials",
			body:      inputLoginCorrect,
			isGetUser: true,

			want: want{
				statusCode: http.StatusOK,
				token:      "token",
			},
		},
		{
			name:      "wrong password",
			body:      inputLoginWrongPassword,
			isGetUser: true,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:       "unknown phone",
			body:       inputLoginCorrect,
			isGetUser:  true,
			getUserErr: err_storage.ErrLoginNotFound,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:       "storage error",
			body:       inputLoginCorrect,
			isGetUser:  true,
			getUserErr: errors.New(""),

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "empty phone",
			body:      inputLoginEmptyPhone,
			isGetUser: false,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:      "invalid json",
			body:      inputInvalid,
			isGetUser: false,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isGetUser {
				if test.getUserErr != nil {
					s.EXPECT().
						GetUserByPhone(gomock.Any(), "+1234567890").
						Return(entity.User{}, test.getUserErr)
				} else {
					s.EXPECT().
						GetUserByPhone(gomock.Any(), "+1234567890").
						Return(storageUser, nil)
				}
			}
			if len(test.want.token) != 0 {
				tokens.EXPECT().
					BuildJWTString(testUserID).
					Return(test.want.token, nil)
			}

			auth := New(s, tokens)
			handler := auth.Login()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if test.want.statusCode == http.StatusOK {
				var body model.AuthResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				assert.Equal(t, test.want.token, body.Token)
				assert.Equal(t, testUserID.String(), body.User.ID)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)

	type want struct {
		statusCode int
	}
	tests := []struct {
		name       string
		userIDCtx  entity.UserIDCtx
		isGetUser  bool
		getUserErr error

		want want
	}{
		{
			name:      "authorized user",
			userIDCtx: entity.CreateUserIDCtx(testUserID, http.StatusOK),
			isGetUser: true,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:       "user removed after token issued",
			userIDCtx:  entity.CreateUserIDCtx(testUserID, http.StatusOK),
			isGetUser:  true,
			getUserErr: err_storage.ErrLoginNotFound,

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:      "unauthorized",
			userIDCtx: entity.CreateUserIDCtx("", http.StatusUnauthorized),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, test.userIDCtx))
			writer := httptest.NewRecorder()

			if test.isGetUser {
				s.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(entity.User{ID: testUserID, FullName: "John Smith"}, test.getUserErr)
			}

			auth := New(s, nil)
			handler := auth.Profile()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			if test.want.statusCode == http.StatusOK {
				var body model.ProfileResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				assert.Equal(t, "John Smith", body.User.FullName)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)
	expires := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	authorized := entity.CreateUserIDCtx(testUserID, http.StatusOK)
	authorized.TokenID = "token-id"
	authorized.TokenExp = expires

	type want struct {
		statusCode int
	}
	tests := []struct {
		name      string
		userIDCtx entity.UserIDCtx
		isRevoke  bool
		revokeErr error

		want want
	}{
		{
			name:      "token revoked",
			userIDCtx: authorized,
			isRevoke:  true,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:      "storage error",
			userIDCtx: authorized,
			isRevoke:  true,
			revokeErr: errors.New(""),

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "unauthorized",
			userIDCtx: entity.CreateUserIDCtx("", http.StatusUnauthorized),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, test.userIDCtx))
			writer := httptest.NewRecorder()

			if test.isRevoke {
				s.EXPECT().
					RevokeToken(gomock.Any(), "token-id", expires).
					Return(test.revokeErr)
			}

			auth := New(s, nil)
			handler := auth.Logout()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
		})
	}
}

func TestForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)

	type want struct {
		statusCode int
	}
	tests := []struct {
		name       string
		body       string
		isGetUser  bool
		getUserErr error
		isReset    bool

		want want
	}{
		{
			name:      "known email",
			body:      `{"email": "john.smith@example.com"}`,
			isGetUser: true,
			isReset:   true,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:       "unknown email",
			body:       `{"email": "john.smith@example.com"}`,
			isGetUser:  true,
			getUserErr: err_storage.ErrLoginNotFound,

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
		{
			name: "invalid email",
			body: `{"email": "john.smith"}`,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isGetUser {
				s.EXPECT().
					GetUserByEmail(gomock.Any(), "john.smith@example.com").
					Return(entity.User{ID: testUserID}, test.getUserErr)
			}
			if test.isReset {
				s.EXPECT().
					CreatePasswordReset(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reset entity.PasswordReset) error {
						assert.Equal(t, testUserID, reset.UserID)
						assert.NotEmpty(t, reset.Token)
						assert.True(t, reset.ExpiresAt.After(time.Now()))
						return nil
					})
			}

			auth := New(s, nil)
			handler := auth.ForgotPassword()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			assert.NotEmpty(t, decodeMessage(t, res).Message)
		})
	}
}
