package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/model"
)

func (c *Client) Register(ctx context.Context, request model.RegisterRequest) (model.AuthResponse, error) {
	return c.authenticate(ctx, "/auth/register", request)
}

func (c *Client) Login(ctx context.Context, request model.LoginRequest) (model.AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", request)
}

func (c *Client) authenticate(ctx context.Context, path string, request any) (model.AuthResponse, error) {
	var response model.AuthResponse
	err := c.Do(ctx, http.MethodPost, path, request, &response)
	if err != nil {
		return model.AuthResponse{}, err
	}

	err = c.tokens.SetToken(ctx, response.Token)
	if err != nil {
		return response, fmt.Errorf("error while storing auth token: %w", err)
	}

	return response, nil
}

func (c *Client) Profile(ctx context.Context) (model.UserResponse, error) {
	var response model.ProfileResponse
	err := c.Do(ctx, http.MethodGet, "/auth/profile", nil, &response)
	if err != nil {
		return model.UserResponse{}, err
	}

	return response.User, nil
}

// Logout always forgets the local tokens, err only reports whether the server
// was told about it.
func (c *Client) Logout(ctx context.Context) (Toast, error) {
	err := c.Do(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil)

	clearErr := c.tokens.ClearTokens(ctx)
	if clearErr != nil && err == nil {
		err = fmt.Errorf("error while clearing auth tokens: %w", clearErr)
	}

	return SuccessToast("Logged Out", "You have been successfully logged out."), err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (model.MessageResponse, error) {
	var response model.MessageResponse
	err := c.Do(ctx, http.MethodPost, "/auth/forgot-password", model.ForgotPasswordRequest{Email: email}, &response)
	if err != nil {
		return model.MessageResponse{}, err
	}

	return response, nil
}
