package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/model"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:3000/api"
	DefaultTimeout = 10 * time.Second
)

type TokenStorage interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearTokens(ctx context.Context) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStorage
}

func New(baseURL string, timeout time.Duration, tokens TokenStorage) *Client {
	if len(baseURL) == 0 {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// Do sends in as JSON and decodes a 2xx answer into out. The stored token is
// attached when present and dropped on a 401 answer.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error while encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error while building request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Token(ctx)
	if err != nil {
		zap.L().Warn("error while reading auth token", zap.Error(err))
	}
	if len(token) != 0 {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if response.StatusCode == http.StatusUnauthorized {
		err = c.tokens.ClearTokens(ctx)
		if err != nil {
			zap.L().Warn("error while clearing auth tokens", zap.Error(err))
		}
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		responseErr := &ResponseError{StatusCode: response.StatusCode}

		var message model.MessageResponse
		if json.Unmarshal(data, &message) == nil {
			responseErr.Message = message.Message
			responseErr.Errors = message.Errors
		}

		return responseErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	err = json.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("error while decoding response body: %w", err)
	}

	return nil
}
