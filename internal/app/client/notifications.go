package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
)

func (c *Client) Notifications(ctx context.Context) (model.NotificationsResponse, error) {
	var response model.NotificationsResponse
	err := c.Do(ctx, http.MethodGet, "/notifications", nil, &response)

	return response, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id entity.NotificationID) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

func (c *Client) RemoveNotification(ctx context.Context, id entity.NotificationID) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil)
}

func (c *Client) ClearNotifications(ctx context.Context) error {
	return c.Do(ctx, http.MethodDelete, "/notifications", nil, nil)
}
