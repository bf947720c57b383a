package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
)

func (c *Client) Bag(ctx context.Context) (model.BagResponse, error) {
	var response model.BagResponse
	err := c.Do(ctx, http.MethodGet, "/bag", nil, &response)

	return response, err
}

func (c *Client) Order(ctx context.Context, id entity.OrderID) (model.OrderResponse, error) {
	var response model.OrderResponse
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/bag/%d", id), nil, &response)

	return response, err
}

func (c *Client) SaveOrder(ctx context.Context, id entity.OrderID, request model.SaveOrderRequest) (model.OrderResponse, error) {
	var response model.OrderResponse
	err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/bag/%d", id), request, &response)

	return response, err
}
