package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avGenie/go-food-bag/internal/app/model"
)

func (c *Client) Suggestions(ctx context.Context, query string, limit int) (model.SuggestionsResponse, error) {
	values := url.Values{}
	values.Set("q", query)
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var response model.SuggestionsResponse
	err := c.Do(ctx, http.MethodGet, "/search/suggestions?"+values.Encode(), nil, &response)

	return response, err
}

func (c *Client) Categories(ctx context.Context) ([]model.CategoryResponse, error) {
	var response []model.CategoryResponse
	err := c.Do(ctx, http.MethodGet, "/catalog/categories", nil, &response)

	return response, err
}

func (c *Client) Restaurants(ctx context.Context) ([]model.RestaurantResponse, error) {
	var response []model.RestaurantResponse
	err := c.Do(ctx, http.MethodGet, "/catalog/restaurants", nil, &response)

	return response, err
}
