package bag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/avGenie/go-food-bag/internal/app/storage/memory"
	"github.com/avGenie/go-food-bag/internal/app/usecase/notification"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anotherUserID = entity.UserID("6f28a678-7eba-4a4e-966c-7fedc6420df7")

func newRequest(method, target, body, orderID string, userIDCtx entity.UserIDCtx) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(body))

	ctx := context.WithValue(request.Context(), entity.UserIDCtxKey{}, userIDCtx)
	if len(orderID) != 0 {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", orderID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}

	return request.WithContext(ctx)
}

func TestGetBag(t *testing.T) {
	storage := memory.NewSeeded()
	b := New(storage, notification.NewFeed(storage))

	type want struct {
		statusCode int
		sections   int
		active     int
		delivered  int
	}
	tests := []struct {
		name      string
		userIDCtx entity.UserIDCtx

		want want
	}{
		{
			name:      "seeded user",
			userIDCtx: entity.CreateUserIDCtx(memory.DemoUserID, http.StatusOK),

			want: want{
				statusCode: http.StatusOK,
				sections:   3,
				active:     3,
				delivered:  2,
			},
		},
		{
			name:      "user without orders",
			userIDCtx: entity.CreateUserIDCtx(anotherUserID, http.StatusOK),

			want: want{
				statusCode: http.StatusOK,
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
			request := newRequest(http.MethodGet, "/api/bag", "", "", test.userIDCtx)
			writer := httptest.NewRecorder()

			handler := b.GetBag()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			require.Equal(t, test.want.statusCode, res.StatusCode)
			if test.want.statusCode != http.StatusOK {
				return
			}

			var body model.BagResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Len(t, body.Sections, test.want.sections)
			assert.Equal(t, test.want.active, body.ActiveCount)
			assert.Equal(t, test.want.delivered, body.DeliveredCount)
			assert.Equal(t, test.want.active+test.want.delivered, body.TotalCount)
		})
	}
}

func TestGetOrder(t *testing.T) {
	storage := memory.NewSeeded()
	b := New(storage, notification.NewFeed(storage))

	type want struct {
		statusCode   int
		total        string
		weightPriced bool
	}
	tests := []struct {
		name      string
		orderID   string
		userIDCtx entity.UserIDCtx

		want want
	}{
		{
			name:      "quantity priced order",
			orderID:   "1",
			userIDCtx: entity.CreateUserIDCtx(memory.DemoUserID, http.StatusOK),

			want: want{
				statusCode: http.StatusOK,
				total:      "30.49",
			},
		},
		{
			name:      "order with weighed items",
			orderID:   "5",
			userIDCtx: entity.CreateUserIDCtx(memory.DemoUserID, http.StatusOK),

			want: want{
				statusCode:   http.StatusOK,
				total:        "12.65",
				weightPriced: true,
			},
		},
		{
			name:      "order of another user",
			orderID:   "1",
			userIDCtx: entity.CreateUserIDCtx(anotherUserID, http.StatusOK),

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
		{
			name:      "unknown order",
			orderID:   "42",
			userIDCtx: entity.CreateUserIDCtx(memory.DemoUserID, http.StatusOK),

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
		{
			name:      "invalid order id",
			orderID:   "abc",
			userIDCtx: entity.CreateUserIDCtx(memory.DemoUserID, http.StatusOK),

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := newRequest(http.MethodGet, "/api/bag/"+test.orderID, "", test.orderID, test.userIDCtx)
			writer := httptest.NewRecorder()

			handler := b.GetOrder()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			require.Equal(t, test.want.statusCode, res.StatusCode)
			if test.want.statusCode != http.StatusOK {
				return
			}

			var body model.OrderResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, test.want.total, body.Breakdown.Total)
			assert.Equal(t, test.want.weightPriced, body.Breakdown.WeightPriced)
		})
	}
}

func TestSaveOrder(t *testing.T) {
	type want struct {
		statusCode int
		total      string
		items      int
	}
	tests := []struct {
		name    string
		orderID string
		body    string

		want want
	}{
		{
			name:    "change quantity and drop item",
			orderID: "1",
			body:    `{"items": [{"id": 1, "quantity": 1}, {"id": 2, "quantity": 3}], "address": "221B Baker Street"}`,

			want: want{
				statusCode: http.StatusOK,
				total:      "33.19",
				items:      2,
			},
		},
		{
			name:    "address only keeps items",
			orderID: "1",
			body:    `{"address": "221B Baker Street"}`,

			want: want{
				statusCode: http.StatusOK,
				total:      "30.49",
				items:      3,
			},
		},
		{
			name:    "explicit empty items",
			orderID: "1",
			body:    `{"items": [], "address": "221B Baker Street"}`,

			want: want{
				statusCode: http.StatusOK,
				total:      "2.99",
				items:      0,
			},
		},
		{
			name:    "negative quantity",
			orderID: "1",
			body:    `{"items": [{"id": 1, "quantity": -1}]}`,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:    "unknown item",
			orderID: "1",
			body:    `{"items": [{"id": 99, "quantity": 1}]}`,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:    "unknown order",
			orderID: "42",
			body:    `{"items": []}`,

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
		{
			name:    "invalid body",
			orderID: "1",
			body:    `<invalid json>`,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := memory.NewSeeded()
			feed := notification.NewFeed(storage)
			b := New(storage, feed)

			userIDCtx := entity.CreateUserIDCtx(memory.DemoUserID, http.StatusOK)
			request := newRequest(http.MethodPut, "/api/bag/"+test.orderID, test.body, test.orderID, userIDCtx)
			writer := httptest.NewRecorder()

			handler := b.SaveOrder()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			require.Equal(t, test.want.statusCode, res.StatusCode)
			if test.want.statusCode != http.StatusOK {
				return
			}

			var body model.OrderResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, test.want.total, body.Breakdown.Total)
			assert.Len(t, body.Items, test.want.items)
			assert.Equal(t, "221B Baker Street", body.Address)

			stored, err := storage.GetUserOrder(context.Background(), memory.DemoUserID, 1)
			require.NoError(t, err)
			assert.Len(t, stored.Items, test.want.items)

			sections, err := feed.List(context.Background(), memory.DemoUserID)
			require.NoError(t, err)
			require.NotEmpty(t, sections)
			assert.Equal(t, "Order Updated", sections[0].Notifications[0].Title)
		})
	}
}
