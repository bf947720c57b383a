package converter

import (
	"testing"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/avGenie/go-food-bag/internal/app/usecase/bag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertOrderResponseToOrderPricesLikeServer(t *testing.T) {
	order := testOrder()
	response := ConvertOrderToResponse(order, bag.PriceOrder(order))

	rebuilt, err := ConvertOrderResponseToOrder(response)
	require.NoError(t, err)

	assert.True(t, order.OrderTime.Equal(rebuilt.OrderTime))
	assert.Equal(t, response.Breakdown.Total, bag.PriceOrder(rebuilt).Total.StringFixed(2))

	edited, err := bag.UpdateItemQuantity(rebuilt, 1, 2)
	require.NoError(t, err)

	request := ConvertOrderToSaveRequest(edited)
	require.Len(t, request.Items, 2)
	assert.Equal(t, 2, request.Items[0].Quantity)
	assert.Equal(t, "123 Main St", request.Address)
	assert.Equal(t, "John Smith", request.Customer.FullName)
}

func TestConvertOrderResponseToOrderInvalidPrice(t *testing.T) {
	_, err := ConvertOrderResponseToOrder(model.OrderResponse{
		Items: []model.OrderItemResponse{{ID: 1, Pricing: "quantity", UnitPrice: "abc", Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestConvertOrderResponseToOrderKeepsDelivery(t *testing.T) {
	order := testOrder()
	eta := time.Date(2025, 7, 30, 9, 30, 0, 0, time.UTC)
	order.EstimatedDelivery = &eta

	rebuilt, err := ConvertOrderResponseToOrder(ConvertOrderToResponse(order, bag.PriceOrder(order)))
	require.NoError(t, err)

	require.NotNil(t, rebuilt.DeliveryPerson)
	assert.Equal(t, *order.DeliveryPerson, *rebuilt.DeliveryPerson)
	require.NotNil(t, rebuilt.EstimatedDelivery)
	assert.True(t, eta.Equal(*rebuilt.EstimatedDelivery))
	assert.Nil(t, rebuilt.DeliveredTime)

	delivered := testOrder()
	delivered.Status = entity.StatusDelivered
	delivered.DeliveryPerson = nil
	deliveredAt := time.Date(2025, 7, 29, 20, 5, 0, 0, time.UTC)
	delivered.DeliveredTime = &deliveredAt

	rebuilt, err = ConvertOrderResponseToOrder(ConvertOrderToResponse(delivered, bag.PriceOrder(delivered)))
	require.NoError(t, err)

	assert.Nil(t, rebuilt.DeliveryPerson)
	assert.Nil(t, rebuilt.EstimatedDelivery)
	require.NotNil(t, rebuilt.DeliveredTime)
	assert.True(t, deliveredAt.Equal(*rebuilt.DeliveredTime))
}

func TestConvertOrderResponseToOrderInvalidDeliveryTime(t *testing.T) {
	_, err := ConvertOrderResponseToOrder(model.OrderResponse{
		OrderTime:         "2025-07-30T08:05:00Z",
		EstimatedDelivery: "not a time",
	})
	assert.Error(t, err)
}
