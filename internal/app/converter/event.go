package converter

import (
	"errors"
	"fmt"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
)

var ErrInvalidStatusMessage = errors.New("order status message is invalid")

func ConvertStatusMessageToEvent(message model.OrderStatusMessage) (entity.OrderStatusEvent, error) {
	event := entity.OrderStatusEvent{
		OrderID:    entity.OrderID(message.OrderID),
		UserID:     entity.UserID(message.UserID),
		Number:     message.OrderNumber,
		Status:     entity.OrderStatus(message.NewStatus),
		OccurredAt: message.ChangedAt.UTC(),
	}

	if event.OrderID <= 0 {
		return entity.OrderStatusEvent{}, fmt.Errorf("%w: order id %d", ErrInvalidStatusMessage, message.OrderID)
	}
	if !event.UserID.Valid() {
		return entity.OrderStatusEvent{}, fmt.Errorf("%w: user id %q", ErrInvalidStatusMessage, message.UserID)
	}
	if !event.Status.Valid() {
		return entity.OrderStatusEvent{}, fmt.Errorf("%w: status %q", ErrInvalidStatusMessage, message.NewStatus)
	}

	return event, nil
}
