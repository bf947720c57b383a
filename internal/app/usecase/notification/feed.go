package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/metrics"
)

const (
	SourceOrderStatus = "order_status"
	SourceOrderEdit   = "order_edit"
)

type NotificationStorage interface {
	AddNotification(ctx context.Context, notification entity.Notification) (entity.Notification, error)
	GetUserNotificationSections(ctx context.Context, userID entity.UserID) (entity.NotificationSections, error)
	MarkNotificationRead(ctx context.Context, userID entity.UserID, id entity.NotificationID) error
	DeleteNotification(ctx context.Context, userID entity.UserID, id entity.NotificationID) error
	ClearNotifications(ctx context.Context, userID entity.UserID) error
}

type Feed struct {
	storage NotificationStorage
	now     func() time.Time
}

func NewFeed(storage NotificationStorage) *Feed {
	return &Feed{
		storage: storage,
		now:     time.Now,
	}
}

func (f *Feed) List(ctx context.Context, userID entity.UserID) (entity.NotificationSections, error) {
	sections, err := f.storage.GetUserNotificationSections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error while listing notifications: %w", err)
	}

	return sections, nil
}

func (f *Feed) MarkRead(ctx context.Context, userID entity.UserID, id entity.NotificationID) error {
	err := f.storage.MarkNotificationRead(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("error while marking notification %d as read: %w", id, err)
	}

	return nil
}

func (f *Feed) Remove(ctx context.Context, userID entity.UserID, id entity.NotificationID) error {
	err := f.storage.DeleteNotification(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("error while removing notification %d: %w", id, err)
	}

	return nil
}

func (f *Feed) ClearAll(ctx context.Context, userID entity.UserID) error {
	err := f.storage.ClearNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("error while clearing notifications: %w", err)
	}

	return nil
}

// Push stores an unread notification, stamping it with the current time when
// it has none.
func (f *Feed) Push(ctx context.Context, notification entity.Notification, source string) (entity.Notification, error) {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = f.now().UTC()
	}
	notification.Read = false

	stored, err := f.storage.AddNotification(ctx, notification)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("push_notification").Inc()
		return entity.Notification{}, fmt.Errorf("error while pushing notification: %w", err)
	}
	metrics.NotificationsDeliveredTotal.WithLabelValues(source).Inc()

	return stored, nil
}

func (f *Feed) OrderStatusChanged(ctx context.Context, event entity.OrderStatusEvent) (entity.Notification, error) {
	return f.Push(ctx, StatusNotification(event), SourceOrderStatus)
}

func (f *Feed) OrderUpdated(ctx context.Context, order entity.Order) (entity.Notification, error) {
	return f.Push(ctx, entity.Notification{
		UserID:      order.UserID,
		Title:       "Order Updated",
		Description: fmt.Sprintf("Your changes to order #%s have been saved.", order.Number),
		Href:        OrderHref(order.ID),
	}, SourceOrderEdit)
}

func StatusNotification(event entity.OrderStatusEvent) entity.Notification {
	notification := entity.Notification{
		UserID:    event.UserID,
		Href:      OrderHref(event.OrderID),
		CreatedAt: event.OccurredAt,
	}

	switch event.Status {
	case entity.StatusPreparing:
		notification.Title = "Order Confirmed"
		notification.Description = fmt.Sprintf("Your order #%s has been confirmed and is being prepared.", event.Number)
	case entity.StatusOnTheWay:
		notification.Title = "Delivery Update"
		notification.Description = fmt.Sprintf("Your order #%s is on the way. Get ready!", event.Number)
	case entity.StatusDelivered:
		notification.Title = "Order Delivered"
		notification.Description = fmt.Sprintf("Your order #%s has been successfully delivered. Enjoy your meal!", event.Number)
	}

	return notification
}

func OrderHref(id entity.OrderID) string {
	return fmt.Sprintf("/bag/%d", id)
}
