package model

import (
	"context"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
)

type Storage interface {
	Close() error

	CreateUser(ctx context.Context, user entity.User) error
	GetUserByPhone(ctx context.Context, phone string) (entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)
	CreatePasswordReset(ctx context.Context, reset entity.PasswordReset) error

	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	GetUserOrderSections(ctx context.Context, userID entity.UserID) (entity.OrderSections, error)
	GetUserOrder(ctx context.Context, userID entity.UserID, orderID entity.OrderID) (entity.Order, error)
	UpdateOrder(ctx context.Context, order entity.Order) error
	UpdateOrderStatus(ctx context.Context, event entity.OrderStatusEvent) error

	AddNotification(ctx context.Context, notification entity.Notification) (entity.Notification, error)
	GetUserNotificationSections(ctx context.Context, userID entity.UserID) (entity.NotificationSections, error)
	MarkNotificationRead(ctx context.Context, userID entity.UserID, id entity.NotificationID) error
	DeleteNotification(ctx context.Context, userID entity.UserID, id entity.NotificationID) error
	ClearNotifications(ctx context.Context, userID entity.UserID) error
}
