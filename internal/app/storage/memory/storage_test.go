package memory

import (
	"context"
	"testing"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	"github.com/avGenie/go-food-bag/internal/app/usecase/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededBag(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	sections, err := s.GetUserOrderSections(ctx, DemoUserID)
	require.NoError(t, err)

	require.Len(t, sections, 3)
	assert.Equal(t, "2025 Wednesday 07/30", sections[0].Day)

	ids := make([]entity.OrderID, 0)
	for _, section := range sections {
		for _, order := range section.Orders {
			ids = append(ids, order.ID)
		}
	}
	assert.Equal(t, []entity.OrderID{1, 2, 5, 3, 4}, ids)

	_, err = s.GetUserOrderSections(ctx, entity.NewUserID())
	assert.ErrorIs(t, err, err_storage.ErrOrdersForUserNotFound)
}

func TestSeededUser(t *testing.T) {
	s := NewSeeded()

	user, err := s.GetUserByPhone(context.Background(), DemoPhone)
	require.NoError(t, err)
	assert.Equal(t, DemoUserID, user.ID)
	assert.NoError(t, crypto.CheckPasswordHash(DemoPassword, user.Password))

	err = s.CreateUser(context.Background(), entity.User{ID: entity.NewUserID(), Phone: DemoPhone})
	assert.ErrorIs(t, err, err_storage.ErrLoginExists)
}

func TestUpdateOrder(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	order, err := s.GetUserOrder(ctx, DemoUserID, 1)
	require.NoError(t, err)

	order.Items[0].Quantity = 5
	order.Address = "221B Baker Street"
	order.Status = entity.StatusDelivered
	require.NoError(t, s.UpdateOrder(ctx, order))

	stored, err := s.GetUserOrder(ctx, DemoUserID, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Items[0].Quantity)
	assert.Equal(t, "221B Baker Street", stored.Address)
	assert.Equal(t, entity.StatusPreparing, stored.Status)

	order.UserID = entity.NewUserID()
	assert.ErrorIs(t, s.UpdateOrder(ctx, order), err_storage.ErrOrderNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()
	deliveredAt := time.Date(2025, 7, 30, 11, 20, 0, 0, time.UTC)

	err := s.UpdateOrderStatus(ctx, entity.OrderStatusEvent{OrderID: 2, UserID: DemoUserID, Status: entity.StatusDelivered, OccurredAt: deliveredAt})
	require.NoError(t, err)

	order, err := s.GetUserOrder(ctx, DemoUserID, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredTime)
	assert.Equal(t, deliveredAt, *order.DeliveredTime)
	assert.Nil(t, order.DeliveryPerson)

	err = s.UpdateOrderStatus(ctx, entity.OrderStatusEvent{OrderID: 42, UserID: DemoUserID, Status: entity.StatusDelivered})
	assert.ErrorIs(t, err, err_storage.ErrOrderNotFound)
}

func TestNotifications(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	sections, err := s.GetUserNotificationSections(ctx, DemoUserID)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Len(t, sections[1].Notifications, 4)

	first := sections[0].Notifications[0]
	assert.Equal(t, "Order Confirmed", first.Title)
	assert.False(t, first.Read)

	require.NoError(t, s.MarkNotificationRead(ctx, DemoUserID, first.ID))
	require.NoError(t, s.DeleteNotification(ctx, DemoUserID, sections[2].Notifications[0].ID))
	assert.ErrorIs(t, s.DeleteNotification(ctx, entity.NewUserID(), first.ID), err_storage.ErrNotificationNotFound)

	sections, err = s.GetUserNotificationSections(ctx, DemoUserID)
	require.NoError(t, err)
	assert.True(t, sections[0].Notifications[0].Read)
	assert.Len(t, sections[2].Notifications, 1)

	require.NoError(t, s.ClearNotifications(ctx, DemoUserID))
	sections, err = s.GetUserNotificationSections(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestTokenRevocation(t *testing.T) {
	s := New()
	ctx := context.Background()

	revoked, err := s.IsTokenRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.RevokeToken(ctx, "token-id", time.Now().Add(time.Hour)))

	revoked, err = s.IsTokenRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.True(t, revoked)
}
