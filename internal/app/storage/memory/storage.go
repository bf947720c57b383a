// Package memory is a process local storage used when no database is
// configured. It follows the same ordering rules as the postgres storage:
// orders and notifications newest first.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	"github.com/avGenie/go-food-bag/internal/app/usecase/section"
)

type Storage struct {
	mutex sync.RWMutex

	users         map[entity.UserID]entity.User
	resets        map[string]entity.PasswordReset
	revoked       map[string]time.Time
	orders        map[entity.OrderID]entity.Order
	notifications map[entity.NotificationID]entity.Notification

	lastNotificationID entity.NotificationID
}

func New() *Storage {
	return &Storage{
		users:         make(map[entity.UserID]entity.User),
		resets:        make(map[string]entity.PasswordReset),
		revoked:       make(map[string]time.Time),
		orders:        make(map[entity.OrderID]entity.Order),
		notifications: make(map[entity.NotificationID]entity.Notification),
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) CreateUser(ctx context.Context, user entity.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, stored := range s.users {
		if stored.Phone == user.Phone || (len(user.Email) != 0 && stored.Email == user.Email) {
			return err_storage.ErrLoginExists
		}
	}
	s.users[user.ID] = user

	return nil
}

func (s *Storage) GetUserByPhone(ctx context.Context, phone string) (entity.User, error) {
	return s.findUser(func(user entity.User) bool { return user.Phone == phone })
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	return s.findUser(func(user entity.User) bool { return user.Email == email })
}

func (s *Storage) GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error) {
	return s.findUser(func(user entity.User) bool { return user.ID == userID })
}

func (s *Storage) findUser(match func(entity.User) bool) (entity.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, user := range s.users {
		if match(user) {
			return user, nil
		}
	}

	return entity.User{}, err_storage.ErrLoginNotFound
}

func (s *Storage) CreatePasswordReset(ctx context.Context, reset entity.PasswordReset) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.resets[reset.Token] = reset

	return nil
}

func (s *Storage) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.revoked[tokenID] = expiresAt

	return nil
}

func (s *Storage) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.revoked[tokenID]

	return ok, nil
}

func (s *Storage) AddOrder(order entity.Order) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.orders[order.ID] = order.Clone()
}

func (s *Storage) GetUserOrderSections(ctx context.Context, userID entity.UserID) (entity.OrderSections, error) {
	s.mutex.RLock()
	orders := make(entity.Orders, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, order.Clone())
		}
	}
	s.mutex.RUnlock()

	if len(orders) == 0 {
		return nil, err_storage.ErrOrdersForUserNotFound
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].OrderTime.Equal(orders[j].OrderTime) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].OrderTime.After(orders[j].OrderTime)
	})

	return section.GroupOrders(orders), nil
}

func (s *Storage) GetUserOrder(ctx context.Context, userID entity.UserID, orderID entity.OrderID) (entity.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	order, ok := s.orders[orderID]
	if !ok || order.UserID != userID {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	return order.Clone(), nil
}

func (s *Storage) UpdateOrder(ctx context.Context, order entity.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, ok := s.orders[order.ID]
	if !ok || stored.UserID != order.UserID {
		return err_storage.ErrOrderNotFound
	}

	stored.Items = append([]entity.OrderItem(nil), order.Items...)
	stored.Address = order.Address
	stored.Customer = order.Customer
	s.orders[order.ID] = stored

	return nil
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, event entity.OrderStatusEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, ok := s.orders[event.OrderID]
	if !ok || stored.UserID != event.UserID {
		return err_storage.ErrOrderNotFound
	}

	stored.Status = event.Status
	if event.Status == entity.StatusDelivered {
		delivered := event.OccurredAt
		stored.DeliveredTime = &delivered
		stored.DeliveryPerson = nil
		stored.EstimatedDelivery = nil
	}
	s.orders[event.OrderID] = stored

	return nil
}

func (s *Storage) AddNotification(ctx context.Context, notification entity.Notification) (entity.Notification, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.lastNotificationID++
	notification.ID = s.lastNotificationID
	s.notifications[notification.ID] = notification

	return notification, nil
}

func (s *Storage) GetUserNotificationSections(ctx context.Context, userID entity.UserID) (entity.NotificationSections, error) {
	s.mutex.RLock()
	notifications := make(entity.Notifications, 0)
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	s.mutex.RUnlock()

	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt.Equal(notifications[j].CreatedAt) {
			return notifications[i].ID > notifications[j].ID
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return section.GroupNotifications(notifications), nil
}

func (s *Storage) MarkNotificationRead(ctx context.Context, userID entity.UserID, id entity.NotificationID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	notification, ok := s.notifications[id]
	if !ok || notification.UserID != userID {
		return err_storage.ErrNotificationNotFound
	}

	notification.Read = true
	s.notifications[id] = notification

	return nil
}

func (s *Storage) DeleteNotification(ctx context.Context, userID entity.UserID, id entity.NotificationID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	notification, ok := s.notifications[id]
	if !ok || notification.UserID != userID {
		return err_storage.ErrNotificationNotFound
	}

	delete(s.notifications, id)

	return nil
}

func (s *Storage) ClearNotifications(ctx context.Context, userID entity.UserID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for id, notification := range s.notifications {
		if notification.UserID == userID {
			delete(s.notifications, id)
		}
	}

	return nil
}
