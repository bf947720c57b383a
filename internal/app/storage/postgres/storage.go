package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	"github.com/avGenie/go-food-bag/internal/app/usecase/section"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

const (
	uniqueViolationCode = "23505"
	migrationsDir       = "migrations"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Postgres struct {
	db *sql.DB
}

func NewPostgresStorage(ctx context.Context, dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error while postgresql ping: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Postgres{
		db: db,
	}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error while setting goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("error while applying migrations: %w", err)
	}

	return nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) CreateUser(ctx context.Context, user entity.User) error {
	query := `
		INSERT INTO users (id, full_name, phone, email, password, created_at, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.FullName, user.Phone, user.Email, user.Password, user.CreatedAt, user.LastModified)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return err_storage.ErrLoginExists
		}

		return fmt.Errorf("error while creating user: %w", err)
	}

	return nil
}

func (s *Postgres) GetUserByPhone(ctx context.Context, phone string) (entity.User, error) {
	return s.getUser(ctx, `phone = $1`, phone)
}

func (s *Postgres) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	return s.getUser(ctx, `email = $1`, email)
}

func (s *Postgres) GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error) {
	return s.getUser(ctx, `id = $1`, userID.String())
}

func (s *Postgres) getUser(ctx context.Context, condition string, arg any) (entity.User, error) {
	query := `
		SELECT id, full_name, phone, email, password, created_at, last_modified
		FROM users
		WHERE ` + condition

	var user entity.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.FullName, &user.Phone, &user.Email, &user.Password, &user.CreatedAt, &user.LastModified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, err_storage.ErrLoginNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user: %w", err)
	}

	return user, nil
}

func (s *Postgres) CreatePasswordReset(ctx context.Context, reset entity.PasswordReset) error {
	query := `INSERT INTO password_resets (token, user_id, expires_at) VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, reset.Token, reset.UserID.String(), reset.ExpiresAt)
	if err != nil {
		return fmt.Errorf("error while creating password reset: %w", err)
	}

	return nil
}

func (s *Postgres) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_tokens (token_id, expires_at) VALUES ($1, $2)
		ON CONFLICT (token_id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, tokenID, expiresAt)
	if err != nil {
		return fmt.Errorf("error while revoking token: %w", err)
	}

	return nil
}

func (s *Postgres) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = $1)`

	var revoked bool
	err := s.db.QueryRowContext(ctx, query, tokenID).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("error while checking revoked token: %w", err)
	}

	return revoked, nil
}

const orderColumns = `
	id, user_id, number, status, restaurant, restaurant_logo, address,
	customer_name, customer_phone, courier_name, courier_phone, courier_vehicle,
	order_time, estimated_delivery, delivered_time
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (entity.Order, error) {
	var (
		order                        entity.Order
		courierName, courierPhone    sql.NullString
		courierVehicle               sql.NullString
		estimatedDelivery, delivered sql.NullTime
	)

	err := row.Scan(
		&order.ID, &order.UserID, &order.Number, &order.Status, &order.Restaurant, &order.RestaurantLogo, &order.Address,
		&order.Customer.FullName, &order.Customer.Phone, &courierName, &courierPhone, &courierVehicle,
		&order.OrderTime, &estimatedDelivery, &delivered,
	)
	if err != nil {
		return entity.Order{}, err
	}

	if courierName.Valid {
		order.DeliveryPerson = &entity.DeliveryPerson{
			Name:    courierName.String,
			Phone:   courierPhone.String,
			Vehicle: courierVehicle.String,
		}
	}
	if estimatedDelivery.Valid {
		order.EstimatedDelivery = &estimatedDelivery.Time
	}
	if delivered.Valid {
		order.DeliveredTime = &delivered.Time
	}

	return order, nil
}

func (s *Postgres) GetUserOrderSections(ctx context.Context, userID entity.UserID) (entity.OrderSections, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY order_time DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("error while getting user orders: %w", err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0)
	positions := make(map[entity.OrderID]int)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("error while scanning user order: %w", err)
		}
		positions[order.ID] = len(orders)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating user orders: %w", err)
	}

	if len(orders) == 0 {
		return nil, err_storage.ErrOrdersForUserNotFound
	}

	itemsQuery := `
		SELECT i.order_id, i.id, i.name, i.pricing, i.unit_price, i.quantity
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.user_id = $1
		ORDER BY i.order_id, i.id
	`
	itemRows, err := s.db.QueryContext(ctx, itemsQuery, userID.String())
	if err != nil {
		return nil, fmt.Errorf("error while getting user order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		orderID, item, err := scanOrderItem(itemRows)
		if err != nil {
			return nil, fmt.Errorf("error while scanning order item: %w", err)
		}

		position, ok := positions[orderID]
		if !ok {
			continue
		}
		orders[position].Items = append(orders[position].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating order items: %w", err)
	}

	return section.GroupOrders(orders), nil
}

func scanOrderItem(row rowScanner) (entity.OrderID, entity.OrderItem, error) {
	var (
		orderID   entity.OrderID
		item      entity.OrderItem
		unitPrice decimal.NullDecimal
	)

	err := row.Scan(&orderID, &item.ID, &item.Name, &item.Pricing, &unitPrice, &item.Quantity)
	if err != nil {
		return 0, entity.OrderItem{}, err
	}

	if unitPrice.Valid {
		item.UnitPrice = unitPrice.Decimal
	}

	return orderID, item, nil
}

func (s *Postgres) GetUserOrder(ctx context.Context, userID entity.UserID, orderID entity.OrderID) (entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, orderID, userID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting user order: %w", err)
	}

	itemsQuery := `
		SELECT order_id, id, name, pricing, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, itemsQuery, orderID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while getting order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		_, item, err := scanOrderItem(rows)
		if err != nil {
			return entity.Order{}, fmt.Errorf("error while scanning order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return entity.Order{}, fmt.Errorf("error while iterating order items: %w", err)
	}

	return order, nil
}

func (s *Postgres) UpdateOrder(ctx context.Context, order entity.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error while starting order update transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE orders
		SET address = $3, customer_name = $4, customer_phone = $5
		WHERE id = $1 AND user_id = $2
	`
	result, err := tx.ExecContext(ctx, query,
		order.ID, order.UserID.String(), order.Address, order.Customer.FullName, order.Customer.Phone)
	if err != nil {
		return fmt.Errorf("error while updating order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error while checking updated order: %w", err)
	}
	if affected == 0 {
		return err_storage.ErrOrderNotFound
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID)
	if err != nil {
		return fmt.Errorf("error while clearing order items: %w", err)
	}

	insertItem := `
		INSERT INTO order_items (order_id, id, name, pricing, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range order.Items {
		unitPrice := decimal.NullDecimal{Decimal: item.UnitPrice, Valid: !item.WeightPriced()}
		_, err = tx.ExecContext(ctx, insertItem, order.ID, item.ID, item.Name, item.Pricing, unitPrice, item.Quantity)
		if err != nil {
			return fmt.Errorf("error while inserting order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error while committing order update: %w", err)
	}

	return nil
}

func (s *Postgres) UpdateOrderStatus(ctx context.Context, event entity.OrderStatusEvent) error {
	query := `
		UPDATE orders
		SET status = $3,
		    delivered_time = CASE WHEN $3 = 'delivered' THEN $4 ELSE delivered_time END,
		    estimated_delivery = CASE WHEN $3 = 'delivered' THEN NULL ELSE estimated_delivery END,
		    courier_name = CASE WHEN $3 = 'delivered' THEN NULL ELSE courier_name END
		WHERE id = $1 AND user_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, event.OrderID, event.UserID.String(), string(event.Status), event.OccurredAt)
	if err != nil {
		return fmt.Errorf("error while updating order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error while checking updated order status: %w", err)
	}
	if affected == 0 {
		return err_storage.ErrOrderNotFound
	}

	return nil
}

func (s *Postgres) AddNotification(ctx context.Context, notification entity.Notification) (entity.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, title, description, href, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		notification.UserID.String(), notification.Title, notification.Description, notification.Href,
		notification.Read, notification.CreatedAt,
	).Scan(&notification.ID)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("error while adding notification: %w", err)
	}

	return notification, nil
}

func (s *Postgres) GetUserNotificationSections(ctx context.Context, userID entity.UserID) (entity.NotificationSections, error) {
	query := `
		SELECT id, user_id, title, description, href, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("error while getting notifications: %w", err)
	}
	defer rows.Close()

	notifications := make(entity.Notifications, 0)
	for rows.Next() {
		var notification entity.Notification
		err := rows.Scan(&notification.ID, &notification.UserID, &notification.Title, &notification.Description,
			&notification.Href, &notification.Read, &notification.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error while scanning notification: %w", err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating notifications: %w", err)
	}

	return section.GroupNotifications(notifications), nil
}

func (s *Postgres) MarkNotificationRead(ctx context.Context, userID entity.UserID, id entity.NotificationID) error {
	return s.execNotification(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, userID, id)
}

func (s *Postgres) DeleteNotification(ctx context.Context, userID entity.UserID, id entity.NotificationID) error {
	return s.execNotification(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, userID, id)
}

func (s *Postgres) execNotification(ctx context.Context, query string, userID entity.UserID, id entity.NotificationID) error {
	result, err := s.db.ExecContext(ctx, query, id, userID.String())
	if err != nil {
		return fmt.Errorf("error while changing notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error while checking changed notification: %w", err)
	}
	if affected == 0 {
		return err_storage.ErrNotificationNotFound
	}

	return nil
}

func (s *Postgres) ClearNotifications(ctx context.Context, userID entity.UserID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID.String())
	if err != nil {
		return fmt.Errorf("error while clearing notifications: %w", err)
	}

	return nil
}
