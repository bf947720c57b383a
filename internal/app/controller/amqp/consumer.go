package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/converter"
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/metrics"
	"github.com/avGenie/go-food-bag/internal/app/model"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	httputils "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	NotificationsExchange = "notifications_fanout"
	NotificationsQueue    = "foodbag.notifications"

	consumerTag = "foodbag"
	prefetch    = 10
)

var (
	ErrDrop    = errors.New("message can't be processed")
	ErrRequeue = errors.New("message should be retried")
)

type OrderStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, event entity.OrderStatusEvent) error
}

type StatusNotifier interface {
	OrderStatusChanged(ctx context.Context, event entity.OrderStatusEvent) (entity.Notification, error)
}

type Consumer struct {
	url      string
	storage  OrderStatusUpdater
	notifier StatusNotifier
}

func NewConsumer(url string, storage OrderStatusUpdater, notifier StatusNotifier) *Consumer {
	return &Consumer{
		url:      url,
		storage:  storage,
		notifier: notifier,
	}
}

// Run consumes order status events until ctx is done or the broker closes
// the connection.
func (c *Consumer) Run(ctx context.Context) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("error while connecting to broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error while opening broker channel: %w", err)
	}
	defer ch.Close()

	err = declare(ch)
	if err != nil {
		return fmt.Errorf("error while declaring notifications topology: %w", err)
	}

	err = ch.Qos(prefetch, 0, false)
	if err != nil {
		return fmt.Errorf("error while setting prefetch: %w", err)
	}

	deliveries, err := ch.Consume(NotificationsQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("error while starting consumer: %w", err)
	}

	zap.L().Info("consuming order status events", zap.String("queue", NotificationsQueue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("broker closed the deliveries channel")
			}

			c.settle(delivery, c.HandleMessage(ctx, delivery.Body))
		}
	}
}

func (c *Consumer) HandleMessage(ctx context.Context, body []byte) error {
	var message model.OrderStatusMessage
	err := json.Unmarshal(body, &message)
	if err != nil {
		return fmt.Errorf("%w: error while decoding order status message: %s", ErrDrop, err.Error())
	}

	event, err := converter.ConvertStatusMessageToEvent(message)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDrop, err.Error())
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, httputils.UpdateTimeout)
	defer cancel()

	err = c.storage.UpdateOrderStatus(ctx, event)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			return fmt.Errorf("%w: %s", ErrDrop, err.Error())
		}
		return fmt.Errorf("%w: %s", ErrRequeue, err.Error())
	}

	_, err = c.notifier.OrderStatusChanged(ctx, event)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRequeue, err.Error())
	}

	return nil
}

// settle requeues a failed message once, a redelivered one that fails again is dropped.
func (c *Consumer) settle(delivery amqp.Delivery, err error) {
	switch {
	case err == nil:
		err = delivery.Ack(false)
	case errors.Is(err, ErrDrop):
		zap.L().Warn("dropping order status message", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("consume_status").Inc()
		err = delivery.Nack(false, false)
	case delivery.Redelivered:
		zap.L().Error("dropping redelivered order status message after second failure", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("consume_status").Inc()
		err = delivery.Nack(false, false)
	default:
		zap.L().Error("error while handling order status message", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("consume_status").Inc()
		err = delivery.Nack(false, true)
	}

	if err != nil {
		zap.L().Error("error while settling delivery", zap.Error(err))
	}
}

func declare(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(NotificationsExchange, "fanout", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(NotificationsQueue, true, false, false, false, nil)
	if err != nil {
		return err
	}

	return ch.QueueBind(NotificationsQueue, "", NotificationsExchange, false, nil)
}
