package bag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	httputils "github.com/avGenie/go-food-bag/internal/app/controller/http/utils"
	"github.com/avGenie/go-food-bag/internal/app/converter"
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/metrics"
	"github.com/avGenie/go-food-bag/internal/app/model"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	"github.com/avGenie/go-food-bag/internal/app/usecase/bag"
	writer "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	ErrOrderNotFound   = "order not found"
	ErrInvalidOrderID  = "order id is invalid"
	ErrInvalidRequest  = "request body is invalid"
	ErrUnauthorized    = "unauthorized"
	errInternalRequest = "internal server error"
)

type OrderStorage interface {
	GetUserOrderSections(ctx context.Context, userID entity.UserID) (entity.OrderSections, error)
	GetUserOrder(ctx context.Context, userID entity.UserID, orderID entity.OrderID) (entity.Order, error)
	UpdateOrder(ctx context.Context, order entity.Order) error
}

type OrderNotifier interface {
	OrderUpdated(ctx context.Context, order entity.Order) (entity.Notification, error)
}

type Bag struct {
	storage  OrderStorage
	notifier OrderNotifier
}

func New(storage OrderStorage, notifier OrderNotifier) Bag {
	return Bag{
		storage:  storage,
		notifier: notifier,
	}
}

func (b *Bag) GetBag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := b.parseUserID(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), writer.RequestTimeout)
		defer cancel()

		sections, err := b.storage.GetUserOrderSections(ctx, userID)
		if err != nil && !errors.Is(err, err_storage.ErrOrdersForUserNotFound) {
			zap.L().Error("error while getting user bag", zap.Error(err), zap.String("user_id", userID.String()))
			metrics.OperationErrorsTotal.WithLabelValues("get_bag").Inc()
			writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
			return
		}
		metrics.BagSummariesTotal.Inc()

		writer.WriteJSON(w, http.StatusOK, converter.ConvertSectionsToBagResponse(sections))
	}
}

func (b *Bag) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := b.parseUserID(w, r)
		if !ok {
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			zap.L().Info("error while parsing order id", zap.Error(err))
			writer.WriteMessage(w, http.StatusBadRequest, ErrInvalidOrderID)
			return
		}

		order, ok := b.getOrder(userID, orderID, w, r)
		if !ok {
			return
		}

		writer.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order, bag.PriceOrder(order)))
	}
}

func (b *Bag) SaveOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := b.parseUserID(w, r)
		if !ok {
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			zap.L().Info("error while parsing order id", zap.Error(err))
			writer.WriteMessage(w, http.StatusBadRequest, ErrInvalidOrderID)
			return
		}

		var request model.SaveOrderRequest
		err = json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			zap.L().Info("error while decoding save order request", zap.Error(err))
			writer.WriteMessage(w, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
		defer r.Body.Close()

		order, ok := b.getOrder(userID, orderID, w, r)
		if !ok {
			return
		}

		edited, err := converter.ApplySaveOrderRequest(order, request)
		if err != nil {
			zap.L().Info("error while applying order edits", zap.Error(err), zap.Int64("order_id", int64(orderID)))
			writer.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), writer.RequestTimeout)
		defer cancel()

		err = b.storage.UpdateOrder(ctx, edited)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				writer.WriteMessage(w, http.StatusNotFound, ErrOrderNotFound)
				return
			}

			zap.L().Error("error while saving order", zap.Error(err), zap.Int64("order_id", int64(orderID)))
			metrics.OperationErrorsTotal.WithLabelValues("save_order").Inc()
			writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
			return
		}
		metrics.OrdersSavedTotal.Inc()

		_, err = b.notifier.OrderUpdated(ctx, edited)
		if err != nil {
			zap.L().Error("error while pushing order updated notification", zap.Error(err))
		}

		writer.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(edited, bag.PriceOrder(edited)))
	}
}

func (b *Bag) getOrder(userID entity.UserID, orderID entity.OrderID, w http.ResponseWriter, r *http.Request) (entity.Order, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), writer.RequestTimeout)
	defer cancel()

	order, err := b.storage.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			writer.WriteMessage(w, http.StatusNotFound, ErrOrderNotFound)
			return entity.Order{}, false
		}

		zap.L().Error("error while getting order", zap.Error(err), zap.Int64("order_id", int64(orderID)))
		writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
		return entity.Order{}, false
	}

	return order, true
}

func (b *Bag) parseUserID(w http.ResponseWriter, r *http.Request) (entity.UserID, bool) {
	userID, err := httputils.GetUserIDFromContext(r)
	if err != nil {
		zap.L().Info("error while getting user id from context", zap.Error(err))
		writer.WriteMessage(w, http.StatusUnauthorized, ErrUnauthorized)
		return entity.UserID(""), false
	}

	return userID, true
}

func parseOrderID(r *http.Request) (entity.OrderID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("order id %q is invalid", raw)
	}

	return entity.OrderID(id), nil
}
