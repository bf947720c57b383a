package notifications

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	httputils "github.com/avGenie/go-food-bag/internal/app/controller/http/utils"
	"github.com/avGenie/go-food-bag/internal/app/converter"
	"github.com/avGenie/go-food-bag/internal/app/entity"
	err_storage "github.com/avGenie/go-food-bag/internal/app/storage/api/errors"
	writer "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	ErrNotificationNotFound  = "notification not found"
	ErrInvalidNotificationID = "notification id is invalid"
	ErrUnauthorized          = "unauthorized"
	MessageMarkedRead        = "notification marked as read"
	MessageRemoved           = "notification removed"
	MessageCleared           = "notifications cleared"
	errInternalRequest       = "internal server error"
)

type Feed interface {
	List(ctx context.Context, userID entity.UserID) (entity.NotificationSections, error)
	MarkRead(ctx context.Context, userID entity.UserID, id entity.NotificationID) error
	Remove(ctx context.Context, userID entity.UserID, id entity.NotificationID) error
	ClearAll(ctx context.Context, userID entity.UserID) error
}

type Notifications struct {
	feed Feed
}

func New(feed Feed) Notifications {
	return Notifications{
		feed: feed,
	}
}

func (n *Notifications) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), writer.RequestTimeout)
		defer cancel()

		sections, err := n.feed.List(ctx, userID)
		if err != nil {
			zap.L().Error("error while listing notifications", zap.Error(err))
			writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
			return
		}

		writer.WriteJSON(w, http.StatusOK, converter.ConvertNotificationSectionsToResponse(sections))
	}
}

func (n *Notifications) MarkRead() http.HandlerFunc {
	return n.handleOne(n.feed.MarkRead, MessageMarkedRead)
}

func (n *Notifications) Remove() http.HandlerFunc {
	return n.handleOne(n.feed.Remove, MessageRemoved)
}

func (n *Notifications) ClearAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), writer.RequestTimeout)
		defer cancel()

		err := n.feed.ClearAll(ctx, userID)
		if err != nil {
			zap.L().Error("error while clearing notifications", zap.Error(err))
			writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
			return
		}

		writer.WriteMessage(w, http.StatusOK, MessageCleared)
	}
}

func (n *Notifications) handleOne(action func(context.Context, entity.UserID, entity.NotificationID) error, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		id, err := parseNotificationID(r)
		if err != nil {
			zap.L().Info("error while parsing notification id", zap.Error(err))
			writer.WriteMessage(w, http.StatusBadRequest, ErrInvalidNotificationID)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), writer.RequestTimeout)
		defer cancel()

		err = action(ctx, userID, id)
		if err != nil {
			if errors.Is(err, err_storage.ErrNotificationNotFound) {
				writer.WriteMessage(w, http.StatusNotFound, ErrNotificationNotFound)
				return
			}

			zap.L().Error("error while updating notification", zap.Error(err), zap.Int64("id", int64(id)))
			writer.WriteMessage(w, http.StatusInternalServerError, errInternalRequest)
			return
		}

		writer.WriteMessage(w, http.StatusOK, message)
	}
}

func parseUserID(w http.ResponseWriter, r *http.Request) (entity.UserID, bool) {
	userID, err := httputils.GetUserIDFromContext(r)
	if err != nil {
		zap.L().Info("error while getting user id from context", zap.Error(err))
		writer.WriteMessage(w, http.StatusUnauthorized, ErrUnauthorized)
		return entity.UserID(""), false
	}

	return userID, true
}

func parseNotificationID(r *http.Request) (entity.NotificationID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("notification id %q is invalid", raw)
	}

	return entity.NotificationID(id), nil
}
