package converter

import (
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
)

func ConvertNotificationSectionsToResponse(sections entity.NotificationSections) model.NotificationsResponse {
	out := make([]model.NotificationSectionResponse, 0, len(sections))
	unread := 0

	for _, section := range sections {
		notifications := make([]model.NotificationResponse, 0, len(section.Notifications))
		for _, notification := range section.Notifications {
			if !notification.Read {
				unread++
			}

			notifications = append(notifications, model.NotificationResponse{
				ID:          int64(notification.ID),
				Title:       notification.Title,
				Description: notification.Description,
				Href:        notification.Href,
				Time:        formatClock(notification.CreatedAt),
				Read:        notification.Read,
			})
		}

		out = append(out, model.NotificationSectionResponse{
			Day:           section.Day,
			Notifications: notifications,
		})
	}

	return model.NotificationsResponse{
		Sections: out,
		Unread:   unread,
	}
}
