// Package section groups time ordered records into the day sections the
// bag and notification lists are rendered with.
package section

import (
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/golang-module/carbon/v2"
)

const dayLayout = "2006 Monday 01/02"

// DayLabel renders t as "2025 Wednesday 07/30" in UTC.
func DayLabel(t time.Time) string {
	return carbon.Parse(t.UTC().Format(time.RFC3339), carbon.UTC).Layout(dayLayout, carbon.UTC)
}

// GroupOrders expects orders already sorted by the data source and never reorders them.
func GroupOrders(orders entity.Orders) entity.OrderSections {
	sections := make(entity.OrderSections, 0)
	for _, order := range orders {
		day := DayLabel(order.OrderTime)
		if last := len(sections) - 1; last >= 0 && sections[last].Day == day {
			sections[last].Orders = append(sections[last].Orders, order)
			continue
		}

		sections = append(sections, entity.OrderSection{
			Day:    day,
			Orders: entity.Orders{order},
		})
	}

	return sections
}

func GroupNotifications(notifications entity.Notifications) entity.NotificationSections {
	sections := make(entity.NotificationSections, 0)
	for _, notification := range notifications {
		day := DayLabel(notification.CreatedAt)
		if last := len(sections) - 1; last >= 0 && sections[last].Day == day {
			sections[last].Notifications = append(sections[last].Notifications, notification)
			continue
		}

		sections = append(sections, entity.NotificationSection{
			Day:           day,
			Notifications: entity.Notifications{notification},
		})
	}

	return sections
}
