package section

import (
	"testing"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "2025 Wednesday 07/30", DayLabel(at("2025-07-30T10:30:00Z")))
	assert.Equal(t, "2025 Monday 07/28", DayLabel(at("2025-07-28T23:59:00Z")))

	// the day is the UTC day whatever zone the time carries
	assert.Equal(t, "2025 Wednesday 07/30", DayLabel(at("2025-07-29T22:30:00-03:00")))
	assert.Equal(t, "2025 Tuesday 07/29", DayLabel(at("2025-07-30T01:30:00+03:00")))
}

func TestGroupOrders(t *testing.T) {
	orders := entity.Orders{
		{ID: 1, OrderTime: at("2025-07-30T10:30:00Z")},
		{ID: 2, OrderTime: at("2025-07-30T09:15:00Z")},
		{ID: 3, OrderTime: at("2025-07-29T19:20:00Z")},
		{ID: 4, OrderTime: at("2025-07-28T18:45:00Z")},
	}

	sections := GroupOrders(orders)

	require.Len(t, sections, 3)
	assert.Equal(t, "2025 Wednesday 07/30", sections[0].Day)
	assert.Len(t, sections[0].Orders, 2)
	assert.Equal(t, entity.OrderID(1), sections[0].Orders[0].ID)
	assert.Equal(t, entity.OrderID(2), sections[0].Orders[1].ID)
	assert.Equal(t, entity.OrderID(4), sections[2].Orders[0].ID)

	assert.Empty(t, GroupOrders(nil))
}

func TestGroupNotifications(t *testing.T) {
	notifications := entity.Notifications{
		{ID: 1, CreatedAt: at("2025-07-30T10:30:00Z")},
		{ID: 2, CreatedAt: at("2025-07-29T09:15:00Z")},
		{ID: 3, CreatedAt: at("2025-07-29T08:45:00Z")},
	}

	sections := GroupNotifications(notifications)

	require.Len(t, sections, 2)
	assert.Len(t, sections[0].Notifications, 1)
	assert.Len(t, sections[1].Notifications, 2)
	assert.Equal(t, "2025 Tuesday 07/29", sections[1].Day)
}
