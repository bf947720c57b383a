package memory

import (
	"context"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/usecase/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DemoUserID   entity.UserID = "5f7d1c2e-8c1a-4f7e-9d1b-3a2b4c5d6e7f"
	DemoPhone                  = "+1234567890"
	DemoPassword               = "password123"
)

// NewSeeded returns a storage holding the demo account with its bag and notifications.
func NewSeeded() *Storage {
	s := New()

	hash, err := crypto.HashPassword(DemoPassword)
	if err != nil {
		zap.L().Error("error while hashing demo password", zap.Error(err))
	}

	created := seedTime("2025-07-01T09:00:00Z")
	err = s.CreateUser(context.Background(), entity.User{
		ID:           DemoUserID,
		FullName:     "John Smith",
		Phone:        DemoPhone,
		Email:        "john.smith@example.com",
		Password:     hash,
		CreatedAt:    created,
		LastModified: created,
	})
	if err != nil {
		zap.L().Error("error while seeding demo user", zap.Error(err))
	}

	for _, order := range demoOrders() {
		s.AddOrder(order)
	}

	for _, notification := range demoNotifications() {
		_, err = s.AddNotification(context.Background(), notification)
		if err != nil {
			zap.L().Error("error while seeding demo notification", zap.Error(err))
		}
	}

	return s
}

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

func seedTimeRef(value string) *time.Time {
	t := seedTime(value)

	return &t
}

func item(id int64, name, unitPrice string, quantity int) entity.OrderItem {
	return entity.OrderItem{
		ID:        id,
		Name:      name,
		Pricing:   entity.PricingQuantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
		Quantity:  quantity,
	}
}

func weighed(id int64, name string) entity.OrderItem {
	return entity.OrderItem{
		ID:      id,
		Name:    name,
		Pricing: entity.PricingWeight,
	}
}

func demoOrders() entity.Orders {
	address := "123 Main St, Apartment 4B"

	return entity.Orders{
		{
			ID:             1,
			UserID:         DemoUserID,
			Number:         "ORD-7842-2025",
			Status:         entity.StatusPreparing,
			Restaurant:     "Pizza Palace",
			RestaurantLogo: "🍕",
			Items: []entity.OrderItem{
				item(1, "Margherita Pizza", "12.99", 1),
				item(2, "Garlic Bread", "4.99", 2),
				item(3, "Coca Cola", "2.49", 1),
			},
			Address:           address,
			Customer:          entity.Customer{FullName: "John Smith", Phone: "+1234567890"},
			DeliveryPerson:    &entity.DeliveryPerson{Name: "John Doe", Phone: "+1234567890", Vehicle: "Motorcycle"},
			OrderTime:         seedTime("2025-07-30T10:30:00Z"),
			EstimatedDelivery: seedTimeRef("2025-07-30T11:30:00Z"),
		},
		{
			ID:             2,
			UserID:         DemoUserID,
			Number:         "ORD-9153-2025",
			Status:         entity.StatusOnTheWay,
			Restaurant:     "Burger Hub",
			RestaurantLogo: "🍔",
			Items: []entity.OrderItem{
				item(1, "Double Cheeseburger", "8.99", 1),
				item(2, "French Fries", "3.49", 1),
				item(3, "Chocolate Shake", "4.99", 1),
			},
			Address:           address,
			Customer:          entity.Customer{FullName: "Sarah Johnson", Phone: "+1987654321"},
			DeliveryPerson:    &entity.DeliveryPerson{Name: "Mike Johnson", Phone: "+1987654321", Vehicle: "Bicycle"},
			OrderTime:         seedTime("2025-07-30T09:15:00Z"),
			EstimatedDelivery: seedTimeRef("2025-07-30T10:00:00Z"),
		},
		{
			ID:             5,
			UserID:         DemoUserID,
			Number:         "ORD-5120-2025",
			Status:         entity.StatusPreparing,
			Restaurant:     "Fresh Market",
			RestaurantLogo: "🥕",
			Items: []entity.OrderItem{
				item(1, "Sparkling Water", "1.49", 6),
				weighed(2, "Tomatoes"),
				weighed(3, "Bananas"),
			},
			Address:           address,
			Customer:          entity.Customer{FullName: "John Smith", Phone: "+1234567890"},
			DeliveryPerson:    &entity.DeliveryPerson{Name: "Ali Hassan", Phone: "+1472583690", Vehicle: "Van"},
			OrderTime:         seedTime("2025-07-30T08:05:00Z"),
			EstimatedDelivery: seedTimeRef("2025-07-30T09:30:00Z"),
		},
		{
			ID:             3,
			UserID:         DemoUserID,
			Number:         "ORD-6291-2025",
			Status:         entity.StatusDelivered,
			Restaurant:     "Sushi Express",
			RestaurantLogo: "🍣",
			Items: []entity.OrderItem{
				item(1, "California Roll", "6.99", 2),
				item(2, "Salmon Nigiri", "3.99", 4),
				item(3, "Miso Soup", "2.99", 1),
			},
			Address:       address,
			Customer:      entity.Customer{FullName: "Mike Chen", Phone: "+1122334455"},
			OrderTime:     seedTime("2025-07-29T19:20:00Z"),
			DeliveredTime: seedTimeRef("2025-07-29T20:05:00Z"),
		},
		{
			ID:             4,
			UserID:         DemoUserID,
			Number:         "ORD-4378-2025",
			Status:         entity.StatusDelivered,
			Restaurant:     "Taco Fiesta",
			RestaurantLogo: "🌮",
			Items: []entity.OrderItem{
				item(1, "Beef Tacos", "3.49", 3),
				item(2, "Guacamole", "2.99", 1),
				item(3, "Churros", "4.99", 2),
			},
			Address:       address,
			Customer:      entity.Customer{FullName: "Emily Davis", Phone: "+1567890123"},
			OrderTime:     seedTime("2025-07-28T18:45:00Z"),
			DeliveredTime: seedTimeRef("2025-07-28T19:30:00Z"),
		},
	}
}

func demoNotifications() entity.Notifications {
	notification := func(title, description, href, createdAt string, read bool) entity.Notification {
		return entity.Notification{
			UserID:      DemoUserID,
			Title:       title,
			Description: description,
			Href:        href,
			Read:        read,
			CreatedAt:   seedTime(createdAt),
		}
	}

	return entity.Notifications{
		notification("Order Confirmed", "Your order #ORD-7842-2025 has been confirmed and is being prepared.", "/bag/1", "2025-07-30T10:30:00Z", false),
		notification("Special Offer", "Get 20% off on all pizza orders today! Limited time offer.", "", "2025-07-30T09:15:00Z", true),
		notification("Delivery Update", "Your food will arrive in 15-20 minutes. Get ready!", "/bag/2", "2025-07-30T08:45:00Z", false),
		notification("Payment Successful", "Your payment of $38.55 for order #ORD-6291-2025 has been processed.", "/bag/3", "2025-07-29T19:20:00Z", true),
		notification("New Restaurant", "Check out our new partner restaurant 'Sushi Palace' now available!", "", "2025-07-29T15:45:00Z", true),
		notification("Rating Reminder", "How was your recent order? Rate your experience and help us improve.", "/bag/3", "2025-07-29T13:30:00Z", false),
		notification("Weekly Summary", "You saved $12.50 this week with our loyalty program!", "", "2025-07-29T10:00:00Z", true),
		notification("Order Delivered", "Your order has been successfully delivered. Enjoy your meal!", "/bag/4", "2025-07-28T20:15:00Z", true),
		notification("Promo Code", "Use code WELCOME15 for 15% off your next order. Valid for 7 days.", "", "2025-07-28T11:30:00Z", true),
	}
}
