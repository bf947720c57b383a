package model

type OrderItemResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Pricing   string `json:"pricing"`
	UnitPrice string `json:"price,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal,omitempty"`
}

type CustomerResponse struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type DeliveryPersonResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

type PriceBreakdownResponse struct {
	Subtotal     string `json:"subtotal"`
	DeliveryFee  string `json:"deliveryFee"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
	WeightPriced bool   `json:"weightPriced"`
	WeightItems  int    `json:"weightItems"`
	Description  string `json:"description"`
}

type OrderResponse struct {
	ID                int64                   `json:"id"`
	OrderNumber       string                  `json:"orderNumber"`
	Status            string                  `json:"status"`
	StatusText        string                  `json:"statusText"`
	Restaurant        string                  `json:"restaurant"`
	RestaurantLogo    string                  `json:"restaurantLogo"`
	Items             []OrderItemResponse     `json:"items"`
	Address           string                  `json:"address"`
	Customer          CustomerResponse        `json:"customer"`
	DeliveryPerson    *DeliveryPersonResponse `json:"deliveryPerson,omitempty"`
	OrderTime         string                  `json:"orderTime"`
	EstimatedDelivery string                  `json:"estimatedDelivery,omitempty"`
	DeliveredTime     string                  `json:"deliveredTime,omitempty"`
	Breakdown         PriceBreakdownResponse  `json:"breakdown"`
}

type OrderSectionResponse struct {
	Day    string          `json:"day"`
	Orders []OrderResponse `json:"data"`
}

type BagResponse struct {
	Sections       []OrderSectionResponse `json:"sections"`
	ActiveCount    int                    `json:"activeCount"`
	DeliveredCount int                    `json:"deliveredCount"`
	TotalCount     int                    `json:"totalCount"`
}

type SaveOrderItemRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// SaveOrderRequest carries the locally edited part of an order. Items not
// listed are removed from the order, a missing items field keeps them all.
type SaveOrderRequest struct {
	Items    []SaveOrderItemRequest `json:"items"`
	Address  string                 `json:"address"`
	Customer CustomerResponse       `json:"customer"`
}
