package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "PENDING"    // Order placed, awaiting confirmation
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"  // Payment observed by the client
	OrderStatusProcessing OrderStatus = "PROCESSING" // Being prepared
	OrderStatusShipped    OrderStatus = "SHIPPED"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// Order mirrors the backend order record. PaymentStatus is free text on the
// wire, so it stays a plain string here.
type Order struct {
	ID            string           `json:"_id" validate:"required"`
	OrderNumber   string           `json:"orderNumber" validate:"required"`
	UserID        string           `json:"user,omitempty"`
	CartID        string           `json:"cart,omitempty"`
	Status        OrderStatus      `json:"status" validate:"required"`
	PaymentStatus string           `json:"paymentStatus"`
	PaymentMethod string           `json:"paymentMethod,omitempty"` // e.g. "card", "crypto"
	Currency      string           `json:"currency"`
	Items         []OrderItem      `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	Tax           float64          `json:"tax"`
	ShippingCost  float64          `json:"shippingCost"`
	Discount      float64          `json:"discount"`
	Total         float64          `json:"total"`
	Shipping      *ShippingAddress `json:"shippingAddress,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type OrderItem struct {
	ProductID       string            `json:"product"`
	Name            string            `json:"name"`
	Quantity        int               `json:"quantity"`
	Price           float64           `json:"price"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
	IsDigital       bool              `json:"isDigital"`
}

// ShippingAddress carries its own delivery state, tracked separately from
// the order status.
type ShippingAddress struct {
	Name           string `json:"name"`
	Line1          string `json:"line1"`
	Line2          string `json:"line2,omitempty"`
	City           string `json:"city"`
	Region         string `json:"region"`
	Country        string `json:"country"`
	Postcode       string `json:"postcode"`
	Phone          string `json:"phone,omitempty"`
	DeliveryStatus string `json:"deliveryStatus,omitempty"`
}

// MapOrderStatus maps a raw string onto an OrderStatus.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToUpper(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	case string(OrderStatusRefunded):
		return OrderStatusRefunded, nil
	default:
		return "", errors.New("invalid order status")
	}
}
