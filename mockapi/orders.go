package mockapi

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

type createOrderRequest struct {
	UserID   string                  `json:"user"`
	CartID   string                  `json:"cart"`
	Items    []models.OrderItem      `json:"items" binding:"required,min=1"`
	Currency string                  `json:"currency"`
	Shipping *models.ShippingAddress `json:"shippingAddress"`
	Status   string                  `json:"status"`
}

// POST /orders
func createOrder(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status := models.OrderStatusPending
		if req.Status != "" {
			mapped, err := models.MapOrderStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			status = mapped
		}
		currency := req.Currency
		if currency == "" {
			currency = "USD"
		}

		store.mu.Lock()
		defer store.mu.Unlock()

		// Totals are authoritative here: prices come from the catalog, not
		// from whatever the client sent.
		var subtotal float64
		physical := false
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			product, exists := store.products[item.ProductID]
			if !exists {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist: " + item.ProductID})
				return
			}
			if item.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity for product: " + item.ProductID})
				return
			}
			items = append(items, models.OrderItem{
				ProductID:       product.ID,
				Name:            product.Name,
				Quantity:        item.Quantity,
				Price:           product.Price,
				SelectedOptions: item.SelectedOptions,
				IsDigital:       product.IsDigital,
			})
			subtotal += product.Price * float64(item.Quantity)
			if !product.IsDigital {
				physical = true
			}
		}

		shipping := 0.0
		if physical {
			shipping = store.shippingFlatRate
			if req.Shipping == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address is required for physical items"})
				return
			}
		}

		discount := 0.0
		if cart := store.cartByID(req.CartID); cart != nil && cart.UserID == userID {
			discount = cart.Discount
		}
		if discount > subtotal {
			discount = subtotal
		}

		store.orderSeq++
		order := &models.Order{
			ID:            uuid.NewString(),
			OrderNumber:   fmt.Sprintf("BB-%05d", store.orderSeq),
			UserID:        userID,
			CartID:        req.CartID,
			Status:        status,
			PaymentStatus: "pending",
			Currency:      currency,
			Items:         items,
			Subtotal:      subtotal,
			Tax:           subtotal * store.taxRate,
			ShippingCost:  shipping,
			Discount:      discount,
			Total:         subtotal + subtotal*store.taxRate + shipping - discount,
			Shipping:      req.Shipping,
			CreatedAt:     time.Now(),
		}
		if order.Shipping != nil && order.Shipping.DeliveryStatus == "" {
			order.Shipping.DeliveryStatus = "not_dispatched"
		}
		store.orders[order.ID] = order

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/:id
func getOrder(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.mu.Lock()
		defer store.mu.Unlock()

		order, exists := store.orders[c.Param("id")]
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/user/:userId?page&limit&type&includeBundleItems
func listUserOrders(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}
		orderType := c.Query("type")

		store.mu.Lock()
		defer store.mu.Unlock()

		var matched []models.Order
		for _, order := range store.orders {
			if order.UserID != userID {
				continue
			}
			if orderType != "" && !matchesOrderType(order, orderType) {
				continue
			}
			matched = append(matched, *order)
		}
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})

		total := len(matched)
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": matched[start:end],
			"page":   page,
			"limit":  limit,
			"total":  total,
		})
	}
}

func matchesOrderType(order *models.Order, orderType string) bool {
	physical := false
	for _, item := range order.Items {
		if !item.IsDigital {
			physical = true
		}
	}
	switch orderType {
	case "digital":
		return !physical
	case "physical":
		return physical
	default:
		return true
	}
}
