package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

type cartItemInput struct {
	ProductID       string            `json:"product" binding:"required"`
	Quantity        int               `json:"quantity" binding:"required,min=1"`
	SelectedOptions map[string]string `json:"selectedOptions"`
}

// POST /cart/add
func addCartItem(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			Item cartItemInput `json:"item" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.mu.Lock()
		defer store.mu.Unlock()

		product, exists := store.products[input.Item.ProductID]
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		cart := store.activeCart(userID)
		if cart.Status != models.CartStatusActive {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is not open for mutation"})
			return
		}

		// Upsert: an existing line for the same product + options takes the
		// submitted quantity, so identical resubmits are idempotent.
		updated := false
		for i := range cart.Items {
			item := &cart.Items[i]
			if item.Product.ID == product.ID && sameOptions(item.SelectedOptions, input.Item.SelectedOptions) {
				item.Quantity = input.Item.Quantity
				updated = true
				break
			}
		}
		if !updated {
			cart.Items = append(cart.Items, models.CartItem{
				Product:         product,
				Quantity:        input.Item.Quantity,
				SelectedOptions: input.Item.SelectedOptions,
			})
		}

		store.recompute(cart)
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart/:cartId/remove/:productId
func removeCartItem(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			SelectedOptions map[string]string `json:"selectedOptions"`
		}
		_ = c.ShouldBindJSON(&input) // body is optional

		store.mu.Lock()
		defer store.mu.Unlock()

		cart := store.cartByID(c.Param("cartId"))
		if cart == nil || cart.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		productID := c.Param("productId")
		removed := false
		for i, item := range cart.Items {
			if item.Product.ID != productID {
				continue
			}
			if input.SelectedOptions != nil && !sameOptions(item.SelectedOptions, input.SelectedOptions) {
				continue
			}
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			removed = true
			break
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		store.recompute(cart)
		c.JSON(http.StatusOK, cart)
	}
}

// GET /cart/active
func getActiveCart(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		store.mu.Lock()
		defer store.mu.Unlock()

		cart := store.activeCart(userID)
		store.recompute(cart)
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart/:cartId
func updateCartStatus(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := models.MapCartStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store.mu.Lock()
		defer store.mu.Unlock()

		cart := store.cartByID(c.Param("cartId"))
		if cart == nil || cart.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		cart.Status = status
		cart.UpdatedAt = time.Now()
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/:cartId/discounts
func applyDiscount(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			Code string `json:"code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.mu.Lock()
		defer store.mu.Unlock()

		cart := store.cartByID(c.Param("cartId"))
		if cart == nil || cart.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		coupon, exists := store.coupons[normalizeCode(input.Code)]
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount code"})
			return
		}
		if !coupon.ExpiresAt.IsZero() && coupon.ExpiresAt.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code has expired"})
			return
		}

		store.recompute(cart)
		if cart.Subtotal < coupon.MinPurchase {
			// Rejection leaves the discounts array untouched.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart subtotal is below the minimum purchase for this code"})
			return
		}
		for _, applied := range cart.Discounts {
			if applied.Code == coupon.Code {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code already applied"})
				return
			}
		}

		cart.Discounts = append(cart.Discounts, models.AppliedDiscount{
			Code:  coupon.Code,
			Type:  coupon.Type,
			Value: coupon.Value,
		})
		store.recompute(cart)
		c.JSON(http.StatusOK, cart)
	}
}
