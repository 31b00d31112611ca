package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cryptoHashRequest struct {
	OrderID  string `json:"orderId" binding:"required"`
	TxID     string `json:"txid" binding:"required"`
	Metadata struct {
		Network string `json:"network"`
		Chain   string `json:"chain"`
		Coin    string `json:"coin"`
	} `json:"metadata"`
}

// POST /payments/submit-crypto-hash-by-order
//
// Acknowledgement only: the real backend verifies the hash on-chain out of
// band, so the mock just records that a hash arrived.
func submitCryptoHash(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cryptoHashRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.mu.Lock()
		defer store.mu.Unlock()

		order, exists := store.orders[req.OrderID]
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		order.PaymentMethod = "crypto"
		order.PaymentStatus = "crypto_hash_submitted"

		c.JSON(http.StatusOK, gin.H{"message": "Transaction submitted for verification"})
	}
}
