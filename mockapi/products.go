package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /products/:id
func getProduct(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.mu.Lock()
		defer store.mu.Unlock()

		product, exists := store.products[c.Param("id")]
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /products/:id/download
//
// Issues a short-lived signed playback/download URL for a digital product.
// Each call signs a fresh URL; the client's media cache decides how long to
// keep it.
func downloadURL(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.mu.Lock()
		defer store.mu.Unlock()

		product, exists := store.products[c.Param("id")]
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if !product.IsDigital {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product has no downloadable media"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"url":       "https://media.example.com/" + product.ID + "/stream?sig=" + uuid.NewString(),
			"expiresIn": 300,
		})
	}
}
