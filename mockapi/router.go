package mockapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the mock backend's routes. The route shapes match the
// production API exactly so the typed client cannot tell them apart.
func NewRouter(store *Store, jwtSecret string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(rateLimitGate(store))

	authed := r.Group("/")
	authed.Use(validateToken(jwtSecret))
	{
		cartGroup := authed.Group("/cart")
		{
			cartGroup.POST("/add", addCartItem(store))                          // POST /cart/add
			cartGroup.GET("/active", getActiveCart(store))                      // GET /cart/active
			cartGroup.PUT("/:cartId", updateCartStatus(store))                  // PUT /cart/:cartId
			cartGroup.PUT("/:cartId/remove/:productId", removeCartItem(store))  // PUT /cart/:cartId/remove/:productId
			cartGroup.POST("/:cartId/discounts", applyDiscount(store))          // POST /cart/:cartId/discounts
		}

		orderGroup := authed.Group("/orders")
		{
			orderGroup.POST("", createOrder(store))             // POST /orders
			orderGroup.GET("/:id", getOrder(store))             // GET /orders/:id
			orderGroup.GET("/user/:userId", listUserOrders(store)) // GET /orders/user/:userId
		}

		authed.POST("/payments/submit-crypto-hash-by-order", submitCryptoHash(store))

		authed.GET("/products/:id", getProduct(store))
		authed.GET("/products/:id/download", downloadURL(store))

		blackboxGroup := authed.Group("/blackbox")
		{
			blackboxGroup.GET("/questions", listQuestions(store))
			blackboxGroup.POST("/answer", submitAnswer(store))
		}
	}

	return r
}
