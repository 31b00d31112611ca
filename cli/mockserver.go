package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/dugodofficials-cpu/customer-app-sub000/config"
	"github.com/dugodofficials-cpu/customer-app-sub000/mockapi"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run the in-memory mock backend",
	Long: `Run the in-memory mock backend with a small seeded catalog, a few
discount codes, and the BlackBox questions. Useful for local development
and for exercising the client without the production API.`,
	RunE: runMockServer,
}

func init() {
	rootCmd.AddCommand(mockServerCmd)
}

func runMockServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := mockapi.NewStore()
	seedStore(store)

	token, err := mockapi.IssueToken(cfg.JWTSecret, "dev-user", "dev@example.com", 24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to issue dev token: %w", err)
	}

	log.Println("✅ Mock backend starting on", cfg.MockListenAddr)
	log.Println("🔑 Dev session token:", token)

	r := mockapi.NewRouter(store, cfg.JWTSecret)
	if err := r.Run(cfg.MockListenAddr); err != nil {
		return fmt.Errorf("mock backend failed: %w", err)
	}
	return nil
}

func seedStore(store *mockapi.Store) {
	store.SeedProduct(models.Product{
		ID: "album-midnight", Name: "Midnight Frequencies", Artist: "Noir Circuit",
		Price: 500, IsDigital: true,
	})
	store.SeedProduct(models.Product{
		ID: "single-static", Name: "Static Bloom", Artist: "Noir Circuit",
		Price: 120, IsDigital: true,
	})
	store.SeedProduct(models.Product{
		ID: "vinyl-midnight", Name: "Midnight Frequencies (Vinyl)", Artist: "Noir Circuit",
		Price: 3500, IsDigital: false, Stock: 40,
	})
	store.SeedProduct(models.Product{
		ID: "tee-blackbox", Name: "BlackBox Tee", Artist: "",
		Price: 1500, IsDigital: false, Stock: 200,
	})

	store.SeedCoupon(mockapi.Coupon{
		Code: "LAUNCH10", Type: models.DiscountPercentage, Value: 10, MinPurchase: 1000,
	})
	store.SeedCoupon(mockapi.Coupon{
		Code: "FREESHIP", Type: models.DiscountFreeShip, MinPurchase: 2000,
	})

	store.SeedQuestion("q1", "What hides in the silence between tracks?", "the signal", "secret-track-url-1")
	store.SeedQuestion("q2", "Count the pulses in the opening bar.", "thirteen", "secret-track-url-2")
}
