package cli

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/config"
)

var (
	ordersPage    int
	ordersLimit   int
	ordersType    string
	ordersOutFile string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Browse and export order history",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current user's orders",
	RunE:  runOrdersList,
}

var ordersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current user's orders to an Excel file",
	RunE:  runOrdersExport,
}

func init() {
	for _, cmd := range []*cobra.Command{ordersListCmd, ordersExportCmd} {
		cmd.Flags().IntVar(&ordersPage, "page", 1, "page number")
		cmd.Flags().IntVar(&ordersLimit, "limit", 20, "page size")
		cmd.Flags().StringVar(&ordersType, "type", "", "filter: digital or physical")
	}
	ordersExportCmd.Flags().StringVar(&ordersOutFile, "out", "orders.xlsx", "output file")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersExportCmd)
	rootCmd.AddCommand(ordersCmd)
}

func fetchOrders(cmd *cobra.Command) (*api.OrderPage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	client, sess, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	userID, err := sess.UserID()
	if err != nil {
		return nil, fmt.Errorf("orders require a session token (STOREFRONT_SESSION_TOKEN): %w", err)
	}

	return client.ListUserOrders(cmd.Context(), userID, api.OrderListQuery{
		Page:  ordersPage,
		Limit: ordersLimit,
		Type:  ordersType,
	})
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	page, err := fetchOrders(cmd)
	if err != nil {
		return err
	}

	log.Printf("📦 %d order(s), page %d/%d", page.Total, page.Page, (page.Total+page.Limit-1)/max(page.Limit, 1))
	for _, order := range page.Orders {
		fmt.Printf("%-10s  %-10s  %-22s  %8.2f %s\n",
			order.OrderNumber, order.Status, order.CreatedAt.Format("2006-01-02 15:04:05"),
			order.Total, order.Currency)
	}
	return nil
}

func runOrdersExport(cmd *cobra.Command, args []string) error {
	page, err := fetchOrders(cmd)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	// Header row
	headers := []string{
		"OrderNumber", "Status", "PaymentStatus", "PaymentMethod",
		"Subtotal", "Tax", "ShippingCost", "Discount", "Total", "Currency",
		"Items", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	// Data rows
	for _, order := range page.Orders {
		row := sheet.AddRow()

		row.AddCell().SetValue(order.OrderNumber)
		row.AddCell().SetValue(string(order.Status))
		row.AddCell().SetValue(order.PaymentStatus)
		row.AddCell().SetValue(order.PaymentMethod)
		row.AddCell().SetValue(order.Subtotal)
		row.AddCell().SetValue(order.Tax)
		row.AddCell().SetValue(order.ShippingCost)
		row.AddCell().SetValue(order.Discount)
		row.AddCell().SetValue(order.Total)
		row.AddCell().SetValue(order.Currency)

		var items []string
		for _, item := range order.Items {
			items = append(items, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}
		row.AddCell().SetValue(strings.Join(items, ", "))

		row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	out, err := os.Create(ordersOutFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := file.Write(out); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	log.Printf("✅ Exported %d order(s) to %s", len(page.Orders), ordersOutFile)
	return nil
}
