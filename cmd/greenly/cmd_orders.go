package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshchoudhary07/Greenly/internal/api"
	"github.com/Harshchoudhary07/Greenly/pkg/format"
)

var checkoutAddress string

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "View orders and check out the cart",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := cliApp.client.ListOrders(cmd.Context())
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%-8s %-10s %s  %s\n",
				o.ID, o.Status, format.Currency(o.TotalAmount+o.DeliveryFee), format.DateTime(o.CreatedAt))
		}
		return nil
	},
}

var ordersCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place one order per vendor from the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := cliApp.cart.GroupByVendor()
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			return fmt.Errorf("cart is empty")
		}

		coord, err := resolveCoordinate(cmd)
		if err != nil {
			return err
		}

		for _, group := range groups {
			order, err := cliApp.client.CreateOrder(cmd.Context(),
				api.OrderFromGroup(group, checkoutAddress, coord.Lat, coord.Lng))
			if err != nil {
				return fmt.Errorf("order for %s failed: %w", group.VendorName, err)
			}
			fmt.Printf("Order #%s placed with %s (%s)\n",
				order.ID, group.VendorName, format.Currency(group.Total))
		}

		if err := cliApp.cart.Clear(); err != nil {
			return fmt.Errorf("orders placed but clearing cart failed: %w", err)
		}
		return nil
	},
}

func init() {
	ordersCheckoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "delivery address")
	ordersCheckoutCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "latitude")
	ordersCheckoutCmd.Flags().Float64Var(&nearbyLng, "lng", 0, "longitude")
	_ = ordersCheckoutCmd.MarkFlagRequired("address")

	ordersCmd.AddCommand(ordersListCmd, ordersCheckoutCmd)
}
