package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Harshchoudhary07/Greenly/pkg/format"
)

var cartAddQty int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the local shopping cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product, err := cliApp.client.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := cliApp.cart.Add(*product, cartAddQty); err != nil {
			return err
		}
		fmt.Printf("%s added to cart!\n", product.Name)
		return nil
	},
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart grouped by vendor",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := cliApp.cart.GroupByVendor()
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			fmt.Println("Your cart is empty")
			return nil
		}

		for _, group := range groups {
			fmt.Printf("%s\n", group.VendorName)
			for _, item := range group.Items {
				fmt.Printf("  %-24s %s / %s  x%d  %s\n",
					item.Name, format.Currency(item.Price), item.Unit,
					item.Quantity, format.Currency(item.Subtotal()))
			}
			fmt.Printf("  Vendor Total: %s\n", format.Currency(group.Total))
		}

		summary, err := cliApp.cart.Summary()
		if err != nil {
			return err
		}
		fmt.Printf("Items (%d): %s\n", summary.ItemCount, format.Currency(summary.Total))
		fmt.Printf("Delivery Fee: %s\n", format.Currency(summary.DeliveryFee))
		fmt.Printf("Total: %s\n", format.Currency(summary.GrandTotal))
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.cart.Remove(args[0]); err != nil {
			return err
		}
		fmt.Println("Item removed from cart")
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set a cart line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number: %w", err)
		}
		return cliApp.cart.SetQuantity(args[0], qty)
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.cart.Clear(); err != nil {
			return err
		}
		fmt.Println("Cart cleared")
		return nil
	},
}

func init() {
	cartAddCmd.Flags().IntVarP(&cartAddQty, "qty", "q", 1, "quantity to add")
	cartCmd.AddCommand(cartAddCmd, cartListCmd, cartRemoveCmd, cartSetCmd, cartClearCmd)
}
