package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Harshchoudhary07/Greenly/internal/api"
	"github.com/Harshchoudhary07/Greenly/pkg/format"
	"github.com/Harshchoudhary07/Greenly/pkg/validate"
)

var (
	productCategory string
	productVendor   string
	productSearch   string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := cliApp.client.ListProducts(cmd.Context(), api.ProductFilter{
			Category: productCategory,
			VendorID: productVendor,
			Search:   productSearch,
		})
		if err != nil {
			return err
		}
		if len(products) == 0 {
			fmt.Println("No products found")
			return nil
		}
		for _, p := range products {
			tag := ""
			if p.FreshnessTag != "" {
				tag = "  [" + p.FreshnessTag + "]"
			}
			fmt.Printf("%-8s %-24s %s / %s  (%s, stock %d)%s\n",
				p.ID, p.Name, format.Currency(p.Price), p.Unit, p.VendorName, p.Stock, tag)
		}
		return nil
	},
}

var productsImageCmd = &cobra.Command{
	Use:   "image <product-id> <path>",
	Short: "Upload a product image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[1]
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		contentType := contentTypeForExt(filepath.Ext(path))
		if err := validate.Image(contentType, info.Size(), cliApp.cfg.AllowedImageTypes, cliApp.cfg.ImageMaxSize); err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer file.Close()

		product, err := cliApp.client.UploadProductImage(cmd.Context(), args[0], filepath.Base(path), file)
		if err != nil {
			return err
		}
		fmt.Printf("Image uploaded for %s\n", product.Name)
		return nil
	},
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

func init() {
	productsListCmd.Flags().StringVar(&productCategory, "category", "", "filter by category")
	productsListCmd.Flags().StringVar(&productVendor, "vendor", "", "filter by vendor id")
	productsListCmd.Flags().StringVar(&productSearch, "search", "", "search by name")
	productsCmd.AddCommand(productsListCmd, productsImageCmd)
}
