package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshchoudhary07/Greenly/internal/api"
	"github.com/Harshchoudhary07/Greenly/pkg/format"
)

var (
	pickupCategory string
	pickupWeight   float64
	pickupAddress  string
)

var pickupsCmd = &cobra.Command{
	Use:   "pickups",
	Short: "Manage scrap pickup requests",
}

var pickupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pickup requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		pickups, err := cliApp.client.ListPickups(cmd.Context())
		if err != nil {
			return err
		}
		if len(pickups) == 0 {
			fmt.Println("No pickup requests")
			return nil
		}
		for _, p := range pickups {
			fmt.Printf("%-8s %-12s %.1fkg  %-10s %s\n",
				p.ID, p.Category, p.EstimatedWeight, p.Status, format.Date(p.CreatedAt))
		}
		return nil
	},
}

var pickupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Request a scrap pickup at your location",
	RunE: func(cmd *cobra.Command, args []string) error {
		coord, err := resolveCoordinate(cmd)
		if err != nil {
			return err
		}
		pickup, err := cliApp.client.CreatePickup(cmd.Context(), api.CreatePickupRequest{
			Category:        pickupCategory,
			EstimatedWeight: pickupWeight,
			PickupAddress:   pickupAddress,
			PickupLatitude:  coord.Lat,
			PickupLongitude: coord.Lng,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Pickup #%s requested (%s, ~%.1fkg)\n", pickup.ID, pickup.Category, pickup.EstimatedWeight)
		return nil
	},
}

func init() {
	pickupsCreateCmd.Flags().StringVar(&pickupCategory, "category", "", "scrap category (plastic, paper, metal, glass, electronics, other)")
	pickupsCreateCmd.Flags().Float64Var(&pickupWeight, "weight", 0, "estimated weight in kg")
	pickupsCreateCmd.Flags().StringVar(&pickupAddress, "address", "", "pickup address")
	pickupsCreateCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "latitude")
	pickupsCreateCmd.Flags().Float64Var(&nearbyLng, "lng", 0, "longitude")
	_ = pickupsCreateCmd.MarkFlagRequired("category")
	_ = pickupsCreateCmd.MarkFlagRequired("weight")
	_ = pickupsCreateCmd.MarkFlagRequired("address")

	pickupsCmd.AddCommand(pickupsListCmd, pickupsCreateCmd)
}
