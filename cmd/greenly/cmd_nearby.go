package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/geo"
)

var (
	nearbyLat    float64
	nearbyLng    float64
	nearbyRadius float64
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Browse vendors",
}

var vendorsNearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "List vendors near you",
	RunE: func(cmd *cobra.Command, args []string) error {
		coord, err := resolveCoordinate(cmd)
		if err != nil {
			return err
		}
		vendors, err := cliApp.location.NearbyVendors(cmd.Context(), coord.Lat, coord.Lng, nearbyRadius)
		if err != nil {
			return err
		}
		if len(vendors) == 0 {
			fmt.Println("No vendors nearby")
			return nil
		}
		for _, v := range vendors {
			distance := geo.DistanceKm(coord.Lat, coord.Lng, v.Latitude, v.Longitude)
			fmt.Printf("%-28s %s away  %s, rating %.1f\n",
				v.ShopName, geo.FormatDistance(distance), v.Address, v.Rating)
		}
		return nil
	},
}

var collectorsCmd = &cobra.Command{
	Use:   "collectors",
	Short: "Browse scrap collectors",
}

var collectorsNearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "List scrap collectors near you",
	RunE: func(cmd *cobra.Command, args []string) error {
		coord, err := resolveCoordinate(cmd)
		if err != nil {
			return err
		}
		collectors, err := cliApp.location.NearbyCollectors(cmd.Context(), coord.Lat, coord.Lng, nearbyRadius)
		if err != nil {
			return err
		}
		if len(collectors) == 0 {
			fmt.Println("No collectors nearby")
			return nil
		}
		for _, c := range collectors {
			distance := geo.DistanceKm(coord.Lat, coord.Lng, c.Latitude, c.Longitude)
			fmt.Printf("%-28s %s away  %s\n", c.CompanyName, geo.FormatDistance(distance), c.Phone)
			for _, cat := range c.Categories {
				fmt.Printf("    %s at ₹%.2f/kg\n", cat.Type, cat.PricePerKg)
			}
		}
		return nil
	},
}

// resolveCoordinate prefers explicit flags, then a fresh reading, then
// the last saved position.
func resolveCoordinate(cmd *cobra.Command) (domain.Coordinate, error) {
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
		return domain.Coordinate{Lat: nearbyLat, Lng: nearbyLng}, nil
	}

	coord, err := cliApp.location.GetCurrentLocation(cmd.Context())
	if err == nil {
		return coord, nil
	}

	if saved, ok := cliApp.location.SavedLocation(); ok {
		return saved, nil
	}
	return domain.Coordinate{}, fmt.Errorf("no location available (%w); pass --lat and --lng", err)
}

func init() {
	for _, cmd := range []*cobra.Command{vendorsNearbyCmd, collectorsNearbyCmd} {
		cmd.Flags().Float64Var(&nearbyLat, "lat", 0, "latitude")
		cmd.Flags().Float64Var(&nearbyLng, "lng", 0, "longitude")
		cmd.Flags().Float64Var(&nearbyRadius, "radius", 0, "search radius in km (default from config)")
	}
	vendorsCmd.AddCommand(vendorsNearbyCmd)
	collectorsCmd.AddCommand(collectorsNearbyCmd)
}
