package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/SafeHer/internal/alert"
	"github.com/Rorical/SafeHer/internal/config"
	"github.com/Rorical/SafeHer/internal/geo"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print your current location and map link",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		snap := geo.NewProvider(cfg.LocationSource()).Refresh(context.Background())
		if snap.Error != "" {
			log.Fatalf("Location unavailable: %s", snap.Error)
		}

		composer := alert.NewComposer(cfg.Alert.MessageTemplate, cfg.Alert.MapURLTemplate)
		fmt.Printf("Location: %s, %s\n", snap.Location.LatString(), snap.Location.LngString())
		fmt.Printf("Map: %s\n", composer.MapURL(*snap.Location))
	},
}
