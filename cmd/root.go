package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/SafeHer/internal/app"
	"github.com/Rorical/SafeHer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "safeher",
	Short: "Personal safety SOS in your terminal",
	Long: `SafeHer puts an SOS button in your terminal. Press space three times quickly
to call emergency services, start sharing your location and alert your
emergency contacts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Default behavior: run the SOS dashboard
		application, err := app.NewApplication(cfg)
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(sosCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(configCmd)
}
