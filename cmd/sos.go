package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var sosDryRun bool

var sosCmd = &cobra.Command{
	Use:   "sos",
	Short: "Trigger the emergency response now",
	Long: `Call the emergency number, start sharing your location and send the
distress message to your contacts, without the triple-tap gesture.`,
	Run: func(cmd *cobra.Command, args []string) {
		services := mustBuildServices(sosDryRun)
		defer services.Close()

		snap := services.Safety.RefreshLocation(context.Background())
		if snap.Error != "" {
			fmt.Printf("Location unavailable: %s\n", snap.Error)
		}

		out := services.Safety.Trigger()
		fmt.Printf("Calling %s and sharing your location.\n", out.Number)
		if out.DialErr != nil {
			fmt.Printf("Could not open a dialer: %v\n", out.DialErr)
		}
		if !out.Composed {
			fmt.Println("No message sent: a location and at least one contact are needed.")
			return
		}
		fmt.Printf("Message: %s\n", out.Message)
		if out.NotifyErr != nil {
			fmt.Printf("Failed to notify contacts: %v\n", out.NotifyErr)
		}
		if sosDryRun {
			fmt.Println("(dry run: nothing was dialed or sent)")
		}
	},
}

func init() {
	sosCmd.Flags().BoolVar(&sosDryRun, "dry-run", false, "record the call and message without dialing or sending")
}
