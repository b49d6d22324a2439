package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/SafeHer/internal/app"
	"github.com/Rorical/SafeHer/internal/config"
	"github.com/Rorical/SafeHer/internal/contacts"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage emergency contacts",
	Long:  `Manage the people who receive your location when the SOS is triggered.`,
}

var listContactsCmd = &cobra.Command{
	Use:   "list",
	Short: "List emergency contacts",
	Run: func(cmd *cobra.Command, args []string) {
		services := mustBuildServices(false)
		defer services.Close()

		list := services.Contacts.List()
		if len(list) == 0 {
			fmt.Println("No emergency contacts. Add one with: safeher contacts add")
			return
		}
		fmt.Println("Emergency Contacts:")
		for _, c := range list {
			fmt.Printf("  %s  %s  (%s)\n", c.Name, c.Phone, c.ID)
		}
	},
}

var addContactCmd = &cobra.Command{
	Use:   "add [name] [phone]",
	Short: "Add an emergency contact",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var name, phone string
		var err error

		if len(args) > 0 {
			name = args[0]
		} else {
			prompt := promptui.Prompt{
				Label:    "Name",
				Validate: notBlank("name"),
			}
			name, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if len(args) > 1 {
			phone = args[1]
		} else {
			prompt := promptui.Prompt{
				Label:    "Phone",
				Validate: notBlank("phone number"),
			}
			phone, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		services := mustBuildServices(false)
		defer services.Close()

		c, err := services.Contacts.Add(context.Background(), name, phone)
		if err != nil {
			log.Fatalf("Failed to add contact: %v", err)
		}
		fmt.Printf("Added %s (%s)\n", c.Name, c.ID)
	},
}

var removeContactCmd = &cobra.Command{
	Use:   "remove [contact-id]",
	Short: "Remove an emergency contact",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services := mustBuildServices(false)
		defer services.Close()

		var id string
		if len(args) > 0 {
			id = args[0]
		} else {
			list := services.Contacts.List()
			if len(list) == 0 {
				fmt.Println("No emergency contacts to remove.")
				return
			}
			sel := promptui.Select{
				Label: "Remove contact",
				Items: contactLabels(list),
			}
			idx, _, err := sel.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
			id = list[idx].ID
		}

		if err := services.Contacts.Remove(context.Background(), id); err != nil {
			log.Fatalf("Failed to remove contact: %v", err)
		}
		fmt.Printf("Removed %s\n", id)
	},
}

func notBlank(field string) promptui.ValidateFunc {
	return func(input string) error {
		if len(input) == 0 {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func contactLabels(list []contacts.Contact) []string {
	labels := make([]string, len(list))
	for i, c := range list {
		labels[i] = fmt.Sprintf("%s  %s", c.Name, c.Phone)
	}
	return labels
}

func mustBuildServices(dryRun bool) *app.Services {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	services, err := app.BuildServices(context.Background(), cfg, nil, app.BuildOptions{DryRun: dryRun})
	if err != nil {
		log.Fatalf("Failed to start services: %v", err)
	}
	return services
}

func init() {
	contactsCmd.AddCommand(listContactsCmd)
	contactsCmd.AddCommand(addContactCmd)
	contactsCmd.AddCommand(removeContactCmd)
}
