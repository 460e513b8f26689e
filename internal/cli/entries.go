package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Blacklist entry management commands",
	}

	cmd.AddCommand(newEntriesAddCmd())
	cmd.AddCommand(newEntriesListCmd())
	cmd.AddCommand(newEntriesRemoveCmd())

	return cmd
}

func newEntriesAddCmd() *cobra.Command {
	var (
		licenseKey   string
		playerID     string
		playerName   string
		usernameHash string
		hardwareHash string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a blacklist entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			setOptional(req, "license_key", licenseKey)
			setOptional(req, "player_id", playerID)
			setOptional(req, "player_name", playerName)
			setOptional(req, "system_username_hash", usernameHash)
			setOptional(req, "system_hardware_hash", hardwareHash)

			if len(req) == 0 {
				return fmt.Errorf("at least one identity field is required")
			}

			var result Entry
			if err := client.Post("/api/v1/entries", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&licenseKey, "license-key", "", "License key to ban")
	cmd.Flags().StringVar(&playerID, "player-id", "", "Player account ID to ban")
	cmd.Flags().StringVar(&playerName, "player-name", "", "Player display name to ban")
	cmd.Flags().StringVar(&usernameHash, "username-hash", "", "System username hash to ban")
	cmd.Flags().StringVar(&hardwareHash, "hardware-hash", "", "System hardware hash to ban")

	return cmd
}

func newEntriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all blacklist entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result EntryList

			if err := client.Get("/api/v1/entries", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEntriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a blacklist entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/entries/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Entry removed")
			return nil
		},
	}
}
