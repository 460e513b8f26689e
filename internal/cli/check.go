package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		licenseKey   string
		playerID     string
		playerName   string
		usernameHash string
		hardwareHash string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check an identity against the blacklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerID == "" || playerName == "" {
				return fmt.Errorf("--player-id and --player-name are required")
			}

			req := map[string]any{
				"player_id":   playerID,
				"player_name": playerName,
			}
			setOptional(req, "license_key", licenseKey)
			setOptional(req, "system_username_hash", usernameHash)
			setOptional(req, "system_hardware_hash", hardwareHash)

			var result CheckResult
			if err := client.Post("/api/v1/check", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player-id", "", "Player account ID (required)")
	cmd.Flags().StringVar(&playerName, "player-name", "", "Player display name (required)")
	cmd.Flags().StringVar(&licenseKey, "license-key", "", "License key")
	cmd.Flags().StringVar(&usernameHash, "username-hash", "", "System username hash")
	cmd.Flags().StringVar(&hardwareHash, "hardware-hash", "", "System hardware hash")
	_ = cmd.MarkFlagRequired("player-id")
	_ = cmd.MarkFlagRequired("player-name")

	return cmd
}

// setOptional adds a key only when the flag was given, so absent fields
// serialize as missing rather than empty strings
func setOptional(req map[string]any, key, val string) {
	if val != "" {
		req[key] = val
	}
}
