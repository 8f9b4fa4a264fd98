package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the estimation service health endpoint",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	client, err := a.newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	health, err := client.Health(cmd.Context())
	if err != nil {
		a.logger.WithError(err).Error("Health check failed")
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(health)
}
