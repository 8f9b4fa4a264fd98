package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tejusbharadwaj/bemcost/internal/pipeline"
)

var payloadInput inputFlags

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Print the calculation request cost would send",
	Long:  `Builds the calculation request for the given inputs and prints it as JSON without calling the service.`,
	Args:  cobra.NoArgs,
	RunE:  runPayload,
}

func init() {
	payloadInput.register(payloadCmd)
	rootCmd.AddCommand(payloadCmd)
}

func runPayload(cmd *cobra.Command, args []string) error {
	in, err := payloadInput.input(cmd)
	if err != nil {
		return err
	}

	req, err := pipeline.Request(in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(req)
}
