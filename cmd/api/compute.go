package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/Dan9191/scenario-planner/internal/service"
	"github.com/spf13/cobra"
)

func newComputeCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "compute [scenario.json]",
		Short: "Print the financial outcome of a scenario without calling the summary service",
		Long:  "Reads a scenario as JSON from the given file (stdin when omitted) and prints the computed outcome.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open scenario: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runCompute(in, cmd.OutOrStdout(), pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent the output")
	return cmd
}

func runCompute(r io.Reader, w io.Writer, pretty bool) error {
	var req models.ScenarioRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("failed to decode scenario: %w", err)
	}
	scenario, err := req.Validate()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(service.Compute(scenario))
}
