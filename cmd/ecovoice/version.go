package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ecovoice-backend/internal/app"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:  %s\n", app.Version)
			fmt.Fprintf(out, "Commit:   %s\n", app.Commit)
			fmt.Fprintf(out, "Built:    %s\n", app.BuildTime)
			return nil
		},
	}
}
