package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ecovoice-backend/internal/app"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), ctx.configPath())
		},
	}
}
