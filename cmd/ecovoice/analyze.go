package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var userID, text string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a text activity through the full pipeline",
		Long: `Runs one text submission through scoring, records the activity and
credits the user's reputation, exactly as POST /api/analyze does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Config.Database.AutoMigrate {
				if _, err := a.Migrate(cmd.Context()); err != nil {
					return err
				}
			}

			res, err := a.Analysis.Analyze(cmd.Context(), domain.AnalysisRequest{
				UserID:  userID,
				Payload: domain.TextPayload{Text: text},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Eco points: %d\n", res.EcoPoints)
			fmt.Fprintf(out, "Advice:     %s\n", res.Advice)
			fmt.Fprintf(out, "Details:    %s\n", strings.ReplaceAll(res.AnalysisDetails, "  \n", "\n            "))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to credit")
	cmd.Flags().StringVar(&text, "text", "", "Activity description")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
