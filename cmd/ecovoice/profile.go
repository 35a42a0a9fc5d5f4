package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04"

func newProfileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <userId>",
		Short: "Show a user's reputation and recent activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.Profiles.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rep := p.Reputation
			fmt.Fprintln(out, renderTable(
				[]string{"User", "Eco Points", "Level", "Since", "Updated"},
				[][]string{{
					rep.UserID,
					strconv.Itoa(rep.TotalEcoPoints),
					strconv.Itoa(rep.Level),
					rep.CreatedAt.Local().Format(timeLayout),
					rep.UpdatedAt.Local().Format(timeLayout),
				}},
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))

			if len(p.RecentActivities) == 0 {
				fmt.Fprintln(out, "No activities yet.")
				return nil
			}

			rows := make([][]string, 0, len(p.RecentActivities))
			for _, act := range p.RecentActivities {
				rows = append(rows, []string{
					act.Timestamp.Local().Format(timeLayout),
					string(act.Modality),
					strconv.Itoa(act.EcoPoints),
					truncate(act.Content, 40),
					truncate(act.Advice, 60),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Type", "Points", "Content", "Advice"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
