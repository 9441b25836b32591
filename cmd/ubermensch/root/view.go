package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aebalz/ubermensch-tracker/internal/app"
	"github.com/aebalz/ubermensch-tracker/internal/assistant"
	"github.com/aebalz/ubermensch-tracker/internal/table"
	"github.com/aebalz/ubermensch-tracker/internal/tui"
	"github.com/aebalz/ubermensch-tracker/internal/ui"
)

func newTableCmd(opener Opener) *cobra.Command {
	var (
		sortKey string
		clicks  int
	)
	cmd := &cobra.Command{
		Use:   "table <collection>",
		Short: "Print a collection as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			if sortKey != "" && clicks == 0 {
				clicks = 1
			}
			return withApp(cmd, opener, func(a *app.App) error {
				tr, err := a.Services.Tabular(kind)
				if err != nil {
					return err
				}
				v, err := tr.View(cmd.Context(), sortKey, clicks)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), table.Terminal(v, -1))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", "", "column key to sort by")
	cmd.Flags().IntVar(&clicks, "clicks", 0, "header clicks to replay (1 ascending, 2 descending, 3 unsorted)")
	return cmd
}

func newRolloverCmd(opener Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "rollover",
		Short: "Run the day rollover and deliver due reminders once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opener, func(a *app.App) error {
				wd := a.Watchdog()
				rolled, err := wd.CheckRollover(cmd.Context())
				if err != nil {
					return err
				}
				sent, err := wd.DeliverReminders(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.LabelValue("Rolled over", rolled))
				fmt.Fprintln(out, ui.LabelValue("Reminders sent", sent))
				return nil
			})
		},
	}
}

func newAskCmd(opener Opener) *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the assistant about your data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := assistant.ParseRole(role)
			if err != nil {
				return err
			}
			return withApp(cmd, opener, func(a *app.App) error {
				reply, err := a.Assistant.Ask(cmd.Context(), "", r, strings.Join(args, " "))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.H2.Render(string(r)))
				fmt.Fprintln(out, reply.Message.Content)
				for _, d := range reply.Directives {
					state := "proposed"
					if d.Applied {
						state = "applied"
					}
					if d.Error != "" {
						state = "rejected: " + d.Error
					}
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s %s %s", d.Op, d.Kind, state)))
				}
				if reply.DirectiveError != "" {
					fmt.Fprintln(out, ui.Warn.Render(reply.DirectiveError))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", string(assistant.RoleHealthAdvisor), "Health Advisor, Fitness Trainer or Nutrition Assistant")
	return cmd
}

func newTUICmd(opener Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the trackers in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opener, func(a *app.App) error {
				return tui.Run(cmd.Context(), a.Services, cmd.OutOrStdout())
			})
		},
	}
}
