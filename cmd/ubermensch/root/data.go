package root

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aebalz/ubermensch-tracker/internal/app"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/ui"
)

func newImportCmd(opener Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <collection> <file.csv>",
		Short: "Append the rows of a CSV file to a collection",
		Long:  "Append the rows of a CSV file to a collection. Collections: " + collectionNames() + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			return withApp(cmd, opener, func(a *app.App) error {
				tr, err := a.Services.Tabular(kind)
				if err != nil {
					return err
				}
				n, err := tr.ImportCSV(cmd.Context(), f)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Imported %d %s.", ui.IconOK, n, kind)))
				return nil
			})
		},
	}
}

func newExportCmd(opener Opener) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <collection|all>",
		Short: "Write a collection as CSV, or everything as JSON",
		Long: "Write a collection in its export format: CSV for the trackers, plain text for notes, " +
			"JSON for daily logs and for all.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			err := withApp(cmd, opener, func(a *app.App) error {
				return export(cmd.Context(), a.Services, args[0], &buf)
			})
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			return os.WriteFile(output, buf.Bytes(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func export(ctx context.Context, svc *service.Services, name string, w io.Writer) error {
	if name == "all" {
		snap, err := svc.Snapshot(ctx)
		if err != nil {
			return err
		}
		return writeJSON(w, snap)
	}
	kind, err := parseKind(name)
	if err != nil {
		return err
	}
	switch kind {
	case model.KindNotes:
		return svc.Notes.ExportText(ctx, w)
	case model.KindDailyLogs:
		logs, err := svc.DailyLogs.List(ctx)
		if err != nil {
			return err
		}
		return writeJSON(w, logs)
	}
	tr, err := svc.Tabular(kind)
	if err != nil {
		return err
	}
	return tr.ExportCSV(ctx, w)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newResetCmd(opener Opener) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tracker data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warn.Render("Are you sure you want to reset all data? This cannot be undone. (y/N) "))
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Reset cancelled."))
					return nil
				}
			}
			return withApp(cmd, opener, func(a *app.App) error {
				if err := a.Services.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconOK+" All data has been reset."))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
