package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aebalz/ubermensch-tracker/internal/app"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/logger"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/ui"
)

const Version = "1.0.0"

var envFile string

// NewRootCmd builds the command tree. opener is how subcommands reach the application.
func NewRootCmd(opener Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ubermensch",
		Short:         "Ubermensch personal health tracker",
		Long:          "Track supplements, food, recipes, health metrics, workouts, equipment, daily logs and notes from the terminal.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "config.env", "configuration file")

	rootCmd.AddCommand(
		newImportCmd(opener),
		newExportCmd(opener),
		newTableCmd(opener),
		newResetCmd(opener),
		newRolloverCmd(opener),
		newAskCmd(opener),
		newTUICmd(opener),
	)
	return rootCmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd(openApp).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		stop()
		os.Exit(1)
	}
}

// Opener builds the application a command runs against. Commands close it when done.
type Opener func(ctx context.Context, stderr io.Writer) (*app.App, error)

func openApp(ctx context.Context, stderr io.Writer) (*app.App, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}
	log := logger.NewWithWriter(cfg.LogLevel, zerolog.ConsoleWriter{Out: stderr})
	return app.New(ctx, cfg, log)
}

// withApp opens the application, runs fn and closes it.
func withApp(cmd *cobra.Command, opener Opener, fn func(a *app.App) error) error {
	a, err := opener(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// parseKind accepts collection names with dashes as well as underscores.
func parseKind(s string) (model.Kind, error) {
	return model.ParseKind(strings.ReplaceAll(s, "-", "_"))
}

func collectionNames() string {
	names := make([]string, len(model.Kinds))
	for i, k := range model.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
