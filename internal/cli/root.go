// Package cli provides the cobra command tree of the ngfs generator.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modu-ai/ngfs/pkg/version"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ngfs",
		Short: "AngularJS + Express full-stack project generator",
		Long: `ngfs scaffolds an AngularJS client and an Express server from a handful of
questions: script and markup languages, stylesheets, router, data layers,
authentication, real-time support, build tool and test framework.

Answers are stored in the project so that later runs can reuse them.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("ngfs %s\n", version.GetVersion()))
	root.PersistentFlags().BoolP("verbose", "v", false, "Print every pipeline step and debug logs")
	root.PersistentFlags().Bool("no-color", false, "Disable styled output")

	root.AddCommand(newInitCommand(), newConfigCommand(), newVersionCommand())
	return root
}

// Execute runs the root command. SIGINT and SIGTERM cancel the run context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), cliError.Render("Error: ")+err.Error())
		return err
	}
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// newLogger returns a text logger on w at level, or a discarding logger
// when level is empty.
func newLogger(w io.Writer, level string) *slog.Logger {
	if level == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
