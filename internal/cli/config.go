package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/modu-ai/ngfs/internal/core/project"
	"github.com/modu-ai/ngfs/internal/store"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the stored configuration of a generated project",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
	cmd.Flags().String("root", "", "Directory inside the project (default: current directory)")
	return cmd
}

func runConfig(cmd *cobra.Command, _ []string) error {
	dir := getStringFlag(cmd, "root")
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}

	root, err := project.FindProjectRoot(dir)
	if err != nil {
		return err
	}
	s, err := store.Open(root)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderConfig(s, getBoolFlag(cmd, "no-color")))
	return nil
}

// renderConfig renders every stored key as a table. The flag map is shown
// as its active flags.
func renderConfig(s *store.FileStore, noColor bool) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	header := table.Row{"KEY", "VALUE"}
	if !noColor {
		header = table.Row{text.FgHiCyan.Sprint("KEY"), text.FgHiCyan.Sprint("VALUE")}
	}
	t.AppendHeader(header)
	t.SetCaption("%s", s.Path())

	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		value := store.Format(v)
		if key == store.FiltersKey {
			if m, ok := store.Filters(s); ok {
				value = strings.Join(m.Active(), ", ")
			}
		}
		t.AppendRow(table.Row{key, value})
	}
	return t.Render()
}
