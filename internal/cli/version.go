package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/ngfs/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ngfs %s\n", version.GetFullVersion())
			return err
		},
	}
}
