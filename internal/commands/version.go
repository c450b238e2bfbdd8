// internal/commands/version.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqstat/internal/version"
)

// NewVersionCmd builds the version command.
func NewVersionCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			return err
		},
	}
}
