package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniffi-php/fixturegen/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the fixturegen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "fixturegen version "+version.Version)
		},
	}
}
