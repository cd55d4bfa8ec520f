package main

import (
	"github.com/spf13/cobra"

	"github.com/couchcryptid/astronaut-etl/internal/adapter/console"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the spacecraft reference catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return console.RenderCatalog(cmd.OutOrStdout())
		},
	}
}
