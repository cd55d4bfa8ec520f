package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "astronaut-etl",
		Short: "Enrich the astronauts currently in space and derive crew metrics",
		Long: `astronaut-etl fetches the people currently in space, joins them against a
spacecraft reference catalog, simulates mission metrics per astronaut, and
stages one weather correlation row per run.

Configuration is read from the environment; a .env file in the working
directory is loaded first when present.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			_ = godotenv.Load()
		},
	}

	root.AddCommand(newServeCmd(), newRunCmd(), newCatalogCmd())
	return root
}
