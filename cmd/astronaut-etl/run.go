package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/astronaut-etl/internal/adapter/console"
	"github.com/couchcryptid/astronaut-etl/internal/config"
	"github.com/couchcryptid/astronaut-etl/internal/observability"
	"github.com/couchcryptid/astronaut-etl/internal/pipeline"
)

func newRunCmd() *cobra.Command {
	var (
		seed        uint64
		missionDays int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a single pipeline run and print the report",
		Long: `Execute a single acquire-transform-load run and print the report as tables
(or JSON with --json). The report is also published to Kafka when
KAFKA_ENABLED is true.

Examples:
  astronaut-etl run --seed 42
  astronaut-etl run --mission-days 30 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.SimulationSeed = seed
			}
			if cmd.Flags().Changed("mission-days") {
				if missionDays <= 0 {
					return fmt.Errorf("invalid --mission-days %d: must be positive", missionDays)
				}
				cfg.MissionDays = missionDays
			}

			logger := observability.NewLoggerTo(cmd.ErrOrStderr(), cfg)
			metrics := observability.NewMetricsWith(prometheus.NewRegistry())

			var loaders []pipeline.ReportLoader
			if !asJSON {
				loaders = append(loaders, console.NewRenderer(cmd.OutOrStdout()))
			}
			a := newApp(cfg, logger, metrics, loaders...)
			defer a.close()

			report, err := a.pipeline.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "simulation seed (overrides SIMULATION_SEED; 0 derives one from the clock)")
	cmd.Flags().IntVar(&missionDays, "mission-days", 0, "mission length in days (overrides MISSION_DAYS)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON instead of tables")
	return cmd
}
