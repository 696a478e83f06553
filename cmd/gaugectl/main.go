// Command gaugectl evaluates gauge scenarios described in YAML: curvature
// and action densities at sample points, holonomies around loops, Chern
// numbers, plaquette sweeps and content fingerprints.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/internal/config"
	"github.com/katalvlaran/gauge/internal/logging"
	"github.com/katalvlaran/gauge/internal/scenario"
	"github.com/katalvlaran/gauge/transport"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath   string
	scenarioPath string
	verbose      bool

	settings config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gaugectl",
		Short: "Evaluate connections, curvature and holonomy on fibre bundles",
		Long: `gaugectl loads a scenario (base manifold, bundle, connection, sample
points, loops and an optional plaquette lattice) and reports gauge quantities.

Numerical settings come from --config, GAUGE_CONFIG or
$HOME/.config/gauge/config.yaml, overridden by GAUGE_* variables
(GAUGE_STEPS, GAUGE_INTEGRATOR, GAUGE_EPSILON, GAUGE_LOG_LEVEL, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			level := s.Log.Level
			if a.verbose {
				level = "debug"
			}
			logger, err := logging.New(level, s.Log.JSON)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.settings, a.logger = s, logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: $HOME/.config/gauge/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.scenarioPath, "scenario", "s", "", "Scenario YAML file (required)")

	root.AddCommand(
		&cobra.Command{Use: "curvature", Short: "Print F_{μν}, the scalar F² and flatness at each point", RunE: a.runCurvature},
		&cobra.Command{Use: "holonomy", Short: "Print the holonomy and Wilson loop of each loop", RunE: a.runHolonomy},
		&cobra.Command{Use: "chern", Short: "Print Chern densities and character terms at each point", RunE: a.runChern},
		&cobra.Command{Use: "lattice", Short: "Sweep the plaquette lattice and report flux regions", RunE: a.runLattice},
		&cobra.Command{Use: "fingerprint", Short: "Print content fingerprints of the scenario objects", RunE: a.runFingerprint},
	)

	return root
}

// load reads the scenario and builds its connection with the configured options.
func (a *app) load() (*scenario.Scenario, *connection.Connection, error) {
	if a.scenarioPath == "" {
		return nil, nil, fmt.Errorf("--scenario: %w", scenario.ErrMissing)
	}
	s, err := scenario.Load(a.scenarioPath)
	if err != nil {
		return nil, nil, err
	}
	conn, err := s.BuildConnection(a.settings.ConnectionOptions(a.logger)...)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("scenario loaded",
		zap.String("name", s.Name), zap.Stringer("bundle", conn.Bundle()),
		zap.Int("points", len(s.Points)), zap.Int("loops", len(s.Loops)))

	return s, conn, nil
}

func (a *app) transporter(conn *connection.Connection) (*transport.Transporter, error) {
	opts, err := a.settings.TransportOptions(a.logger)
	if err != nil {
		return nil, err
	}

	return transport.New(conn, opts...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
