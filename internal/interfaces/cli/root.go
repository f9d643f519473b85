// Package cli implements the command-line interface: a cobra root command
// with convert, residues, and serve subcommands.  Configuration is resolved
// once in the root's PersistentPreRunE and shared by all subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peptilab/peptigraph/internal/application/conversion"
	"github.com/peptilab/peptigraph/internal/config"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/prometheus"
)

// app carries the resolved dependencies shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  logging.Logger
	metrics *prometheus.Metrics
	svc     *conversion.Service

	// flags
	configPath string
	logLevel   string
	output     string
}

// NewRootCmd builds the peptigraph root command.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "peptigraph",
		Short: "Peptide sequence to molecular graph and SMILES converter",
		Long: `peptigraph assembles peptide sequences into molecular graphs and
renders them as SMILES: residue catalog, backbone assembly, cross-links,
head-to-tail cyclization, and aromatic ring kekulization.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug|info|warn|error)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format (text|json)")

	root.AddCommand(
		newConvertCmd(a),
		newResiduesCmd(a),
		newServeCmd(a),
	)
	return root
}

// initialize resolves config and constructs the shared dependencies.
func (a *app) initialize() error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("cli: build logger: %w", err)
	}
	logging.SetDefault(logger)

	a.cfg = cfg
	a.logger = logger
	a.metrics = prometheus.New()
	a.svc = conversion.New(cfg.Convert, logger, a.metrics)
	return nil
}
