package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wilkerlucio/helix/lib/generator"
)

var (
	cfgFile string
	cfg     *generator.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "helixgen",
	Short: "helixgen - compile-time optimizer for helix element construction",
	Long: `helixgen rewrites helix component source files (build tag helixdsl)
into *_helix.go files. Element construction calls whose property shape can be
proven statically become direct CreateElement calls; the rest stay on the
dynamic path and are reported as missed optimizations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = generator.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./helix.yaml)")
}
