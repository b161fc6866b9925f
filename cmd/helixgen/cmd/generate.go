package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wilkerlucio/helix/lib/generator"
)

var dryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate [packages]",
	Short: "Generate *_helix.go files for component packages",
	Long: `Generate parses the given package patterns (defaulting to ./...),
rewrites every helixdsl file, and writes the generated siblings. Call sites
the classifier cannot prove are reported according to the configured
diagnostics level and left on the dynamic path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}
		gen := generator.New(generator.Options{
			DryRun: dryRun,
			Logger: logger,
			Config: cfg,
		})
		return gen.Generate(patterns...)
	},
}

func init() {
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be generated without writing files")
	rootCmd.AddCommand(generateCmd)
}
