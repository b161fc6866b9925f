package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wilkerlucio/helix/lib/generator"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [packages]",
	Short: "Remove generated *_helix.go files",
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}
		gen := generator.New(generator.Options{
			Logger: logger,
			Config: cfg,
		})
		return gen.Clean(patterns...)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
