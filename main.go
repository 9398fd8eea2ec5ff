package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suggestbox/suggestbox/cmd"
	"github.com/suggestbox/suggestbox/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "suggestbox",
	Short: "Suggestbox - anonymous suggestion boxes over REST and GraphQL",
	Long: `Suggestbox serves projects that collect anonymous suggestions.

Configuration is read from config.yaml and SUGGESTBOX_* environment variables.

Get started by running: suggestbox serve
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cmd.ServeCmd)
	rootCmd.AddCommand(cmd.MigrateCmd)
	rootCmd.AddCommand(cmd.SweepCmd)
	rootCmd.AddCommand(cmd.EventsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("suggestbox version %s (%s)\n", version.Version, version.Commit)
	},
}
