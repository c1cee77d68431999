package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	corpusPath string
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "valbench",
	Short: "Benchmark driver for the valbin encode/decode hot paths",
	Long: `valbench builds deterministic input corpora and drives the encoder
and decoder over them so external profilers (callgrind, perf) see stable,
repeatable hot loops.

A corpus is generated once from a fixed seed and persisted; a run replays
it for a configured number of iterations and reports Prometheus metrics in
text exposition format.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&corpusPath, "corpus", "c", "./corpus", "Corpus database directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/valbin/config.yaml)")
}
