package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/norvik/valbin/cmd/internal/cliio"
	"github.com/norvik/valbin/pkg/codec"
	"github.com/norvik/valbin/pkg/corpus"
	"github.com/norvik/valbin/pkg/logging"
	"github.com/norvik/valbin/pkg/value"
)

var (
	runIterations int
	runMetricsOut string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the encode/decode hot paths over a corpus",
	Long: `Load every entry from the corpus database and run the encoder and
decoder over all of them for the configured number of iterations. This is
the loop to point callgrind or perf at.

Per-operation metrics are written in Prometheus text exposition format to
--metrics-out (default stdout).

Example:
  valbench run --iterations 100 --metrics-out metrics.prom`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliio.ResolveConfig(configPath)
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.Logging.Level)
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := corpus.OpenStore(corpusPath)
		if err != nil {
			return err
		}
		defer store.Close()

		dec := codec.NewDecoder(cfg.CodecConfig())
		enc := codec.NewEncoder(cfg.CodecConfig())

		// Materialize the corpus up front so the measured loop touches
		// only codec code, not storage.
		var values []value.Value
		var encodings [][]byte
		err = store.ForEach(func(id ksuid.KSUID, encoded []byte) error {
			v, err := dec.Decode(encoded)
			if err != nil {
				return fmt.Errorf("corpus entry %s: %w", id, err)
			}
			values = append(values, v)
			encodings = append(encodings, encoded)
			return nil
		})
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return fmt.Errorf("corpus at %s is empty, run `valbench gen` first", corpusPath)
		}

		metrics := NewMetrics()
		start := time.Now()

		var buf []byte
		for i := 0; i < runIterations; i++ {
			for j := range values {
				t0 := time.Now()
				buf = enc.Append(buf[:0], values[j])
				metrics.ObserveEncode(time.Since(t0), len(buf))
			}
			for j := range encodings {
				t0 := time.Now()
				_, err := dec.Decode(encodings[j])
				metrics.ObserveDecode(time.Since(t0), len(encodings[j]), err)
				if err != nil {
					return fmt.Errorf("decode during run: %w", err)
				}
			}
		}

		logger.Info("run complete",
			zap.Int("entries", len(values)),
			zap.Int("iterations", runIterations),
			zap.Duration("elapsed", time.Since(start)))

		return writeMetrics(metrics, runMetricsOut)
	},
}

func writeMetrics(metrics *Metrics, path string) error {
	if path == "" || path == "-" {
		return metrics.WriteTo(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := metrics.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runIterations, "iterations", 100, "Number of passes over the corpus")
	runCmd.Flags().StringVar(&runMetricsOut, "metrics-out", "-", "Metrics output file, or - for stdout")
}
