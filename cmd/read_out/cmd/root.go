package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/norvik/valbin/cmd/internal/cliio"
	"github.com/norvik/valbin/pkg/codec"
	"github.com/norvik/valbin/pkg/interchange"
	"github.com/norvik/valbin/pkg/logging"
	"github.com/norvik/valbin/pkg/stream"
	"github.com/norvik/valbin/pkg/value"
)

var (
	inPath     string
	outPath    string
	format     string
	streamMode bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "read_out",
	Short: "Decode valbin binary data back into a value document",
	Long: `read_out reads valbin binary data from a file or standard input,
decodes it and emits the value as a document (JSON by default) to a file
or standard output. Malformed input is reported with its specific error
kind (truncated, invalid length, unknown kind, nesting too deep) and a
non-zero exit code; no partial output is ever written.

With --stream, input is a framed stream of encodings and output is one
JSON document per line.`,
	SilenceUsage: true,
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

		dec := codec.NewDecoder(cfg.CodecConfig())

		input, err := cliio.ReadInput(inPath)
		if err != nil {
			return err
		}

		var output []byte
		if streamMode {
			output, err = decodeStream(dec, input, cfg.Limits.MaxPayloadBytes, logger)
		} else {
			output, err = decodeOne(dec, input)
		}
		if err != nil {
			return err
		}

		return cliio.WriteOutput(outPath, output)
	},
}

func decodeOne(dec *codec.Decoder, input []byte) ([]byte, error) {
	v, err := dec.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return renderDocument(v)
}

// decodeStream turns a framed stream of encodings into newline-delimited
// JSON documents. Built fully in memory so a corrupt tail frame leaves the
// output sink untouched. The configured payload limit bounds frame sizes
// too, so one config governs every decode-side allocation.
func decodeStream(dec *codec.Decoder, input []byte, maxFrame int, logger *zap.Logger) ([]byte, error) {
	if format != "json" {
		return nil, fmt.Errorf("--stream supports json output only, got %q", format)
	}

	var out bytes.Buffer
	count := 0
	it := stream.NewFrameReaderWithLimit(bytes.NewReader(input), maxFrame).Iterator()
	for it.Next() {
		v, err := dec.Decode(it.Frame())
		if err != nil {
			return nil, fmt.Errorf("frame %d: decode: %w", count, err)
		}
		doc, err := interchange.ToJSON(v)
		if err != nil {
			return nil, err
		}
		out.Write(doc)
		out.WriteByte('\n')
		count++
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	logger.Debug("decoded stream", zap.Int("values", count))

	return out.Bytes(), nil
}

func renderDocument(v value.Value) ([]byte, error) {
	switch format {
	case "json":
		doc, err := interchange.ToJSON(v)
		if err != nil {
			return nil, err
		}
		return append(doc, '\n'), nil
	case "cbor":
		return interchange.ToCBOR(v)
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or cbor)", format)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&inPath, "in", "i", "-", "Input file path, or - for stdin")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output file path, or - for stdout")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Output document format: json or cbor")
	rootCmd.Flags().BoolVar(&streamMode, "stream", false, "Read a framed stream, emit newline-delimited documents")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/valbin/config.yaml)")
}
