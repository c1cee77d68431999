package cmd

import (
	"bufio"
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
	Use:   "write_in",
	Short: "Encode a value document into the valbin binary format",
	Long: `write_in reads a value document (JSON by default) from a file or
standard input, encodes it into the valbin binary format and writes the
result to a file or standard output. File output is all-or-nothing: a
failed encode never leaves partial output behind.

Document form:
  {"int": 42}
  {"bytes": "<base64>"}
  {"str": "text"}
  {"seq": [{"int": 1}, {"seq": []}]}

With --stream, input is one JSON document per line and output is a framed
stream of encodings (one checksummed frame per value).`,
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

		enc := codec.NewEncoder(cfg.CodecConfig())

		input, err := cliio.ReadInput(inPath)
		if err != nil {
			return err
		}

		var output []byte
		if streamMode {
			output, err = encodeStream(enc, input, logger)
		} else {
			output, err = encodeOne(enc, input)
		}
		if err != nil {
			return err
		}

		return cliio.WriteOutput(outPath, output)
	},
}

func encodeOne(enc *codec.Encoder, input []byte) ([]byte, error) {
	v, err := parseDocument(input)
	if err != nil {
		return nil, err
	}
	return enc.Encode(v), nil
}

// encodeStream turns newline-delimited JSON documents into a framed stream
// of encodings. The whole stream is built in memory so the output sink is
// written all-or-nothing.
func encodeStream(enc *codec.Encoder, input []byte, logger *zap.Logger) ([]byte, error) {
	if format != "json" {
		return nil, fmt.Errorf("--stream supports json input only, got %q", format)
	}

	var out bytes.Buffer
	w := stream.NewFrameWriter(&out)

	var buf []byte
	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		v, err := interchange.FromJSON(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", count+1, err)
		}
		buf = enc.Append(buf[:0], v)
		if _, err := w.Append(buf); err != nil {
			return nil, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	logger.Debug("encoded stream",
		zap.Int("values", count),
		zap.Int64("bytes", w.Offset()))

	return out.Bytes(), nil
}

func parseDocument(input []byte) (value.Value, error) {
	switch format {
	case "json":
		return interchange.FromJSON(input)
	case "cbor":
		return interchange.FromCBOR(input)
	default:
		return value.Value{}, fmt.Errorf("unknown input format %q (want json or cbor)", format)
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
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Input document format: json or cbor")
	rootCmd.Flags().BoolVar(&streamMode, "stream", false, "Read newline-delimited documents, emit a framed stream")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/valbin/config.yaml)")
}
