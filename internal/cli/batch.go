package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
)

var (
	batchWorkers       int
	batchAlphabet      string
	batchNonBounceable bool
	batchTestnet       bool
	batchRaw           bool
)

// batchCmd converts a whole file of addresses, one per line.
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Convert addresses in bulk, one per line",
	Long: `Read addresses (raw or friendly, one per line) from a file or stdin and
print the converted form for each, preserving input order. Lines that fail
to parse are reported on stderr and the command exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchAlphabet, "alphabet", "url", "base64 alphabet: std or url")
	batchCmd.Flags().BoolVar(&batchNonBounceable, "non-bounceable", false, "render the non-bounceable form")
	batchCmd.Flags().BoolVar(&batchTestnet, "testnet", false, "render the testnet form")
	batchCmd.Flags().BoolVar(&batchRaw, "raw", false, "render the raw workchain:hex form instead")
}

func runBatch(cmd *cobra.Command, args []string) error {
	enc, err := encoderFromFlags(batchAlphabet, batchNonBounceable, batchTestnet)
	if err != nil {
		return err
	}

	input := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	lines, err := readLines(input)
	if err != nil {
		return err
	}

	outputs := make([]string, len(lines))
	failures := make([]error, len(lines))

	g := new(errgroup.Group)
	if batchWorkers > 0 {
		g.SetLimit(batchWorkers)
	}

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			addr, err := addresscodec.Parse(line)
			if err != nil {
				failures[i] = err
				return nil
			}
			if batchRaw {
				outputs[i] = addr.ToRawAddress()
			} else {
				outputs[i] = addr.ToBase64(enc)
			}
			return nil
		})
	}

	// Workers only record per-line outcomes, so Wait cannot fail; it is the
	// barrier that makes outputs and failures safe to read.
	_ = g.Wait()

	failed := 0
	for i, out := range outputs {
		if failures[i] != nil {
			failed++
			fmt.Fprintf(os.Stderr, "line %d: %v\n", i+1, failures[i])
			continue
		}
		fmt.Println(out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d addresses failed to parse", failed, len(lines))
	}
	return nil
}

// readLines collects non-empty input lines, trimming surrounding whitespace.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}
