package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
)

var (
	// Global flags
	configFile string
	quiet      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tonaddrd",
	Short: "goTONAddr - TON address toolkit in Go",
	Long: `goTONAddr converts TON account addresses between the raw form
("workchain:hex") and the checksummed, base64-encoded friendly form, both
from the command line and over a JSON-RPC/WebSocket API.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output to console after startup")
}

// encoderFromFlags builds the friendly-form configuration shared by the
// codec subcommands.
func encoderFromFlags(alphabet string, nonBounceable, testnet bool) (addresscodec.Encoder, error) {
	enc := addresscodec.Encoder{Bounceable: !nonBounceable, Testnet: testnet}

	switch alphabet {
	case "std":
		enc.Alphabet = addresscodec.Standard
	case "url":
		enc.Alphabet = addresscodec.URLSafe
	default:
		return addresscodec.Encoder{}, fmt.Errorf("unknown alphabet %q (want \"std\" or \"url\")", alphabet)
	}

	return enc, nil
}
