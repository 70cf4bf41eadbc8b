package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
)

var (
	encodeAlphabet      string
	encodeNonBounceable bool
	encodeTestnet       bool
	encodeRaw           bool
)

// encodeCmd re-renders an address with caller-chosen flags.
var encodeCmd = &cobra.Command{
	Use:   "encode <address>",
	Short: "Re-encode an address with the chosen alphabet and flags",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVar(&encodeAlphabet, "alphabet", "url", "base64 alphabet: std or url")
	encodeCmd.Flags().BoolVar(&encodeNonBounceable, "non-bounceable", false, "render the non-bounceable form")
	encodeCmd.Flags().BoolVar(&encodeTestnet, "testnet", false, "render the testnet form")
	encodeCmd.Flags().BoolVar(&encodeRaw, "raw", false, "render the raw workchain:hex form instead")
}

func runEncode(cmd *cobra.Command, args []string) error {
	addr, err := addresscodec.Parse(args[0])
	if err != nil {
		return err
	}

	if encodeRaw {
		fmt.Println(addr.ToRawAddress())
		return nil
	}

	enc, err := encoderFromFlags(encodeAlphabet, encodeNonBounceable, encodeTestnet)
	if err != nil {
		return err
	}

	fmt.Println(addr.ToBase64(enc))
	return nil
}
