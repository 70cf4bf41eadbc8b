package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
)

// parseCmd inspects an address given in any textual form.
var parseCmd = &cobra.Command{
	Use:   "parse <address>",
	Short: "Parse an address and print all its forms",
	Long: `Parse a TON address given either as a raw "workchain:hex" string or as a
friendly base64 string, and print the workchain, account id, recovered
flags and every textual rendering.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]

	var addr addresscodec.Address
	if strings.Contains(input, ":") {
		var err error
		if addr, err = addresscodec.ParseRawAddress(input); err != nil {
			return err
		}
	} else {
		result, err := addresscodec.FromBase64(input, addresscodec.AutoDetect)
		if err != nil {
			return err
		}
		addr = result.Address

		fmt.Printf("Bounceable:  %t\n", result.Bounceable)
		fmt.Printf("Testnet:     %t\n", result.Testnet)
		fmt.Printf("Alphabet:    %s\n", result.Alphabet)
	}

	accountID := addr.AccountID()
	fmt.Printf("Raw address: %s\n", addr.ToRawAddress())
	fmt.Printf("Workchain:   %d\n", addr.Workchain())
	fmt.Printf("Account id:  %x\n", accountID)
	fmt.Printf("Standard:    %s\n", addr.ToBase64(addresscodec.Base64StdDefault))
	fmt.Printf("URL-safe:    %s\n", addr.ToBase64(addresscodec.Base64URLDefault))

	return nil
}
