// Package addresscodec parses and formats TON account addresses. It
// converts between the raw form ("workchain:hex") and the checksummed,
// base64-encoded friendly form carrying bounceable/testnet flags.
//
// Every operation is a pure function over its inputs; Address values are
// immutable and safe to share across goroutines.
package addresscodec

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// AccountIDLength is the fixed size of an account id within a workchain.
const AccountIDLength = 32

// Address identifies an account on the TON network: a signed 8-bit
// workchain (commonly 0, or -1 for the masterchain) and a 32-byte account
// id. Both stay the same no matter which textual form the address takes.
type Address struct {
	workchain int8
	accountID [AccountIDLength]byte
}

// NewAddress builds an address from its workchain and account id. The
// fixed-size array makes a wrong-length account id unrepresentable.
func NewAddress(workchain int8, accountID [AccountIDLength]byte) Address {
	return Address{workchain: workchain, accountID: accountID}
}

// Workchain returns the workchain number.
func (a Address) Workchain() int8 {
	return a.workchain
}

// AccountID returns a copy of the 32-byte account id.
func (a Address) AccountID() [AccountIDLength]byte {
	return a.accountID
}

// Encoder configures ToBase64: which alphabet to render with and which
// bounceable/testnet flags to stamp into the flag byte.
type Encoder struct {
	Alphabet   Alphabet
	Bounceable bool
	Testnet    bool
}

// Default encoder configurations: bounceable mainnet form, in each alphabet.
var (
	Base64StdDefault = Encoder{Alphabet: Standard, Bounceable: true}
	Base64URLDefault = Encoder{Alphabet: URLSafe, Bounceable: true}
)

// DecodeResult is what FromBase64 recovers from a friendly address: the
// address itself plus the metadata carried by the flag byte, and the
// alphabet the string was actually decoded with.
type DecodeResult struct {
	Address    Address
	Bounceable bool
	Testnet    bool
	Alphabet   Alphabet
}

// ParseRawAddress parses the raw textual form "<workchain>:<64 hex chars>",
// e.g. "0:0e97797708411c29a3cb1f3f810ef4f83f41d990838f7f93ce7082c4ff9aa026".
func ParseRawAddress(s string) (Address, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Address{}, parseError(s, ErrInvalidFormat)
	}

	workchain, err := strconv.ParseInt(parts[0], 10, 8)
	if err != nil {
		return Address{}, parseError(s, ErrInvalidWorkchain)
	}

	if len(parts[1]) != hex.EncodedLen(AccountIDLength) {
		return Address{}, parseError(s, ErrInvalidHex)
	}

	addr := Address{workchain: int8(workchain)}
	if _, err := hex.Decode(addr.accountID[:], []byte(parts[1])); err != nil {
		return Address{}, parseError(s, ErrInvalidHex)
	}

	return addr, nil
}

// FromBase64 decodes a friendly address string. With AutoDetect the
// alphabet is guessed from the characters present; with an explicit
// alphabet the decode is strict, rejecting characters that belong only to
// the other alphabet.
func FromBase64(s string, alphabet Alphabet) (DecodeResult, error) {
	if len(s) != encodedFriendlyLength {
		return DecodeResult{}, parseError(s, ErrInvalidLength)
	}

	decoded, used, err := decodeBase64(s, alphabet)
	if err != nil {
		return DecodeResult{}, parseError(s, err)
	}
	if len(decoded) != friendlyBufferLength {
		return DecodeResult{}, parseError(s, ErrInvalidLength)
	}

	addr, bounceable, testnet, err := parseFriendlyBuffer(decoded)
	if err != nil {
		return DecodeResult{}, parseError(s, err)
	}

	return DecodeResult{
		Address:    addr,
		Bounceable: bounceable,
		Testnet:    testnet,
		Alphabet:   used,
	}, nil
}

// Parse accepts either textual form. Raw addresses always contain a colon
// and friendly addresses never do, so the two grammars never overlap.
func Parse(s string) (Address, error) {
	if strings.Contains(s, ":") {
		return ParseRawAddress(s)
	}

	result, err := FromBase64(s, AutoDetect)
	if err != nil {
		return Address{}, err
	}
	return result.Address, nil
}

// ToRawAddress renders the "<workchain>:<64 lowercase hex>" form.
func (a Address) ToRawAddress() string {
	return strconv.Itoa(int(a.workchain)) + ":" + hex.EncodeToString(a.accountID[:])
}

// ToBase64 renders the friendly form with the given configuration. An
// AutoDetect alphabet encodes as Standard.
func (a Address) ToBase64(enc Encoder) string {
	buf := buildFriendlyBuffer(a, enc.Bounceable, enc.Testnet)
	return encodeBase64(buf[:], enc.Alphabet)
}

// String renders the URL-safe bounceable mainnet form.
func (a Address) String() string {
	return a.ToBase64(Base64URLDefault)
}
