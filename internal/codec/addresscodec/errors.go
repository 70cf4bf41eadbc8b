package addresscodec

import (
	"errors"
	"fmt"
)

// Sentinel errors for every way an address string can fail to parse.
// Callers match on these with errors.Is; ParseError carries the offending
// input alongside the kind.
var (
	// ErrInvalidFormat indicates a raw address missing the workchain:account
	// separator or otherwise structurally malformed.
	ErrInvalidFormat = errors.New("wrong raw address format")

	// ErrInvalidWorkchain indicates a workchain segment that is not a valid
	// signed 8-bit integer.
	ErrInvalidWorkchain = errors.New("workchain is not a valid signed integer")

	// ErrInvalidHex indicates an account segment that is not exactly 64
	// hexadecimal characters.
	ErrInvalidHex = errors.New("account id is not 64 hex characters")

	// ErrInvalidBase64 indicates characters invalid for the selected or
	// detected alphabet, or a string mixing both exclusive alphabets.
	ErrInvalidBase64 = errors.New("invalid base64 address string")

	// ErrInvalidLength indicates a friendly address whose encoded or decoded
	// length does not match the fixed wire layout.
	ErrInvalidLength = errors.New("wrong address length")

	// ErrInvalidFlag indicates a flag byte outside the four recognized values.
	ErrInvalidFlag = errors.New("invalid address flag byte")

	// ErrChecksumMismatch indicates a stored checksum that disagrees with the
	// recomputed one, i.e. a corrupted or tampered address string.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// ParseError is the error type returned by all parsing entry points. It
// wraps one of the sentinel errors above and records the input that failed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing TON address %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(input string, err error) error {
	return &ParseError{Input: input, Err: err}
}
