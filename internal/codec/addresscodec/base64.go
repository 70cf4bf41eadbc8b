package addresscodec

import (
	"encoding/base64"
	"strings"
)

// Alphabet selects the base64 alphabet used for friendly addresses. The two
// alphabets differ only in the characters for values 62 and 63 ('+'/'/'
// versus '-'/'_'). The zero value asks the decoder to detect the alphabet
// from the input.
type Alphabet int

const (
	// AutoDetect guesses the alphabet from the characters present in the
	// encoded string. Only meaningful when decoding.
	AutoDetect Alphabet = iota

	// Standard is the standard base64 alphabet ('+' and '/').
	Standard

	// URLSafe is the URL-safe base64 alphabet ('-' and '_').
	URLSafe
)

func (a Alphabet) String() string {
	switch a {
	case Standard:
		return "standard"
	case URLSafe:
		return "url-safe"
	default:
		return "auto"
	}
}

// encoding returns the unpadded stdlib encoding for the alphabet. Friendly
// addresses are never padded: 36 bytes encode to exactly 48 characters.
func (a Alphabet) encoding() *base64.Encoding {
	if a == URLSafe {
		return base64.RawURLEncoding
	}
	return base64.RawStdEncoding
}

// guessAlphabet inspects the encoded string for alphabet-exclusive
// characters. A string carrying markers from both alphabets is corrupt and
// is rejected rather than guessed at. Strings with no markers at all decode
// identically under either alphabet, so Standard is picked.
func guessAlphabet(s string) (Alphabet, error) {
	hasStd := strings.ContainsAny(s, "+/")
	hasURL := strings.ContainsAny(s, "-_")

	switch {
	case hasStd && hasURL:
		return AutoDetect, ErrInvalidBase64
	case hasURL:
		return URLSafe, nil
	default:
		return Standard, nil
	}
}

// encodeBase64 renders buf with the given alphabet, no padding. AutoDetect
// falls back to Standard.
func encodeBase64(buf []byte, alphabet Alphabet) string {
	return alphabet.encoding().EncodeToString(buf)
}

// decodeBase64 decodes s with the given alphabet, resolving AutoDetect
// first. Explicitly requested alphabets are strict: a character valid only
// under the other alphabet fails rather than falling back.
func decodeBase64(s string, alphabet Alphabet) ([]byte, Alphabet, error) {
	if alphabet == AutoDetect {
		var err error
		if alphabet, err = guessAlphabet(s); err != nil {
			return nil, AutoDetect, err
		}
	}

	decoded, err := alphabet.encoding().DecodeString(s)
	if err != nil {
		return nil, alphabet, ErrInvalidBase64
	}
	return decoded, alphabet, nil
}
