package addresscodec

import "encoding/binary"

// Friendly address wire layout (36 bytes, base64-encoded to 48 characters):
//
//	offset 0     flag byte (bounceable / testnet)
//	offset 1     workchain, signed two's-complement byte
//	offset 2-33  account id
//	offset 34-35 CRC-16/XMODEM over bytes 0-33, big-endian
const (
	friendlyBufferLength  = 36
	encodedFriendlyLength = 48
)

// The four valid flag bytes. The base value 0x11 marks a bounceable mainnet
// address; 0x40 switches it to non-bounceable and 0x80 to testnet.
const (
	tagBounceable        byte = 0x11
	tagNonBounceable     byte = 0x51
	tagTestBounceable    byte = 0x91
	tagTestNonBounceable byte = 0xD1

	flagNonBounceable byte = 0x40
	flagTestnet       byte = 0x80
)

// buildFriendlyBuffer assembles the 36-byte wire form of addr, including
// the trailing checksum.
func buildFriendlyBuffer(addr Address, bounceable, testnet bool) [friendlyBufferLength]byte {
	var buf [friendlyBufferLength]byte

	tag := tagBounceable
	if !bounceable {
		tag |= flagNonBounceable
	}
	if testnet {
		tag |= flagTestnet
	}

	buf[0] = tag
	buf[1] = byte(addr.workchain)
	copy(buf[2:34], addr.accountID[:])
	binary.BigEndian.PutUint16(buf[34:36], checksum(buf[:34]))

	return buf
}

// parseFriendlyBuffer validates a 36-byte wire buffer and reconstructs the
// address plus its bounceable/testnet flags. The checksum is verified only
// after the flag byte is recognized, so a corrupt flag surfaces as
// ErrInvalidFlag rather than ErrChecksumMismatch.
func parseFriendlyBuffer(buf []byte) (Address, bool, bool, error) {
	if len(buf) != friendlyBufferLength {
		return Address{}, false, false, ErrInvalidLength
	}

	var bounceable, testnet bool
	switch buf[0] {
	case tagBounceable:
		bounceable, testnet = true, false
	case tagNonBounceable:
		bounceable, testnet = false, false
	case tagTestBounceable:
		bounceable, testnet = true, true
	case tagTestNonBounceable:
		bounceable, testnet = false, true
	default:
		return Address{}, false, false, ErrInvalidFlag
	}

	if !verifyChecksum(buf[:34], binary.BigEndian.Uint16(buf[34:36])) {
		return Address{}, false, false, ErrChecksumMismatch
	}

	addr := Address{workchain: int8(buf[1])}
	copy(addr.accountID[:], buf[2:34])

	return addr, bounceable, testnet, nil
}
