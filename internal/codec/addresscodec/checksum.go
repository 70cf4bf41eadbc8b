package addresscodec

import (
	"fmt"

	"github.com/sigurn/crc16"
)

// checksumRegionLength is the number of bytes covered by the checksum:
// the flag byte, the workchain byte and the 32-byte account id.
const checksumRegionLength = 34

var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// checksum computes the CRC-16/XMODEM checksum over the first 34 bytes of
// a friendly address buffer. The region length is fixed by the wire layout,
// so any other length is a caller bug, not a parse failure.
func checksum(region []byte) uint16 {
	if len(region) != checksumRegionLength {
		panic(fmt.Sprintf("addresscodec: checksum region must be %d bytes, got %d",
			checksumRegionLength, len(region)))
	}
	return crc16.Checksum(region, crcTable)
}

// verifyChecksum reports whether the stored checksum matches the one
// recomputed over the region.
func verifyChecksum(region []byte, stored uint16) bool {
	return checksum(region) == stored
}
