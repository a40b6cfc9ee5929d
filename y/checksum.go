package y

import (
	"github.com/dgraph-io/forcecrc/crc"

	"github.com/pkg/errors"
)

// ErrChecksumMismatch is returned at checksum mismatch.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// VerifyChecksum validates the standard CRC-32 of data against expected.
func VerifyChecksum(data []byte, expected uint32) error {
	actual := crc.Checksum(data)
	if actual != expected {
		return Wrapf(ErrChecksumMismatch, "actual: %#08x, expected: %#08x", actual, expected)
	}
	return nil
}

// VerifyState checks that feeding data through the register from start ends
// at want.
func VerifyState(start crc.State, data []byte, want crc.State) error {
	actual := start.Update(data)
	if actual != want {
		return Wrapf(ErrChecksumMismatch, "actual: %#08x, expected: %#08x",
			actual.Value(), want.Value())
	}
	return nil
}
