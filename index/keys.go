package index

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
)

// signBit flips two's complement ordering into unsigned ordering so that
// negative keys sort before positive ones once encoded.
const signBit = uint64(1) << 63

// EncodeKey encodes k as an 8-byte big-endian slice whose byte order matches
// the numeric order of k.
func EncodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k)^signBit)
	return b
}

// DecodeKey is the inverse of EncodeKey.
func DecodeKey(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, errors.Newf("index: unexpected key length %d", len(b))
	}
	return int64(binary.BigEndian.Uint64(b) ^ signBit), nil
}

// HexKey renders k as a fixed-width hex string that sorts like k.
func HexKey(k int64) string {
	return fmt.Sprintf("%016x", uint64(k)^signBit)
}

// ParseHexKey is the inverse of HexKey.
func ParseHexKey(s string) (int64, error) {
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "index: parse key %q", s)
	}
	return int64(u ^ signBit), nil
}
