package romloader

import (
	"bytes"
	"errors"
)

// First word of the N64 cartridge header in each dump byte order.
var (
	orderZ64 = []byte{0x80, 0x37, 0x12, 0x40} // big-endian, native order
	orderV64 = []byte{0x37, 0x80, 0x40, 0x12} // byte-swapped 16-bit pairs
	orderN64 = []byte{0x40, 0x12, 0x37, 0x80} // little-endian 32-bit words
)

// ErrUnknownByteOrder is returned when the data does not start with the
// N64 cartridge magic word in any known byte order.
var ErrUnknownByteOrder = errors.New("not an N64 ROM image")

// normalizeByteOrder returns the image in big-endian (.z64) order,
// detected from the cartridge magic word. The input slice is not
// modified; big-endian input is returned as-is.
func normalizeByteOrder(data []byte) ([]byte, error) {
	if len(data) < 4 || len(data)%4 != 0 {
		return nil, ErrUnknownByteOrder
	}

	switch {
	case bytes.HasPrefix(data, orderZ64):
		return data, nil

	case bytes.HasPrefix(data, orderV64):
		out := make([]byte, len(data))
		for i := 0; i < len(data); i += 2 {
			out[i] = data[i+1]
			out[i+1] = data[i]
		}
		return out, nil

	case bytes.HasPrefix(data, orderN64):
		out := make([]byte, len(data))
		for i := 0; i < len(data); i += 4 {
			out[i] = data[i+3]
			out[i+1] = data[i+2]
			out[i+2] = data[i+1]
			out[i+3] = data[i]
		}
		return out, nil
	}

	return nil, ErrUnknownByteOrder
}
