package memimage

import (
	"encoding/binary"
	"fmt"

	"cgol-verify/internal/core"
)

// Image is a word-addressable view over a byte image loaded at Base in a
// single region. It stands in for device memory when the image was captured
// to a file.
type Image struct {
	region Region
	base   uint32
	data   []byte
}

// NewImage places data at base in region. The data is copied and padded with
// zeros to a whole number of words.
func NewImage(region Region, base uint32, data []byte) (*Image, error) {
	if base%WordSize != 0 {
		return nil, fmt.Errorf("%w: image base %#08x is not word aligned", core.ErrAddressOutOfRange, base)
	}
	buf := make([]byte, padded(len(data)))
	copy(buf, data)
	if uint64(base)+uint64(len(buf)) > 1<<32 {
		return nil, fmt.Errorf("%w: %d bytes at %#08x exceed the address space", core.ErrAddressOutOfRange, len(buf), base)
	}
	return &Image{region: region, base: base, data: buf}, nil
}

// Region returns the region the image is mapped into.
func (m *Image) Region() Region { return m.region }

// Base returns the first mapped address.
func (m *Image) Base() uint32 { return m.base }

// Len returns the mapped size in bytes.
func (m *Image) Len() int { return len(m.data) }

// ReadWord implements WordReader. Words are little-endian so that the byte
// at the lowest address occupies the least significant bits.
func (m *Image) ReadWord(region Region, addr uint32) (uint32, error) {
	if region != m.region {
		return 0, fmt.Errorf("%w: %s is not mapped", core.ErrAddressOutOfRange, region)
	}
	if addr%WordSize != 0 {
		return 0, fmt.Errorf("%w: %#08x is not word aligned", core.ErrAddressOutOfRange, addr)
	}
	if addr < m.base || uint64(addr-m.base)+WordSize > uint64(len(m.data)) {
		return 0, fmt.Errorf("%w: %#08x outside [%#08x, %#08x)", core.ErrAddressOutOfRange,
			addr, m.base, uint64(m.base)+uint64(len(m.data)))
	}
	off := addr - m.base
	return binary.LittleEndian.Uint32(m.data[off : off+WordSize]), nil
}

// Encode packs g into the stream layout read by Decode, padded with zeros to
// a whole number of words.
func Encode(g *core.Grid) []byte {
	rows, cols := g.Rows(), g.Cols()
	total := rows * cols
	out := make([]byte, padded((total+7)/8))
	for i := 0; i < total; i++ {
		if g.Alive(i/cols, i%cols) {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

func padded(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}
