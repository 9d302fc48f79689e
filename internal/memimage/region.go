// Package memimage reconstructs grids from the bit-packed memory image
// written by the hardware under test, and produces such images from grids.
//
// Cell (r, c) of a rows x cols grid is bit r*cols+c of a byte stream that
// starts at a base address; bits are taken least significant first within
// each byte and bytes in ascending address order. Memory is only reachable
// through word-aligned 32-bit reads.
package memimage

import "fmt"

// WordSize is the width in bytes of a memory word.
const WordSize = 4

// DefaultXSpaceBase is the address at which external memory starts when no
// other boundary is configured.
const DefaultXSpaceBase uint32 = 0x80000000

// Region identifies an addressable memory of the device under test.
type Region int

const (
	// DMEM is the tightly coupled data memory.
	DMEM Region = iota
	// XMEM is the external memory space.
	XMEM
)

func (r Region) String() string {
	switch r {
	case DMEM:
		return "dmem"
	case XMEM:
		return "xmem"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// RegionFor returns the region holding addr given the start of external
// memory.
func RegionFor(addr, xspaceBase uint32) Region {
	if addr >= xspaceBase {
		return XMEM
	}
	return DMEM
}

// WordReader reads one 32-bit word at a word-aligned address of a region.
// Each call is assumed to be an expensive access across the device boundary.
// Implementations report invalid addresses with an error wrapping
// core.ErrAddressOutOfRange.
type WordReader interface {
	ReadWord(region Region, addr uint32) (uint32, error)
}

// WordReaderFunc adapts a function to the WordReader interface.
type WordReaderFunc func(region Region, addr uint32) (uint32, error)

// ReadWord calls f.
func (f WordReaderFunc) ReadWord(region Region, addr uint32) (uint32, error) {
	return f(region, addr)
}
