package memimage

import (
	"fmt"

	"cgol-verify/internal/core"
)

// Stats counts the memory traffic of a decode.
type Stats struct {
	// WordReads is the number of ReadWord calls issued.
	WordReads int
	// Bytes is the number of bytes consumed from the stream.
	Bytes int
}

// Decode reads a rows x cols grid from the bit stream at base in region.
//
// A word is fetched only when the next byte lies in a different aligned word
// than the previous fetch, so a stream of n bytes costs at most
// ceil(n/4)+1 reads. Decoding stops after rows*cols bits; the rest of the
// last byte is ignored. On error no grid is returned.
func Decode(r WordReader, region Region, base uint32, rows, cols int) (core.Grid, Stats, error) {
	var st Stats
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		return core.Grid{}, st, err
	}

	total := rows * cols
	nbytes := (total + 7) / 8
	if uint64(base)+uint64(nbytes) > 1<<32 {
		return core.Grid{}, st, fmt.Errorf("%w: %d bytes at %#08x exceed the address space",
			core.ErrAddressOutOfRange, nbytes, base)
	}

	var (
		word     uint32
		wordAddr uint32
		fetched  bool
		cnt      int
	)
	for addr := base; cnt < total; addr++ {
		aligned := addr &^ (WordSize - 1)
		if !fetched || aligned != wordAddr {
			word, err = r.ReadWord(region, aligned)
			st.WordReads++
			if err != nil {
				return core.Grid{}, st, fmt.Errorf("read %s word at %#08x: %w", region, aligned, err)
			}
			wordAddr, fetched = aligned, true
		}
		b := byte(word >> (8 * (addr % WordSize)))
		st.Bytes++
		for bit := 0; bit < 8 && cnt < total; bit++ {
			if b>>bit&1 == 1 {
				g.Set(cnt/cols, cnt%cols, true)
			}
			cnt++
		}
	}
	return g, st, nil
}
