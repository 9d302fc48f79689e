package memimage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cgol-verify/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder wraps a WordReader and logs every address it is asked for.
type recorder struct {
	WordReader
	addrs []uint32
}

func (r *recorder) ReadWord(region Region, addr uint32) (uint32, error) {
	r.addrs = append(r.addrs, addr)
	return r.WordReader.ReadWord(region, addr)
}

func TestDecodeRoundTrip(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {1, 8}, {1, 9}, {8, 8}, {core.MaxRows, core.MaxCols}, {7, 13}}
	for i, shape := range shapes {
		rows, cols := shape[0], shape[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			g, err := core.RandomGrid(rows, cols, int64(i+10), 0.5)
			require.NoError(t, err)

			img, err := NewImage(XMEM, 0x80000100, Encode(&g))
			require.NoError(t, err)

			got, st, err := Decode(img, XMEM, img.Base(), rows, cols)
			require.NoError(t, err)
			assert.True(t, g.Equal(&got))
			assert.Equal(t, (rows*cols+7)/8, st.Bytes)
		})
	}
}

func TestDecodeBitOrder(t *testing.T) {
	// 0x01 sets cell 0, 0x80 sets cell 7, the second byte's 0x02 sets cell 9.
	img, err := NewImage(DMEM, 0, []byte{0x81, 0x02})
	require.NoError(t, err)

	g, _, err := Decode(img, DMEM, 0, 2, 6)
	require.NoError(t, err)
	assert.Equal(t, "#.....\n.#.#..\n", g.String())
}

func TestDecodeWordCaching(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 37)
	}
	img, err := NewImage(DMEM, 0x1000, data)
	require.NoError(t, err)

	t.Run("aligned base", func(t *testing.T) {
		rec := &recorder{WordReader: img}
		_, st, err := Decode(rec, DMEM, 0x1000, 10, 10) // 13 bytes
		require.NoError(t, err)
		assert.Equal(t, []uint32{0x1000, 0x1004, 0x1008, 0x100c}, rec.addrs)
		assert.Equal(t, 4, st.WordReads)
		assert.Equal(t, 13, st.Bytes)
	})

	t.Run("unaligned base", func(t *testing.T) {
		rec := &recorder{WordReader: img}
		g, st, err := Decode(rec, DMEM, 0x1003, 2, 8) // bytes 0x1003 and 0x1004
		require.NoError(t, err)
		assert.Equal(t, []uint32{0x1000, 0x1004}, rec.addrs)
		assert.Equal(t, 2, st.WordReads)

		for c := 0; c < 8; c++ {
			assert.Equal(t, data[3]>>c&1 == 1, g.Alive(0, c))
			assert.Equal(t, data[4]>>c&1 == 1, g.Alive(1, c))
		}
	})
}

func TestDecodeDiscardsTrailingBits(t *testing.T) {
	img, err := NewImage(DMEM, 0, []byte{0xff, 0xff, 0xff, 0xff})
	require.NoError(t, err)

	g, st, err := Decode(img, DMEM, 0, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Population())
	assert.Equal(t, 1, st.Bytes)
	assert.Equal(t, 1, st.WordReads)
}

func TestDecodeEmpty(t *testing.T) {
	calls := 0
	r := WordReaderFunc(func(Region, uint32) (uint32, error) {
		calls++
		return 0, nil
	})
	g, _, err := Decode(r, DMEM, 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Zero(t, calls)
}

func TestDecodeDimensionOverflow(t *testing.T) {
	calls := 0
	r := WordReaderFunc(func(Region, uint32) (uint32, error) {
		calls++
		return 0, nil
	})
	_, _, err := Decode(r, DMEM, 0, core.MaxRows+1, 1)
	assert.ErrorIs(t, err, core.ErrDimensionOverflow)
	assert.Zero(t, calls, "no memory traffic before validation")
}

func TestDecodeAddressOutOfRange(t *testing.T) {
	img, err := NewImage(DMEM, 0x100, make([]byte, 8))
	require.NoError(t, err)

	t.Run("past the end", func(t *testing.T) {
		_, st, err := Decode(img, DMEM, 0x100, 10, 10)
		assert.ErrorIs(t, err, core.ErrAddressOutOfRange)
		assert.Equal(t, 3, st.WordReads)
	})
	t.Run("wrong region", func(t *testing.T) {
		_, _, err := Decode(img, XMEM, 0x100, 2, 2)
		assert.ErrorIs(t, err, core.ErrAddressOutOfRange)
	})
	t.Run("address space wrap", func(t *testing.T) {
		_, _, err := Decode(img, DMEM, 0xfffffffc, 16, 16)
		assert.ErrorIs(t, err, core.ErrAddressOutOfRange)
	})
	t.Run("reader failure is surfaced", func(t *testing.T) {
		boom := errors.New("bus fault")
		r := WordReaderFunc(func(Region, uint32) (uint32, error) { return 0, boom })
		_, _, err := Decode(r, DMEM, 0, 4, 4)
		assert.ErrorIs(t, err, boom)
	})
}

func TestImageReadWord(t *testing.T) {
	img, err := NewImage(XMEM, 0x20, []byte{0x01, 0x02, 0x03, 0x04, 0x05})
	require.NoError(t, err)
	assert.Equal(t, 8, img.Len())

	w, err := img.ReadWord(XMEM, 0x20)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), w)

	w, err = img.ReadWord(XMEM, 0x24)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x05), w)

	_, err = img.ReadWord(XMEM, 0x22)
	assert.ErrorIs(t, err, core.ErrAddressOutOfRange)
	_, err = img.ReadWord(XMEM, 0x1c)
	assert.ErrorIs(t, err, core.ErrAddressOutOfRange)

	_, err = NewImage(XMEM, 0x21, nil)
	assert.ErrorIs(t, err, core.ErrAddressOutOfRange)
}

func TestRegionFor(t *testing.T) {
	assert.Equal(t, DMEM, RegionFor(0x100, DefaultXSpaceBase))
	assert.Equal(t, XMEM, RegionFor(DefaultXSpaceBase, DefaultXSpaceBase))
	assert.Equal(t, "xmem", XMEM.String())
}

func TestHexRoundTrip(t *testing.T) {
	g, err := core.RandomGrid(16, 16, 5, 0.5)
	require.NoError(t, err)
	data := Encode(&g)

	var buf bytes.Buffer
	require.NoError(t, WriteHex(&buf, data, g.Rows()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 16)
	assert.Equal(t, 2, len(strings.Fields(lines[0])))

	back, err := ReadHex(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, back)

	_, err = ReadHex(strings.NewReader(" 0f zz"))
	assert.Error(t, err)
}

func TestLoadHexImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgol_hex_in.txt")
	require.NoError(t, os.WriteFile(path, []byte(" 81 02\n"), 0o644))

	img, err := LoadHexImage(path, DMEM, 0x40)
	require.NoError(t, err)
	g, _, err := Decode(img, DMEM, 0x40, 2, 6)
	require.NoError(t, err)
	assert.Equal(t, "#.....\n.#.#..\n", g.String())
}

func TestConfRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConf(&buf, Conf{Name: "cgol_16x16_p1", Rows: 16, Cols: 16}))
	assert.Equal(t, "cgol_16x16_p1 16 16\n", buf.String())

	c, err := ReadConf(&buf)
	require.NoError(t, err)
	assert.Equal(t, Conf{Name: "cgol_16x16_p1", Rows: 16, Cols: 16}, c)

	_, err = ReadConf(strings.NewReader("broken"))
	assert.Error(t, err)
}
