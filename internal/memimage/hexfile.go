package memimage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteHex writes data as space-prefixed two-digit hex bytes, splitting the
// output into rows lines of equal length. With rows below one, or fewer bytes
// than rows, every byte goes on one line.
func WriteHex(w io.Writer, data []byte, rows int) error {
	perLine := len(data)
	if rows > 0 && len(data)/rows > 0 {
		perLine = len(data) / rows
	}
	bw := bufio.NewWriter(w)
	n := 0
	for _, b := range data {
		fmt.Fprintf(bw, " %02x", b)
		n++
		if n >= perLine {
			bw.WriteByte('\n')
			n = 0
		}
	}
	if n > 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadHex parses whitespace separated hex bytes.
func ReadHex(r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []byte
	for sc.Scan() {
		v, err := strconv.ParseUint(sc.Text(), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("hex byte %d: %w", len(out), err)
		}
		out = append(out, byte(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadHexImage reads a hex file and maps it at base in region.
func LoadHexImage(path string, region Region, base uint32) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open memory image: %w", err)
	}
	defer f.Close()

	data, err := ReadHex(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewImage(region, base, data)
}
