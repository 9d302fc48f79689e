package memimage

import (
	"fmt"
	"io"
)

// Conf describes the grid held by a memory image.
type Conf struct {
	Name string
	Rows int
	Cols int
}

// WriteConf writes c as a single "name rows cols" line.
func WriteConf(w io.Writer, c Conf) error {
	_, err := fmt.Fprintf(w, "%s %d %d\n", c.Name, c.Rows, c.Cols)
	return err
}

// ReadConf parses a "name rows cols" line.
func ReadConf(r io.Reader) (Conf, error) {
	var c Conf
	if _, err := fmt.Fscan(r, &c.Name, &c.Rows, &c.Cols); err != nil {
		return Conf{}, fmt.Errorf("read conf: %w", err)
	}
	return c, nil
}
