// Package output renders command results in the formats downstream tools
// consume: CSV, download directives and shell script lines.
package output

import (
	"encoding/csv"
	"io"
)

// CSV writes rows and flushes after each one so a reader sees them as
// soon as they are produced.
type CSV struct {
	w *csv.Writer
}

// NewCSV writes the header row and returns the writer
func NewCSV(w io.Writer, header ...string) (*CSV, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	c := &CSV{w: cw}
	if err := c.Row(header...); err != nil {
		return nil, err
	}
	return c, nil
}

// Row writes one record
func (c *CSV) Row(fields ...string) error {
	if err := c.w.Write(fields); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}
