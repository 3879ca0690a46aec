/*The io package contains code for writing generated points to disk or to a
console stream. Points are read from a rand.PointStream and written as
delimited text with one row per point and an optional header row, e.g.

	x,y
	0.5,0.5
	0,0
	0.25,0.25

Coordinates are written with six significant digits, which is the format
used by the discrepancy scripts that read these files.

If you want to add a new output format, write a function with the same
signature as WriteFile and call it from cmd.GlobalConfig.write(). Nothing in
math/rand needs to change.
*/
package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/phil-mansfield/qmcpoints/math/rand"
)

// Precision is the number of significant digits written per coordinate.
const Precision = 6

// PointWriter writes points as delimited text. Not threadsafe.
type PointWriter struct {
	w   *csv.Writer
	row []string
	buf []float64
}

// NewPointWriter returns a PointWriter which writes to w, separating columns
// with delim.
func NewPointWriter(w io.Writer, delim rune) (*PointWriter, error) {
	if err := ValidateDelimiter(delim); err != nil {
		return nil, err
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim
	return &PointWriter{w: cw}, nil
}

// ValidateDelimiter returns an error if delim can't separate columns.
func ValidateDelimiter(delim rune) error {
	if delim == 0 || delim == '"' || delim == '\r' || delim == '\n' ||
		delim == utf8.RuneError || !utf8.ValidRune(delim) {
		return fmt.Errorf("%q can't be used as a column delimiter.", delim)
	}
	return nil
}

// Header returns the default column names for points of dimension dim:
// x, y, z, and then x3, x4, ... .
func Header(dim int) []string {
	names := []string{"x", "y", "z"}
	header := make([]string, dim)
	for i := range header {
		if i < len(names) {
			header[i] = names[i]
		} else {
			header[i] = fmt.Sprintf("x%d", i)
		}
	}
	return header
}

// FormatFloat formats a coordinate the way that it will be written to disk.
func FormatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', Precision, 64)
}

// WriteHeader writes a header row.
func (pw *PointWriter) WriteHeader(names []string) error {
	return pw.w.Write(names)
}

// WriteStream writes every remaining point in s and returns the number of
// rows written.
func (pw *PointWriter) WriteStream(s rand.PointStream) (int, error) {
	dim := s.Dim()
	if cap(pw.buf) < dim {
		pw.buf, pw.row = make([]float64, dim), make([]string, dim)
	}
	buf, row := pw.buf[:dim], pw.row[:dim]

	n := 0
	for s.NextAt(buf) {
		for i := range buf {
			row[i] = FormatFloat(buf[i])
		}
		if err := pw.w.Write(row); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Flush writes any buffered rows to the underlying io.Writer.
func (pw *PointWriter) Flush() error {
	pw.w.Flush()
	return pw.w.Error()
}

// Write writes s to w, preceded by a header row if header is true. It
// returns the number of points written.
func Write(w io.Writer, s rand.PointStream, header bool, delim rune) (int, error) {
	pw, err := NewPointWriter(w, delim)
	if err != nil {
		return 0, err
	}
	if header {
		if err = pw.WriteHeader(Header(s.Dim())); err != nil {
			return 0, err
		}
	}
	n, err := pw.WriteStream(s)
	if err != nil {
		return n, err
	}
	return n, pw.Flush()
}

// WriteFile creates the file fname and writes s to it. See Write.
func WriteFile(fname string, s rand.PointStream, header bool, delim rune) (int, error) {
	f, err := os.Create(fname)
	if err != nil {
		return 0, fmt.Errorf("I couldn't open the file %s for writing: %s",
			fname, err.Error())
	}

	n, err := Write(f, s, header, delim)
	if err != nil {
		f.Close()
		return n, err
	}
	return n, f.Close()
}
