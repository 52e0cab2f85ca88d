// SPDX-License-Identifier: MIT
// Package: peakfinder/accel
//
// csv.go - CSV decoding and encoding.
//
// Format:
//   • one row per sample: timestamp,x,y,z (extra trailing columns ignored)
//   • an optional header row, recognised when the first field of the
//     first row is not a number
//   • blank lines are skipped by encoding/csv

package accel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldsPerRow is the minimum number of columns: timestamp, x, y, z.
const fieldsPerRow = 4

// header is the column row written by Encode.
var header = [fieldsPerRow]string{"timestamp", AxisX, AxisY, AxisZ}

// Header returns the column names Encode writes, as a fresh slice.
func Header() []string {
	h := header
	return h[:]
}

// ReadCSV opens path and decodes it with Decode.
func ReadCSV(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("accel: open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("accel: read %s: %w", path, err)
	}

	return rec, nil
}

// Decode reads a whole recording from r.
//
// Errors:
//   - ErrMalformedRecord (wrapped with the line number) for short rows or
//     non-numeric fields.
//   - ErrNoSamples when r contains no data rows.
//   - *csv.ParseError (e.g. unbalanced quotes), wrapped with "accel:".
func Decode(r io.Reader) (*Recording, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	rec := &Recording{}
	first := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("accel: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}

		if len(row) < fieldsPerRow {
			return nil, fmt.Errorf("line %d: %w: want %d fields, got %d", line, ErrMalformedRecord, fieldsPerRow, len(row))
		}
		var vals [fieldsPerRow]float64
		for i := 0; i < fieldsPerRow; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w: %q", line, i+1, ErrMalformedRecord, row[i])
			}
			vals[i] = v
		}
		rec.append(vals[0], vals[1], vals[2], vals[3])
	}

	if rec.Len() == 0 {
		return nil, ErrNoSamples
	}

	return rec, nil
}

// isHeader reports whether the first field of row is not a number.
func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)

	return err != nil
}

// Encode writes rec as CSV with a Header row.
//
// Errors:
//   - ErrLengthMismatch if the columns of rec differ in length.
func Encode(w io.Writer, rec *Recording) error {
	if err := rec.validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}

	row := make([]string, fieldsPerRow)
	for i := 0; i < rec.Len(); i++ {
		row[0] = formatFloat(rec.Timestamps[i])
		row[1] = formatFloat(rec.X[i])
		row[2] = formatFloat(rec.Y[i])
		row[3] = formatFloat(rec.Z[i])
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
