package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vdobler/quickplot/internal/argcheck"
)

// Precision is the number of mantissa digits written by Write. Together
// with the 'e' format this reproduces the "%.18e" layout of the common
// array savers and round-trips every float64 exactly.
const Precision = 18

var logger = logrus.WithField("tag", "table")

// Import reads the comma separated numeric table stored in the file path.
func Import(path string) (Table, error) {
	if err := argcheck.Path("path", path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("table: reading %s: %w", path, err)
	}
	logger.WithFields(logrus.Fields{
		"path": path,
		"rows": t.Rows(),
		"cols": t.Cols(),
	}).Debug("imported table")
	return t, nil
}

// Read parses a comma separated numeric table from r. Blank lines and
// lines starting with '#' are skipped. All rows must have the same number
// of fields as the first one; every field must parse as a float.
// Empty input results in an empty, non-nil table.
func Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	t := Table{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Field count mismatches end up here as a *csv.ParseError too.
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		t = append(t, row)
	}

	if len(t) == 0 {
		logger.Warn("input contains no data")
	}
	return t, nil
}

// Export writes t to the file path, truncating an existing file. A failed
// write may leave a partial file behind.
func Export(path string, t Table) error {
	if err := argcheck.Path("path", path); err != nil {
		return err
	}
	if err := t.validate("table"); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("table: writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"path": path,
		"rows": t.Rows(),
		"cols": t.Cols(),
	}).Debug("exported table")
	return nil
}

// Write encodes t as comma separated text, one row per line.
func Write(w io.Writer, t Table) error {
	if err := t.validate("table"); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	record := make([]string, t.Cols())
	for _, row := range t {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'e', Precision, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
