// Package table loads and saves numeric tables as comma separated text.
//
// A Table is a plain row-major [][]float64 without header or column
// types. Rows and columns are positional. The text format is the one of
// the usual delimited-text array loaders: one row per line, values
// separated by commas, lines starting with '#' are comments.
package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vdobler/quickplot/internal/argcheck"
)

// ErrInvalidArgument is matched (via errors.Is) by all argument errors
// returned from this package.
var ErrInvalidArgument = argcheck.ErrInvalid

// Table is a two dimensional array of numbers, indexed [row][column].
type Table [][]float64

// Rows returns the number of rows in t.
func (t Table) Rows() int { return len(t) }

// Cols returns the number of columns of the first row of t.
func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Validate reports whether t has at least one row and one column and all
// rows are of the same length.
func (t Table) Validate() error {
	return t.validate("table")
}

func (t Table) validate(param string) error {
	if t == nil {
		return argcheck.New(param, "a numeric table", "nil")
	}
	if len(t) == 0 || len(t[0]) == 0 {
		return argcheck.New(param, "a table with at least one row and column", "an empty table")
	}
	n := len(t[0])
	for i, row := range t {
		if len(row) != n {
			return argcheck.New(param, "a rectangular table",
				fmt.Sprintf("row %d with %d columns (row 0 has %d)", i, len(row), n))
		}
	}
	return nil
}

// Column returns a copy of column j.
func (t Table) Column(j int) ([]float64, error) {
	if err := t.validate("table"); err != nil {
		return nil, err
	}
	if j < 0 || j >= t.Cols() {
		return nil, argcheck.New("column", fmt.Sprintf("in [0,%d)", t.Cols()), fmt.Sprint(j))
	}
	col := make([]float64, len(t))
	for i, row := range t {
		col[i] = row[j]
	}
	return col, nil
}

// Dense returns t as a gonum matrix. The data is copied.
func (t Table) Dense() (*mat.Dense, error) {
	if err := t.validate("table"); err != nil {
		return nil, err
	}
	r, c := t.Rows(), t.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range t {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data), nil
}

// FromMatrix copies m into a new Table.
func FromMatrix(m mat.Matrix) Table {
	r, c := m.Dims()
	t := make(Table, r)
	for i := range t {
		t[i] = make([]float64, c)
		for j := range t[i] {
			t[i][j] = m.At(i, j)
		}
	}
	return t
}

// Transpose returns a new table with rows and columns exchanged.
func (t Table) Transpose() (Table, error) {
	d, err := t.Dense()
	if err != nil {
		return nil, err
	}
	return FromMatrix(d.T()), nil
}
