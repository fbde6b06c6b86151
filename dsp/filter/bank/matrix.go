package bank

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a row-major rows x cols weight matrix. Row i holds the weights
// of output filter i over the input bins.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a zero matrix.
func New(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromFlat copies a flat row-major weight slice into a matrix with the
// given number of rows. The column count is len(weights)/rows and must be
// exact.
func FromFlat(weights []float64, rows int) (*Matrix, error) {
	if rows <= 0 {
		return nil, errNoRows
	}
	if len(weights) == 0 || len(weights)%rows != 0 {
		return nil, fmt.Errorf("filter bank of %d weights does not split into %d rows", len(weights), rows)
	}

	m := &Matrix{rows: rows, cols: len(weights) / rows, data: make([]float64, len(weights))}
	copy(m.data, weights)

	return m, nil
}

// FromRows copies a slice of equally long rows into a matrix.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errNoRows
	}

	cols := len(rows[0])
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("filter bank row %d has %d columns, want %d", i, len(r), cols)
		}
		copy(m.Row(i), r)
	}

	return m, nil
}

// Rows returns the number of filters.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of input bins per filter.
func (m *Matrix) Cols() int { return m.cols }

// At returns the weight of filter i at bin j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set stores the weight of filter i at bin j.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Row returns filter i's weights. The slice aliases the matrix.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Flat returns a row-major copy of the weights.
func (m *Matrix) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: m.Flat()}
}

// Apply projects mag through the bank: dst[i] = sum_j mag[j]*m[i,j].
// Only the first min(len(mag), Cols()) bins contribute, so a magnitude
// vector one bin shorter than the rows (no Nyquist bin) is accepted.
// At most len(dst) rows are written.
func (m *Matrix) Apply(dst, mag []float64) {
	n := min(len(mag), m.cols)
	rows := min(len(dst), m.rows)

	for i := 0; i < rows; i++ {
		dst[i] = floats.Dot(m.Row(i)[:n], mag[:n])
	}
}
