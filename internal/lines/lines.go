// Package lines extracts rows, columns and diagonal rays from a matrix and
// detects contiguous runs of equal cells in them.
//
// The zero value of the cell type stands for an empty cell.
package lines

import (
	"fmt"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

// Matrix - read access to a dense height x width matrix.
type Matrix[T any] interface {
	Height() int
	Width() int
	At(row, col int) T
}

// Row - cells of the row in increasing column order.
func Row[T any](matrix Matrix[T], row int) ([]T, error) {
	if row < 0 || row >= matrix.Height() {
		return nil, fmt.Errorf("%w: row %d", apperror.ErrOutOfRange, row)
	}

	cells := make([]T, 0, matrix.Width())
	for col := 0; col < matrix.Width(); col++ {
		cells = append(cells, matrix.At(row, col))
	}

	return cells, nil
}

// Col - cells of the column in increasing row order.
func Col[T any](matrix Matrix[T], col int) ([]T, error) {
	if col < 0 || col >= matrix.Width() {
		return nil, fmt.Errorf("%w: col %d", apperror.ErrOutOfRange, col)
	}

	cells := make([]T, 0, matrix.Height())
	for row := 0; row < matrix.Height(); row++ {
		cells = append(cells, matrix.At(row, col))
	}

	return cells, nil
}

// Diagonal - the ray starting at (row, col) and walking toward increasing column.
// A rising ray decreases the row on every step, a falling ray increases it.
// The ray ends as soon as the row leaves the matrix or the column reaches the width,
// so it holds min(width-col, row+1) cells when rising and min(width-col, height-row) when falling.
// A column at or past the width yields an empty ray.
func Diagonal[T any](matrix Matrix[T], row, col int, rising bool) ([]T, error) {
	if row < 0 || row >= matrix.Height() {
		return nil, fmt.Errorf("%w: row %d", apperror.ErrOutOfRange, row)
	}

	if col < 0 {
		return nil, fmt.Errorf("%w: col %d", apperror.ErrOutOfRange, col)
	}

	step := 1
	if rising {
		step = -1
	}

	cells := make([]T, 0, max(matrix.Width()-col, 0))
	for r, c := row, col; c < matrix.Width(); c++ {
		if r < 0 || r >= matrix.Height() {
			break
		}

		cells = append(cells, matrix.At(r, c))
		r += step
	}

	return cells, nil
}
