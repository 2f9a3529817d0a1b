package grid

import (
	"fmt"
	"iter"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/lines"
)

// Grid - a fixed-size dense store of markers. Free cells hold entity.MarkerNone.
//
// Listeners run synchronously on the calling goroutine and must not mutate the grid.
type Grid struct {
	width  int
	height int
	cells  []entity.Marker

	beforePlace  []PlaceFunc
	afterPlace   []PlaceFunc
	beforeRemove []RemoveFunc
}

// New - creates a grid with every cell free.
func New(width, height int) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d has to be greater than 0", apperror.ErrInvalidArgument, width)
	}

	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d has to be greater than 0", apperror.ErrInvalidArgument, height)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]entity.Marker, width*height),
	}, nil
}

func (that *Grid) Width() int {
	return that.width
}

func (that *Grid) Height() int {
	return that.height
}

// At - raw cell access for line extraction, the caller guarantees the bounds.
func (that *Grid) At(row, col int) entity.Marker {
	return that.cells[row*that.width+col]
}

// Place - puts the marker on a free cell, notifying listeners before and after.
func (that *Grid) Place(row, col int, marker entity.Marker) error {
	if marker.IsEmpty() {
		return fmt.Errorf("%w: cannot place an empty marker", apperror.ErrInvalidArgument)
	}

	if err := that.validate(row, col); err != nil {
		return err
	}

	if !that.At(row, col).IsEmpty() {
		return fmt.Errorf("%w: the field at (%d, %d)", apperror.ErrCellReserved, row, col)
	}

	at := entity.Coordinate{Row: row, Col: col}

	for _, fn := range that.beforePlace {
		fn(at, marker)
	}

	that.cells[row*that.width+col] = marker

	for _, fn := range that.afterPlace {
		fn(at, marker)
	}

	return nil
}

// Remove - frees the cell; listeners get a copy of the removed marker. Free cells are left alone.
func (that *Grid) Remove(row, col int) error {
	if err := that.validate(row, col); err != nil {
		return err
	}

	current := that.At(row, col)
	if current.IsEmpty() {
		return nil
	}

	removed := current.Copy()
	at := entity.Coordinate{Row: row, Col: col}

	for _, fn := range that.beforeRemove {
		fn(at, removed)
	}

	that.cells[row*that.width+col] = entity.MarkerNone

	return nil
}

// RemoveAll - frees every cell in row-major order.
func (that *Grid) RemoveAll() {
	for row := 0; row < that.height; row++ {
		for col := 0; col < that.width; col++ {
			// in range by construction
			_ = that.Remove(row, col)
		}
	}
}

func (that *Grid) Exists(row, col int) (bool, error) {
	if err := that.validate(row, col); err != nil {
		return false, err
	}

	return !that.At(row, col).IsEmpty(), nil
}

// Get - the marker on the cell, ErrNoMarker when the cell is free.
func (that *Grid) Get(row, col int) (entity.Marker, error) {
	if err := that.validate(row, col); err != nil {
		return entity.MarkerNone, err
	}

	marker := that.At(row, col)
	if marker.IsEmpty() {
		return entity.MarkerNone, fmt.Errorf("%w: (%d, %d)", apperror.ErrNoMarker, row, col)
	}

	return marker, nil
}

// Row - snapshot of the row, free cells are entity.MarkerNone.
func (that *Grid) Row(index int) ([]entity.Marker, error) {
	return lines.Row[entity.Marker](that, index)
}

// Col - snapshot of the column, free cells are entity.MarkerNone.
func (that *Grid) Col(index int) ([]entity.Marker, error) {
	return lines.Col[entity.Marker](that, index)
}

// Diagonal - snapshot of the diagonal ray from (row, col) toward increasing column.
func (that *Grid) Diagonal(row, col int, rising bool) ([]entity.Marker, error) {
	return lines.Diagonal[entity.Marker](that, row, col, rising)
}

// FreeCoordinates - lazily yields every free cell in row-major order.
// Each range reads the grid as it is at that moment.
func (that *Grid) FreeCoordinates() iter.Seq[entity.Coordinate] {
	return func(yield func(entity.Coordinate) bool) {
		for row := 0; row < that.height; row++ {
			for col := 0; col < that.width; col++ {
				if !that.At(row, col).IsEmpty() {
					continue
				}

				if !yield(entity.Coordinate{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// Occupied - number of cells holding a marker.
func (that *Grid) Occupied() int {
	count := 0
	for _, marker := range that.cells {
		if !marker.IsEmpty() {
			count++
		}
	}

	return count
}

func (that *Grid) validate(row, col int) error {
	if row < 0 || row >= that.height {
		return fmt.Errorf("%w: row %d", apperror.ErrOutOfRange, row)
	}

	if col < 0 || col >= that.width {
		return fmt.Errorf("%w: col %d", apperror.ErrOutOfRange, col)
	}

	return nil
}
