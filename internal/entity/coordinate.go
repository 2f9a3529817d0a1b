package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

// CoordinateSeparator - separates the row from the column in the text form of a coordinate.
const CoordinateSeparator = "x"

// Coordinate - an immutable (row, column) pair on a grid.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewCoordinate - returns a coordinate, both parts must be non-negative.
func NewCoordinate(row, col int) (Coordinate, error) {
	if row < 0 {
		return Coordinate{}, fmt.Errorf("%w: row %d cannot be negative", apperror.ErrOutOfRange, row)
	}

	if col < 0 {
		return Coordinate{}, fmt.Errorf("%w: col %d cannot be negative", apperror.ErrOutOfRange, col)
	}

	return Coordinate{Row: row, Col: col}, nil
}

// ParseCoordinate - parses the "<row>x<col>" form, e.g. "1x2".
func ParseCoordinate(text string) (Coordinate, error) {
	if text == "" {
		return Coordinate{}, fmt.Errorf("%w: empty coordinate", apperror.ErrInvalidArgument)
	}

	parts := strings.Split(strings.TrimSpace(text), CoordinateSeparator)
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: invalid coordinate format %q", apperror.ErrInvalidArgument, text)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: invalid row format %q", apperror.ErrInvalidArgument, parts[0])
	}

	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: invalid column format %q", apperror.ErrInvalidArgument, parts[1])
	}

	return NewCoordinate(row, col)
}

func (that Coordinate) String() string {
	return strconv.Itoa(that.Row) + CoordinateSeparator + strconv.Itoa(that.Col)
}
