package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/lines"
)

// Board - read-only view of a grid the evaluator scans.
type Board interface {
	Width() int
	Height() int
	Row(index int) ([]entity.Marker, error)
	Col(index int) ([]entity.Marker, error)
	Diagonal(row, col int, rising bool) ([]entity.Marker, error)
}

// HasWinningRun - checks whether marker has winLength in a row anywhere on the board.
// Rows are scanned first, then columns, then the rising and falling ray from every cell.
// Rays only extend toward increasing column, so every cell has to start one to cover all diagonals.
func HasWinningRun(board Board, winLength int, marker entity.Marker) (bool, error) {
	if winLength <= 0 {
		return false, fmt.Errorf("%w: win length %d has to be greater than 0", apperror.ErrInvalidArgument, winLength)
	}

	if marker.IsEmpty() {
		return false, fmt.Errorf("%w: cannot evaluate an empty marker", apperror.ErrInvalidArgument)
	}

	for row := 0; row < board.Height(); row++ {
		line, err := board.Row(row)
		if err != nil {
			return false, fmt.Errorf("failed to get row %d: %w", row, err)
		}

		if won, err := lines.ContainsRun(line, winLength, marker); err != nil || won {
			return won, err
		}
	}

	for col := 0; col < board.Width(); col++ {
		line, err := board.Col(col)
		if err != nil {
			return false, fmt.Errorf("failed to get col %d: %w", col, err)
		}

		if won, err := lines.ContainsRun(line, winLength, marker); err != nil || won {
			return won, err
		}
	}

	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			for _, rising := range []bool{true, false} {
				line, err := board.Diagonal(row, col, rising)
				if err != nil {
					return false, fmt.Errorf("failed to get diagonal at (%d, %d): %w", row, col, err)
				}

				if won, err := lines.ContainsRun(line, winLength, marker); err != nil || won {
					return won, err
				}
			}
		}
	}

	return false, nil
}

// HasAnyWinningRun - true when at least one of the markers has a winning run.
func HasAnyWinningRun(board Board, winLength int, markers []entity.Marker) (bool, error) {
	_, err := WinningMarker(board, winLength, markers)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperror.ErrNoWinner):
		return false, nil
	default:
		return false, err
	}
}

// WinningMarker - the first marker, in the given order, with a winning run.
// Returns ErrNoWinner when none has one.
func WinningMarker(board Board, winLength int, markers []entity.Marker) (entity.Marker, error) {
	if len(markers) == 0 {
		return entity.MarkerNone, fmt.Errorf("%w: no markers to evaluate", apperror.ErrInvalidArgument)
	}

	for _, marker := range markers {
		won, err := HasWinningRun(board, winLength, marker)
		if err != nil {
			return entity.MarkerNone, err
		}

		if won {
			return marker, nil
		}
	}

	return entity.MarkerNone, apperror.ErrNoWinner
}
