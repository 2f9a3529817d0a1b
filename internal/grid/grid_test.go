package grid

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
)

func newGrid(t *testing.T, width, height int) *Grid {
	t.Helper()

	board, err := New(width, height)
	require.NoError(t, err)

	return board
}

func TestNew(t *testing.T) {
	t.Run("Creates an empty grid", func(t *testing.T) {
		// When: creating a 4x2 grid
		board := newGrid(t, 4, 2)

		// Then: dimensions are kept and nothing is occupied
		assert.Equal(t, 4, board.Width())
		assert.Equal(t, 2, board.Height())
		assert.Zero(t, board.Occupied())
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		_, err := New(0, 3)
		require.ErrorIs(t, err, apperror.ErrInvalidArgument)

		_, err = New(3, -1)
		require.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}

func TestGrid_Place(t *testing.T) {
	t.Run("Placed marker exists and can be read back", func(t *testing.T) {
		board := newGrid(t, 3, 3)

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				// When: placing on a free cell
				require.NoError(t, board.Place(row, col, entity.Cross))

				// Then: the cell reports the marker
				exists, err := board.Exists(row, col)
				require.NoError(t, err)
				assert.True(t, exists)

				marker, err := board.Get(row, col)
				require.NoError(t, err)
				assert.Equal(t, entity.Cross, marker)
			}
		}
	})

	t.Run("Occupied cell is reserved and keeps its occupant", func(t *testing.T) {
		// Given: a cell taken by circle
		board := newGrid(t, 3, 3)
		require.NoError(t, board.Place(1, 1, entity.Circle))

		// When: cross tries the same cell
		err := board.Place(1, 1, entity.Cross)

		// Then: ErrCellReserved is returned and circle stays
		require.ErrorIs(t, err, apperror.ErrCellReserved)

		marker, err := board.Get(1, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.Circle, marker)
	})

	t.Run("Out of range coordinates", func(t *testing.T) {
		board := newGrid(t, 3, 2)

		for _, at := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
			err := board.Place(at[0], at[1], entity.Cross)
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "%v", at)
		}
	})

	t.Run("Empty marker is rejected", func(t *testing.T) {
		board := newGrid(t, 3, 3)

		err := board.Place(0, 0, entity.MarkerNone)

		require.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Zero(t, board.Occupied())
	})

	t.Run("Notifies before and after the store", func(t *testing.T) {
		// Given: listeners recording the cell state they observe
		board := newGrid(t, 3, 3)
		var events []string

		board.OnBeforePlace(func(at entity.Coordinate, marker entity.Marker) {
			exists, _ := board.Exists(at.Row, at.Col)
			events = append(events, fmt.Sprintf("before %s %s %t", at, marker, exists))
		})
		board.OnAfterPlace(func(at entity.Coordinate, marker entity.Marker) {
			exists, _ := board.Exists(at.Row, at.Col)
			events = append(events, fmt.Sprintf("after %s %s %t", at, marker, exists))
		})

		// When: placing a marker
		require.NoError(t, board.Place(2, 1, entity.Circle))

		// Then: the cell is free before and taken after
		assert.Equal(t, []string{"before 2x1 o false", "after 2x1 o true"}, events)
	})

	t.Run("Listeners run in registration order", func(t *testing.T) {
		board := newGrid(t, 1, 1)
		var order []int

		for i := range 3 {
			board.OnAfterPlace(func(entity.Coordinate, entity.Marker) {
				order = append(order, i)
			})
		}

		require.NoError(t, board.Place(0, 0, entity.Cross))

		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("Failed placement fires nothing", func(t *testing.T) {
		board := newGrid(t, 2, 2)
		require.NoError(t, board.Place(0, 0, entity.Cross))

		fired := 0
		board.OnBeforePlace(func(entity.Coordinate, entity.Marker) { fired++ })

		require.Error(t, board.Place(0, 0, entity.Circle))
		require.Error(t, board.Place(5, 0, entity.Circle))

		assert.Zero(t, fired)
	})
}

func TestGrid_Remove(t *testing.T) {
	t.Run("Removed cell no longer exists", func(t *testing.T) {
		board := newGrid(t, 3, 3)
		require.NoError(t, board.Place(0, 2, entity.Cross))

		require.NoError(t, board.Remove(0, 2))

		exists, err := board.Exists(0, 2)
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = board.Get(0, 2)
		require.ErrorIs(t, err, apperror.ErrNoMarker)
	})

	t.Run("Removing a free cell is a no-op", func(t *testing.T) {
		board := newGrid(t, 3, 3)
		fired := 0
		board.OnBeforeRemove(func(entity.Coordinate, entity.Marker) { fired++ })

		require.NoError(t, board.Remove(1, 1))

		assert.Zero(t, fired)
	})

	t.Run("Listener sees the removed marker while the cell is still taken", func(t *testing.T) {
		board := newGrid(t, 3, 3)
		require.NoError(t, board.Place(1, 0, entity.Circle))

		var seen entity.Marker
		var stillThere bool
		board.OnBeforeRemove(func(at entity.Coordinate, marker entity.Marker) {
			seen = marker
			stillThere, _ = board.Exists(at.Row, at.Col)
		})

		require.NoError(t, board.Remove(1, 0))

		assert.Equal(t, entity.Circle, seen)
		assert.True(t, stillThere)
	})

	t.Run("Out of range coordinates", func(t *testing.T) {
		board := newGrid(t, 3, 3)

		require.ErrorIs(t, board.Remove(3, 0), apperror.ErrOutOfRange)

		_, err := board.Exists(0, 3)
		require.ErrorIs(t, err, apperror.ErrOutOfRange)

		_, err = board.Get(-1, 0)
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})
}

func TestGrid_RemoveAll(t *testing.T) {
	// Given: a partly filled grid
	board := newGrid(t, 3, 2)
	require.NoError(t, board.Place(0, 1, entity.Cross))
	require.NoError(t, board.Place(1, 0, entity.Circle))
	require.NoError(t, board.Place(1, 2, entity.Cross))

	var removed []entity.Coordinate
	board.OnBeforeRemove(func(at entity.Coordinate, _ entity.Marker) {
		removed = append(removed, at)
	})

	// When: resetting the round
	board.RemoveAll()

	// Then: occupied cells were removed in row-major order
	assert.Equal(t, []entity.Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, removed)

	// And: every coordinate is free again
	free := slices.Collect(board.FreeCoordinates())
	assert.Len(t, free, 6)
	for _, at := range free {
		exists, err := board.Exists(at.Row, at.Col)
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestGrid_FreeCoordinates(t *testing.T) {
	t.Run("Row-major order", func(t *testing.T) {
		board := newGrid(t, 2, 2)
		require.NoError(t, board.Place(0, 1, entity.Cross))

		free := slices.Collect(board.FreeCoordinates())

		assert.Equal(t, []entity.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, free)
	})

	t.Run("Free plus occupied always covers the grid", func(t *testing.T) {
		board := newGrid(t, 4, 3)
		markers := []entity.Marker{entity.Cross, entity.Circle}

		for i := 0; i < 12; i++ {
			free := slices.Collect(board.FreeCoordinates())
			assert.Equal(t, 12, len(free)+board.Occupied())

			at := free[(i*7)%len(free)]
			require.NoError(t, board.Place(at.Row, at.Col, markers[i%2]))
		}

		assert.Empty(t, slices.Collect(board.FreeCoordinates()))
		assert.Equal(t, 12, board.Occupied())
	})

	t.Run("Sequence is restartable and reflects later moves", func(t *testing.T) {
		board := newGrid(t, 2, 1)
		free := board.FreeCoordinates()

		assert.Len(t, slices.Collect(free), 2)

		require.NoError(t, board.Place(0, 0, entity.Circle))

		assert.Equal(t, []entity.Coordinate{{Row: 0, Col: 1}}, slices.Collect(free))
	})
}

func TestGrid_Lines(t *testing.T) {
	// Given: a 3x3 grid with a few markers
	//   x . o
	//   . x .
	//   o . x
	board := newGrid(t, 3, 3)
	require.NoError(t, board.Place(0, 0, entity.Cross))
	require.NoError(t, board.Place(0, 2, entity.Circle))
	require.NoError(t, board.Place(1, 1, entity.Cross))
	require.NoError(t, board.Place(2, 0, entity.Circle))
	require.NoError(t, board.Place(2, 2, entity.Cross))

	none := entity.MarkerNone

	row, err := board.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []entity.Marker{entity.Cross, none, entity.Circle}, row)

	col, err := board.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []entity.Marker{entity.Circle, none, entity.Cross}, col)

	falling, err := board.Diagonal(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []entity.Marker{entity.Cross, entity.Cross, entity.Cross}, falling)

	rising, err := board.Diagonal(2, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []entity.Marker{entity.Circle, entity.Cross, entity.Circle}, rising)

	// When: the row snapshot is modified
	row[1] = entity.Circle

	// Then: the grid is unaffected
	exists, err := board.Exists(0, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = board.Row(3)
	require.ErrorIs(t, err, apperror.ErrOutOfRange)

	_, err = board.Col(-1)
	require.ErrorIs(t, err, apperror.ErrOutOfRange)
}

type recorder struct {
	events []string
}

func (that *recorder) BeforePlace(at entity.Coordinate, marker entity.Marker) {
	that.events = append(that.events, "before-place "+at.String()+" "+marker.Tag())
}

func (that *recorder) AfterPlace(at entity.Coordinate, marker entity.Marker) {
	that.events = append(that.events, "after-place "+at.String()+" "+marker.Tag())
}

func (that *recorder) BeforeRemove(at entity.Coordinate, marker entity.Marker) {
	that.events = append(that.events, "before-remove "+at.String()+" "+marker.Tag())
}

func TestGrid_Attach(t *testing.T) {
	board := newGrid(t, 2, 2)
	renderer := &recorder{}
	board.Attach(renderer)

	require.NoError(t, board.Place(1, 1, entity.Cross))
	require.NoError(t, board.Remove(1, 1))

	assert.Equal(t, []string{
		"before-place 1x1 x",
		"after-place 1x1 x",
		"before-remove 1x1 x",
	}, renderer.events)
}
