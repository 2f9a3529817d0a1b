package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/grid"
)

func boardWith(t *testing.T, width, height int, moves map[entity.Coordinate]entity.Marker) *grid.Grid {
	t.Helper()

	board, err := grid.New(width, height)
	require.NoError(t, err)

	for at, marker := range moves {
		require.NoError(t, board.Place(at.Row, at.Col, marker))
	}

	return board
}

func TestHasWinningRun(t *testing.T) {
	x, o := entity.Cross, entity.Circle

	t.Run("Row win on a classic board", func(t *testing.T) {
		// Given: x holds the whole top row, o two cells below
		board := boardWith(t, 3, 3, map[entity.Coordinate]entity.Marker{
			{Row: 0, Col: 0}: x, {Row: 0, Col: 1}: x, {Row: 0, Col: 2}: x,
			{Row: 1, Col: 0}: o, {Row: 1, Col: 1}: o,
		})

		// Then: x wins and o does not
		won, err := HasWinningRun(board, 3, x)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = HasWinningRun(board, 3, o)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("Column win", func(t *testing.T) {
		board := boardWith(t, 3, 4, map[entity.Coordinate]entity.Marker{
			{Row: 1, Col: 2}: o, {Row: 2, Col: 2}: o, {Row: 3, Col: 2}: o,
		})

		won, err := HasWinningRun(board, 3, o)
		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("Falling diagonal shorter than the board", func(t *testing.T) {
		// Given: 5x5 board with x on (0,0)..(3,3)
		board := boardWith(t, 5, 5, map[entity.Coordinate]entity.Marker{
			{Row: 0, Col: 0}: x, {Row: 1, Col: 1}: x, {Row: 2, Col: 2}: x, {Row: 3, Col: 3}: x,
		})

		// Then: four in a row wins, five does not
		won, err := HasWinningRun(board, 4, x)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = HasWinningRun(board, 5, x)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("Rising diagonal away from the corner", func(t *testing.T) {
		// Given: o on (4,1), (3,2), (2,3)
		board := boardWith(t, 5, 5, map[entity.Coordinate]entity.Marker{
			{Row: 4, Col: 1}: o, {Row: 3, Col: 2}: o, {Row: 2, Col: 3}: o,
		})

		won, err := HasWinningRun(board, 3, o)
		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("Interrupted run does not count", func(t *testing.T) {
		board := boardWith(t, 5, 1, map[entity.Coordinate]entity.Marker{
			{Row: 0, Col: 0}: x, {Row: 0, Col: 1}: x, {Row: 0, Col: 2}: o, {Row: 0, Col: 3}: x, {Row: 0, Col: 4}: x,
		})

		won, err := HasWinningRun(board, 3, x)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		board := boardWith(t, 3, 3, nil)

		_, err := HasWinningRun(board, 0, x)
		require.ErrorIs(t, err, apperror.ErrInvalidArgument)

		_, err = HasWinningRun(board, 3, entity.MarkerNone)
		require.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}

func TestWinningMarker(t *testing.T) {
	x, o := entity.Cross, entity.Circle

	t.Run("No winner on a mixed board", func(t *testing.T) {
		// Given: a full board without three in a row
		//   x o x
		//   x o o
		//   o x x
		board := boardWith(t, 3, 3, map[entity.Coordinate]entity.Marker{
			{Row: 0, Col: 0}: x, {Row: 0, Col: 1}: o, {Row: 0, Col: 2}: x,
			{Row: 1, Col: 0}: x, {Row: 1, Col: 1}: o, {Row: 1, Col: 2}: o,
			{Row: 2, Col: 0}: o, {Row: 2, Col: 1}: x, {Row: 2, Col: 2}: x,
		})

		_, err := WinningMarker(board, 3, []entity.Marker{x, o})
		require.ErrorIs(t, err, apperror.ErrNoWinner)

		won, err := HasAnyWinningRun(board, 3, []entity.Marker{x, o})
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("First marker in order wins when both have a run", func(t *testing.T) {
		// Given: a board where both markers have two in a row
		board := boardWith(t, 3, 2, map[entity.Coordinate]entity.Marker{
			{Row: 0, Col: 0}: x, {Row: 0, Col: 1}: x,
			{Row: 1, Col: 0}: o, {Row: 1, Col: 1}: o,
		})

		winner, err := WinningMarker(board, 2, []entity.Marker{o, x})
		require.NoError(t, err)
		assert.Equal(t, o, winner)

		winner, err = WinningMarker(board, 2, []entity.Marker{x, o})
		require.NoError(t, err)
		assert.Equal(t, x, winner)

		won, err := HasAnyWinningRun(board, 2, []entity.Marker{x, o})
		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("Empty marker list", func(t *testing.T) {
		board := boardWith(t, 3, 3, nil)

		_, err := WinningMarker(board, 3, nil)
		require.ErrorIs(t, err, apperror.ErrInvalidArgument)

		_, err = HasAnyWinningRun(board, 3, nil)
		require.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}
