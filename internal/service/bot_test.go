package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/tictactoe"
	mockedTicTacToe "github.com/rocketscienceinc/inarow/mocks/tictactoe"
)

func TestBotService_NextMove(t *testing.T) {
	ctx := context.Background()
	free := []entity.Coordinate{{Row: 0, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 0}}

	t.Run("Picks one of the free cells", func(t *testing.T) {
		bot := NewBotService(42)

		for range 20 {
			move, err := bot.NextMove(ctx, tictactoe.MovePrompt{}, free)
			require.NoError(t, err)
			assert.Contains(t, free, move)
		}
	})

	t.Run("Same seed gives the same moves", func(t *testing.T) {
		first, second := NewBotService(7), NewBotService(7)

		for range 10 {
			a, err := first.NextMove(ctx, tictactoe.MovePrompt{}, free)
			require.NoError(t, err)

			b, err := second.NextMove(ctx, tictactoe.MovePrompt{}, free)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})

	t.Run("No free cells", func(t *testing.T) {
		_, err := NewBotService(1).NextMove(ctx, tictactoe.MovePrompt{}, nil)
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewBotService(1).NextMove(canceled, tictactoe.MovePrompt{}, free)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPlayerMoves_NextMove(t *testing.T) {
	ctx := context.Background()
	free := []entity.Coordinate{{Row: 0, Col: 0}}

	// Given: x is human and o is a bot
	human := mockedTicTacToe.NewMockMoveSource(t)
	bot := mockedTicTacToe.NewMockMoveSource(t)
	moves := NewPlayerMoves(human, bot, []string{"o"})

	humanPrompt := tictactoe.MovePrompt{Player: &entity.Player{ID: "x", Mark: entity.Cross}, Turn: 1, Attempt: 1}
	botPrompt := tictactoe.MovePrompt{Player: &entity.Player{ID: "o", Mark: entity.Circle}, Turn: 2, Attempt: 1}

	human.EXPECT().NextMove(mock.Anything, humanPrompt, free).Return(entity.Coordinate{}, nil).Once()
	bot.EXPECT().NextMove(mock.Anything, botPrompt, free).Return(entity.Coordinate{}, nil).Once()

	// When: each player is asked for a move
	_, err := moves.NextMove(ctx, humanPrompt, free)
	require.NoError(t, err)

	_, err = moves.NextMove(ctx, botPrompt, free)

	// Then: each turn went to its own source
	require.NoError(t, err)
}
