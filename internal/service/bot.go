package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type botService struct {
	random *rand.Rand
}

// NewBotService - move source that picks a random free cell.
func NewBotService(seed int64) tictactoe.MoveSource {
	return &botService{
		random: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *botService) NextMove(ctx context.Context, _ tictactoe.MovePrompt, free []entity.Coordinate) (entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinate{}, fmt.Errorf("bot move: %w", err)
	}

	if len(free) == 0 {
		return entity.Coordinate{}, ErrNoAvailableMoves
	}

	return free[that.random.Intn(len(free))], nil
}
