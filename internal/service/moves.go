package service

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/tictactoe"
)

type playerMoves struct {
	human tictactoe.MoveSource
	bot   tictactoe.MoveSource
	bots  []string
}

// NewPlayerMoves - sends turns of the listed bot players to bot and everyone else to human.
func NewPlayerMoves(human, bot tictactoe.MoveSource, bots []string) tictactoe.MoveSource {
	return &playerMoves{
		human: human,
		bot:   bot,
		bots:  slices.Clone(bots),
	}
}

func (that *playerMoves) NextMove(ctx context.Context, prompt tictactoe.MovePrompt, free []entity.Coordinate) (entity.Coordinate, error) {
	if slices.Contains(that.bots, prompt.Player.ID) {
		return that.bot.NextMove(ctx, prompt, free)
	}

	return that.human.NextMove(ctx, prompt, free)
}
