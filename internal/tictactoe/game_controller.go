package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
)

// MoveSource - produces the next coordinate for a player.
// It returns exactly one coordinate or an error; an error ends the round.
type MoveSource interface {
	NextMove(ctx context.Context, prompt MovePrompt, free []entity.Coordinate) (entity.Coordinate, error)
}

// MovePrompt - what the move source needs to ask the player.
type MovePrompt struct {
	Player  *entity.Player
	Turn    int
	Attempt int
	// Rejected - why the previous coordinate was refused, nil on the first attempt.
	Rejected error
}

// GameGrid - the grid operations the turn loop relies on.
type GameGrid interface {
	Board
	Place(row, col int, marker entity.Marker) error
	RemoveAll()
	FreeCoordinates() iter.Seq[entity.Coordinate]
}

type GameController struct {
	logger *slog.Logger

	grid        GameGrid
	moves       MoveSource
	players     []*entity.Player
	markers     []entity.Marker
	winLength   int
	maxAttempts int

	state  entity.RoundState
	rounds int
	now    func() time.Time
}

// NewGameController - validates the rules against the grid and prepares the first round.
// maxAttempts bounds the re-requests per turn, 0 means unbounded.
func NewGameController(logger *slog.Logger, grid GameGrid, moves MoveSource, rules entity.Rules, maxAttempts int) (*GameController, error) {
	if len(rules.Players) == 0 {
		return nil, fmt.Errorf("%w: players cannot be empty", apperror.ErrInvalidArgument)
	}

	if rules.WinLength <= 0 || (rules.WinLength > grid.Height() && rules.WinLength > grid.Width()) {
		return nil, fmt.Errorf("%w: win length %d cannot be out of board range", apperror.ErrInvalidArgument, rules.WinLength)
	}

	if maxAttempts < 0 {
		return nil, fmt.Errorf("%w: max attempts %d cannot be negative", apperror.ErrInvalidArgument, maxAttempts)
	}

	players, err := entity.NewPlayers(rules.Players)
	if err != nil {
		return nil, fmt.Errorf("invalid players: %w", err)
	}

	markers := make([]entity.Marker, 0, len(players))
	for _, player := range players {
		markers = append(markers, player.Mark)
	}

	return &GameController{
		logger:      logger.With("component", "game_controller"),
		grid:        grid,
		moves:       moves,
		players:     players,
		markers:     markers,
		winLength:   rules.WinLength,
		maxAttempts: maxAttempts,
		state:       entity.StateAwaitingMove,
		now:         time.Now,
	}, nil
}

func (that *GameController) State() entity.RoundState {
	return that.state
}

// PlayRound - runs the turn loop until the round is won or drawn.
// The win check runs before every move, so a board that already holds a run ends the round at once.
func (that *GameController) PlayRound(ctx context.Context) (*entity.RoundResult, error) {
	if that.state != entity.StateAwaitingMove {
		return nil, apperror.ErrRoundFinished
	}

	log := that.logger.With("method", "PlayRound", "round", that.rounds+1)

	moves := 0
	for {
		for _, player := range that.players {
			won, err := HasAnyWinningRun(that.grid, that.winLength, that.markers)
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate board: %w", err)
			}

			if won {
				return that.finishWon(log, moves)
			}

			free := slices.Collect(that.grid.FreeCoordinates())
			if len(free) == 0 {
				return that.finishDrawn(log, moves), nil
			}

			if err = that.makeTurn(ctx, log, player, moves+1, free); err != nil {
				return nil, err
			}

			moves++
		}
	}
}

// Reset - clears the grid for the next round.
func (that *GameController) Reset() {
	that.grid.RemoveAll()
	that.state = entity.StateAwaitingMove
}

// makeTurn - asks the move source until the grid accepts a coordinate.
func (that *GameController) makeTurn(ctx context.Context, log *slog.Logger, player *entity.Player, turn int, free []entity.Coordinate) error {
	prompt := MovePrompt{Player: player, Turn: turn}

	for attempt := 1; that.maxAttempts == 0 || attempt <= that.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrMoveCanceled, err)
		}

		prompt.Attempt = attempt

		at, err := that.moves.NextMove(ctx, prompt, free)
		if err != nil {
			return fmt.Errorf("failed to get move for %s: %w", player.ID, err)
		}

		err = that.grid.Place(at.Row, at.Col, player.Mark.Copy())
		if err == nil {
			log.Debug("marker placed", "player", player.ID, "coordinate", at.String(), "turn", turn)
			return nil
		}

		if !errors.Is(err, apperror.ErrCellReserved) && !errors.Is(err, apperror.ErrOutOfRange) {
			return fmt.Errorf("failed to place marker: %w", err)
		}

		log.Warn("coordinate rejected", "player", player.ID, "coordinate", at.String(), "error", err)
		prompt.Rejected = err
	}

	return fmt.Errorf("%w: player %s, turn %d", apperror.ErrTooManyAttempts, player.ID, turn)
}

func (that *GameController) finishWon(log *slog.Logger, moves int) (*entity.RoundResult, error) {
	winner, err := WinningMarker(that.grid, that.winLength, that.markers)
	if err != nil {
		return nil, fmt.Errorf("failed to identify winner: %w", err)
	}

	that.state = entity.StateRoundWon
	that.rounds++
	log.Info("round won", "winner", winner.Tag(), "moves", moves)

	return &entity.RoundResult{
		Number:     that.rounds,
		State:      that.state,
		Winner:     winner,
		Moves:      moves,
		FinishedAt: that.now(),
	}, nil
}

func (that *GameController) finishDrawn(log *slog.Logger, moves int) *entity.RoundResult {
	that.state = entity.StateRoundDrawn
	that.rounds++
	log.Info("round drawn", "moves", moves)

	return &entity.RoundResult{
		Number:     that.rounds,
		State:      that.state,
		Moves:      moves,
		FinishedAt: that.now(),
	}
}
