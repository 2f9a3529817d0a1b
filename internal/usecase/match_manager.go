package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/repository"
)

type roundPlayerDep interface {
	PlayRound(ctx context.Context) (*entity.RoundResult, error)
	Reset()
}

type roundRepoDep interface {
	Save(ctx context.Context, matchID string, result *entity.RoundResult) error
	ListByMatchID(ctx context.Context, matchID string) ([]*entity.RoundResult, error)
}

type matchViewDep interface {
	ShowResult(result *entity.RoundResult)
	ClearResult()
}

type replayPrompterDep interface {
	PlayAgain(ctx context.Context) (bool, error)
}

// MatchManager - plays rounds until the players stop, keeping the history of every finished round.
type MatchManager struct {
	logger  *slog.Logger
	matchID string

	rounds roundPlayerDep
	repo   roundRepoDep
	view   matchViewDep
	replay replayPrompterDep
}

func NewMatchManager(
	logger *slog.Logger,
	matchID string,
	rounds roundPlayerDep,
	repo roundRepoDep,
	view matchViewDep,
	replay replayPrompterDep,
) *MatchManager {
	return &MatchManager{
		logger:  logger.With("component", "match_manager", "match_id", matchID),
		matchID: matchID,

		rounds: rounds,
		repo:   repo,
		view:   view,
		replay: replay,
	}
}

// Run - plays the match. A canceled move or prompt ends the match normally,
// the scoreboard then covers the rounds finished so far.
func (that *MatchManager) Run(ctx context.Context) (*entity.Scoreboard, error) {
	log := that.logger.With("method", "Run")

	for {
		result, err := that.rounds.PlayRound(ctx)
		if errors.Is(err, apperror.ErrMoveCanceled) {
			log.Info("match interrupted during a round", "error", err)
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to play round: %w", err)
		}

		if err = that.repo.Save(ctx, that.matchID, result); err != nil {
			return nil, fmt.Errorf("failed to save round %d: %w", result.Number, err)
		}

		that.view.ShowResult(result)

		again, err := that.replay.PlayAgain(ctx)
		if errors.Is(err, apperror.ErrMoveCanceled) {
			log.Info("match interrupted at replay prompt", "error", err)
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to ask for another round: %w", err)
		}

		if !again {
			break
		}

		that.rounds.Reset()
		that.view.ClearResult()
	}

	return that.Scoreboard(context.WithoutCancel(ctx))
}

// Scoreboard - summary of the stored history, empty when no round has finished.
func (that *MatchManager) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	results, err := that.repo.ListByMatchID(ctx, that.matchID)
	if errors.Is(err, repository.ErrRoundsNotFound) {
		return entity.NewScoreboard(that.matchID, nil), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}

	return entity.NewScoreboard(that.matchID, results), nil
}
