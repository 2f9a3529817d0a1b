package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/inarow/internal/entity"
)

type memoryRound struct {
	mu      sync.RWMutex
	matches map[string][]entity.RoundResult
}

// NewMemoryRoundRepository - process-local history, lost on exit.
func NewMemoryRoundRepository() RoundRepository {
	return &memoryRound{
		matches: make(map[string][]entity.RoundResult),
	}
}

func (that *memoryRound) Save(_ context.Context, matchID string, result *entity.RoundResult) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[matchID] = append(that.matches[matchID], *result)

	return nil
}

// ListByMatchID - copies of the stored results, callers cannot change the history.
func (that *memoryRound) ListByMatchID(_ context.Context, matchID string) ([]*entity.RoundResult, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	stored := that.matches[matchID]
	if len(stored) == 0 {
		return nil, ErrRoundsNotFound
	}

	results := make([]*entity.RoundResult, 0, len(stored))
	for _, result := range stored {
		results = append(results, &result)
	}

	return results, nil
}

func (that *memoryRound) DeleteByMatchID(_ context.Context, matchID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.matches, matchID)

	return nil
}
