package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/inarow/internal/entity"
)

var ErrRoundsNotFound = errors.New("rounds not found")

// RoundRepository - history of finished rounds grouped by match.
type RoundRepository interface {
	Save(ctx context.Context, matchID string, result *entity.RoundResult) error
	ListByMatchID(ctx context.Context, matchID string) ([]*entity.RoundResult, error)
	DeleteByMatchID(ctx context.Context, matchID string) error
}

type dbRound struct {
	client *redis.Client
}

func NewRoundRepository(client *redis.Client) RoundRepository {
	return &dbRound{
		client: client,
	}
}

func roundsKey(matchID string) string {
	return "match:" + matchID + ":rounds"
}

// Save - appends the result to the match history, keeping the round order.
func (that *dbRound) Save(ctx context.Context, matchID string, result *entity.RoundResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal round: %w", err)
	}

	if err = that.client.RPush(ctx, roundsKey(matchID), resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to push round: %w", err)
	}

	return nil
}

func (that *dbRound) ListByMatchID(ctx context.Context, matchID string) ([]*entity.RoundResult, error) {
	response, err := that.client.LRange(ctx, roundsKey(matchID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds by match id: %w", err)
	}

	if len(response) == 0 {
		return nil, ErrRoundsNotFound
	}

	results := make([]*entity.RoundResult, 0, len(response))
	for _, item := range response {
		var result entity.RoundResult
		if err = json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}

func (that *dbRound) DeleteByMatchID(ctx context.Context, matchID string) error {
	if err := that.client.Del(ctx, roundsKey(matchID)).Err(); err != nil {
		return fmt.Errorf("failed to delete rounds by match id: %w", err)
	}

	return nil
}
