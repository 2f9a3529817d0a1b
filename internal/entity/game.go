package entity

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

// RoundState - state of the turn loop for a single round.
type RoundState string

const (
	StateAwaitingMove RoundState = "awaiting_move"
	StateRoundWon     RoundState = "round_won"
	StateRoundDrawn   RoundState = "round_drawn"
)

// Rules - parameters of a game that stay fixed across rounds.
type Rules struct {
	Width     int
	Height    int
	WinLength int
	Players   []string
}

// RoundResult - outcome of a finished round.
type RoundResult struct {
	Number     int        `json:"number"`
	State      RoundState `json:"state"`
	Winner     Marker     `json:"winner,omitempty"`
	Moves      int        `json:"moves"`
	FinishedAt time.Time  `json:"finished_at"`
}

func (that *RoundResult) IsWon() bool {
	return that.State == StateRoundWon
}

func (that *RoundResult) IsDrawn() bool {
	return that.State == StateRoundDrawn
}

// Message - text shown to the players once the round is over.
func (that *RoundResult) Message() string {
	if that.IsWon() {
		return fmt.Sprintf("The winner is: %s!", that.Winner.Tag())
	}

	return "Draw!"
}

// Scoreboard - aggregate of all rounds of a match.
type Scoreboard struct {
	MatchID string         `json:"match_id"`
	Rounds  int            `json:"rounds"`
	Draws   int            `json:"draws"`
	Wins    map[Marker]int `json:"wins"`
}

func NewScoreboard(matchID string, results []*RoundResult) *Scoreboard {
	board := &Scoreboard{
		MatchID: matchID,
		Wins:    make(map[Marker]int),
	}

	for _, result := range results {
		board.Rounds++

		switch {
		case result.IsWon():
			board.Wins[result.Winner]++
		case result.IsDrawn():
			board.Draws++
		}
	}

	return board
}

// Leaders - markers with the highest win count, ordered by marker kind.
func (that *Scoreboard) Leaders() []Marker {
	best := 0
	for _, wins := range that.Wins {
		best = max(best, wins)
	}

	if best == 0 {
		return nil
	}

	leaders := make([]Marker, 0, len(that.Wins))
	for marker, wins := range that.Wins {
		if wins == best {
			leaders = append(leaders, marker)
		}
	}

	slices.Sort(leaders)

	return leaders
}
