package bot

import (
	"ctchen222/tictactoe-engine/internal/game"
	"errors"
	"fmt"
)

// Difficulty selects the strategy the computer plays with.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Strategy picks a cell for mark on board. Implementations receive their own
// copy of the board and may use it as scratch space. ok is false only when
// the board has no empty cell.
type Strategy interface {
	SelectMove(board game.Board, mark game.PlayerMark) (index int, ok bool)
}

// ParseDifficulty maps user input onto one of the three difficulties.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// NewStrategy returns the strategy for the given difficulty.
func NewStrategy(difficulty Difficulty) (Strategy, error) {
	switch difficulty {
	case Easy:
		return &RandomStrategy{}, nil
	case Medium:
		return &HeuristicStrategy{}, nil
	case Hard:
		return &OptimalStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}
