package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Status classifies the game after the last applied move.
type Status string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game statuses
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"

	// Board boundaries
	CellMin = 0
	CellMax = 8
)

var (
	// ErrIllegalMove is the single recoverable error kind of the engine.
	// Every rejected move wraps it.
	ErrIllegalMove = errors.New("illegal move")

	ErrGameFinished = fmt.Errorf("%w: game already finished", ErrIllegalMove)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell already occupied", ErrIllegalMove)
)

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Winner      PlayerMark
	Status      Status
}

// NewGame returns an empty game with X to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset reinitializes the game regardless of its previous state.
func (g *Game) Reset() {
	g.Board = Board{}
	g.CurrentTurn = PlayerX
	g.Winner = None
	g.Status = StatusInProgress
}

// Move places the mark of the side to move at index. A rejected move leaves
// the game untouched.
func (g *Game) Move(index int) error {
	if g.Status != StatusInProgress {
		return ErrGameFinished
	}
	if index < CellMin || index > CellMax {
		return fmt.Errorf("%w: %d", ErrInvalidCell, index)
	}
	if g.Board[index] != None {
		return fmt.Errorf("%w: %d", ErrCellOccupied, index)
	}

	mark := g.CurrentTurn
	g.Board[index] = mark

	switch {
	case HasWin(g.Board, mark):
		g.Winner = mark
		g.Status = StatusWon
	case IsFull(g.Board):
		g.Status = StatusDraw
	default:
		g.CurrentTurn = mark.Opponent()
	}
	return nil
}

// Active reports whether moves are still accepted.
func (g *Game) Active() bool {
	return g.Status == StatusInProgress
}

// Message is the human readable status line; empty while the game runs.
func (g *Game) Message() string {
	switch g.Status {
	case StatusWon:
		return fmt.Sprintf("%s wins.", g.Winner)
	case StatusDraw:
		return "Draw."
	default:
		return ""
	}
}
