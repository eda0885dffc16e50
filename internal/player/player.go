package player

import (
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
)

// Player is one side of a session.
type Player struct {
	Mark     game.PlayerMark
	IsBot    bool
	Strategy bot.Strategy
}

// NewPlayer creates a human player for mark.
func NewPlayer(mark game.PlayerMark) *Player {
	return &Player{Mark: mark}
}

// NewBotPlayer creates a computer player for mark that picks moves with strategy.
func NewBotPlayer(mark game.PlayerMark, strategy bot.Strategy) *Player {
	return &Player{
		Mark:     mark,
		IsBot:    true,
		Strategy: strategy,
	}
}
