package session

import (
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/player"
	"ctchen222/tictactoe-engine/internal/validator"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Mode is the opponent configuration of a session.
type Mode string

const (
	ModeTwoPlayer Mode = "two_player"
	ModeComputer  Mode = "computer"
)

var (
	ErrIllegalConfiguration = errors.New("illegal configuration")
	ErrNotYourTurn          = fmt.Errorf("%w: it's the computer's turn", game.ErrIllegalMove)
)

// Options are validated before a session is created.
type Options struct {
	Mode       Mode           `validate:"required,oneof=two_player computer"`
	Difficulty bot.Difficulty `validate:"required_if=Mode computer,omitempty,oneof=easy medium hard"`
}

// Snapshot is a copy of the session state handed to collaborators.
type Snapshot struct {
	SessionID string
	Round     string
	Board     game.Board
	Next      game.PlayerMark
	Status    game.Status
	Winner    game.PlayerMark
	Message   string
}

// Session is a single game session. It owns its game exclusively; every
// mutation goes through ApplyHumanMove, ApplyComputerMove or Reset. A Session
// is not safe for concurrent use.
type Session struct {
	ID         string
	Mode       Mode
	Difficulty bot.Difficulty
	Round      string

	game    *game.Game
	players map[game.PlayerMark]*player.Player
}

// Start validates opts and creates a session. The human always plays X; in
// computer mode the computer plays O.
func Start(opts Options) (*Session, error) {
	if opts.Mode == ModeTwoPlayer {
		opts.Difficulty = ""
	}
	if err := validator.GetValidator().Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIllegalConfiguration, err)
	}

	players := map[game.PlayerMark]*player.Player{
		game.PlayerX: player.NewPlayer(game.PlayerX),
		game.PlayerO: player.NewPlayer(game.PlayerO),
	}
	if opts.Mode == ModeComputer {
		strategy, err := bot.NewStrategy(opts.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIllegalConfiguration, err)
		}
		players[game.PlayerO] = player.NewBotPlayer(game.PlayerO, strategy)
	}

	return &Session{
		ID:         uuid.NewString(),
		Mode:       opts.Mode,
		Difficulty: opts.Difficulty,
		Round:      uuid.NewString(),
		game:       game.NewGame(),
		players:    players,
	}, nil
}

// ApplyHumanMove plays index for the side to move. In computer mode it is
// rejected while the computer is to move.
func (s *Session) ApplyHumanMove(index int) (Snapshot, error) {
	if s.ComputerToMove() {
		return s.Snapshot(), ErrNotYourTurn
	}
	if err := s.game.Move(index); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// ComputerToMove reports whether the game is running and the side to move is
// played by the computer.
func (s *Session) ComputerToMove() bool {
	if !s.game.Active() {
		return false
	}
	p := s.players[s.game.CurrentTurn]
	return p != nil && p.IsBot
}

// ApplyComputerMove lets the computer play in round. It reports false without
// touching the game when round is stale or the computer is not to move.
func (s *Session) ApplyComputerMove(round string) (Snapshot, bool, error) {
	if round != s.Round || !s.ComputerToMove() {
		return s.Snapshot(), false, nil
	}

	p := s.players[s.game.CurrentTurn]
	index, ok := p.Strategy.SelectMove(s.game.Board, p.Mark)
	if !ok {
		return s.Snapshot(), false, nil
	}
	if err := s.game.Move(index); err != nil {
		return s.Snapshot(), false, fmt.Errorf("computer move %d: %w", index, err)
	}
	return s.Snapshot(), true, nil
}

// Reset starts a new round: empty board, X to move. Pending computer replies
// of the previous round become stale.
func (s *Session) Reset() {
	s.game.Reset()
	s.Round = uuid.NewString()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID: s.ID,
		Round:     s.Round,
		Board:     s.game.Board,
		Next:      s.game.CurrentTurn,
		Status:    s.game.Status,
		Winner:    s.game.Winner,
		Message:   s.game.Message(),
	}
}
