package cli

import (
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/session"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandKind int

const (
	CommandMessage CommandKind = iota
	CommandMode
	CommandHelp
	CommandQuit
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is one parsed input line.
type Command struct {
	Kind    CommandKind
	Message proto.ClientToServerMessage
	Options session.Options
}

// ParseCommand turns an input line into a command. A bare number is a move;
// a line starting with '{' is decoded as a raw client message.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	if strings.HasPrefix(line, "{") {
		var msg proto.ClientToServerMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrUnknownCommand, err)
		}
		return Command{Kind: CommandMessage, Message: msg}, nil
	}

	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	case "h", "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "r", "reset":
		return Command{Kind: CommandMessage, Message: proto.ClientToServerMessage{Type: proto.TypeReset}}, nil
	case "mode":
		return parseMode(fields[1:])
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) > 1 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	return Command{Kind: CommandMessage, Message: proto.ClientToServerMessage{Type: proto.TypeMove, Position: &index}}, nil
}

func parseMode(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: mode needs two_player or computer", ErrUnknownCommand)
	}

	switch args[0] {
	case "two", "two_player", "2p":
		return Command{Kind: CommandMode, Options: session.Options{Mode: session.ModeTwoPlayer}}, nil
	case "computer", "cpu", "ai":
		opts := session.Options{Mode: session.ModeComputer}
		if len(args) > 1 {
			difficulty, err := bot.ParseDifficulty(args[1])
			if err != nil {
				return Command{}, err
			}
			opts.Difficulty = difficulty
		}
		return Command{Kind: CommandMode, Options: opts}, nil
	default:
		return Command{}, fmt.Errorf("%w: mode %q", ErrUnknownCommand, args[0])
	}
}
