package cli

import (
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/session"
	"ctchen222/tictactoe-engine/pkg/proto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		wantKind CommandKind
		wantType string
		wantPos  int
		wantOpts session.Options
		wantErr  error
	}{
		{name: "Move", line: "4", wantKind: CommandMessage, wantType: proto.TypeMove, wantPos: 4},
		{name: "Move with spaces", line: "  8 ", wantKind: CommandMessage, wantType: proto.TypeMove, wantPos: 8},
		{name: "Out of range move is left to the engine", line: "9", wantKind: CommandMessage, wantType: proto.TypeMove, wantPos: 9},
		{name: "Reset", line: "reset", wantKind: CommandMessage, wantType: proto.TypeReset},
		{name: "Reset shorthand", line: "R", wantKind: CommandMessage, wantType: proto.TypeReset},
		{name: "Raw message", line: `{"type":"move","position":2}`, wantKind: CommandMessage, wantType: proto.TypeMove, wantPos: 2},
		{name: "Quit", line: "quit", wantKind: CommandQuit},
		{name: "Help", line: "?", wantKind: CommandHelp},
		{name: "Two player mode", line: "mode two_player", wantKind: CommandMode, wantOpts: session.Options{Mode: session.ModeTwoPlayer}},
		{name: "Computer mode", line: "mode computer hard", wantKind: CommandMode, wantOpts: session.Options{Mode: session.ModeComputer, Difficulty: bot.Hard}},
		{name: "Computer mode without level", line: "mode cpu", wantKind: CommandMode, wantOpts: session.Options{Mode: session.ModeComputer}},
		{name: "Empty", line: "   ", wantErr: ErrEmptyCommand},
		{name: "Garbage", line: "hello", wantErr: ErrUnknownCommand},
		{name: "Move with trailing text", line: "4 5", wantErr: ErrUnknownCommand},
		{name: "Broken json", line: `{"type":`, wantErr: ErrUnknownCommand},
		{name: "Mode without argument", line: "mode", wantErr: ErrUnknownCommand},
		{name: "Unknown mode", line: "mode online", wantErr: ErrUnknownCommand},
		{name: "Unknown difficulty", line: "mode computer extreme", wantErr: bot.ErrUnknownDifficulty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := ParseCommand(tc.line)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, cmd.Kind)

			switch tc.wantKind {
			case CommandMessage:
				assert.Equal(t, tc.wantType, cmd.Message.Type)
				if tc.wantType == proto.TypeMove {
					require.NotNil(t, cmd.Message.Position)
					assert.Equal(t, tc.wantPos, *cmd.Message.Position)
				}
			case CommandMode:
				assert.Equal(t, tc.wantOpts, cmd.Options)
			}
		})
	}
}
