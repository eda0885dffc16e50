package cli

import (
	"bytes"
	"context"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRenderer_Render(t *testing.T) {
	board := game.Board{
		game.PlayerX, game.None, game.None,
		game.None, game.PlayerO, game.None,
		game.None, game.None, game.PlayerX,
	}

	t.Run("Update in progress", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewTerminalRenderer(&buf).Render(context.Background(), &proto.ServerToClientMessage{
			Type:   proto.TypeUpdate,
			Board:  board,
			Next:   game.PlayerO,
			Status: game.StatusInProgress,
		})
		require.NoError(t, err)

		want := "\n" +
			" X | 1 | 2 \n" +
			"---+---+---\n" +
			" 3 | O | 5 \n" +
			"---+---+---\n" +
			" 6 | 7 | X \n" +
			"Next: O\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("Finished game shows the message", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewTerminalRenderer(&buf).Render(context.Background(), &proto.ServerToClientMessage{
			Type:    proto.TypeUpdate,
			Board:   board,
			Status:  game.StatusWon,
			Winner:  game.PlayerX,
			Message: "X wins.",
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "X wins.\n")
		assert.NotContains(t, buf.String(), "Next:")
	})

	t.Run("Rejection shows the reason", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewTerminalRenderer(&buf).Render(context.Background(), &proto.ServerToClientMessage{
			Type:   proto.TypeError,
			Board:  board,
			Reason: "illegal move: cell 4 is occupied",
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Rejected: illegal move: cell 4 is occupied\n")
	})
}
