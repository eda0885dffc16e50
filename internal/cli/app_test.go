package cli

import (
	"bytes"
	"context"
	"ctchen222/tictactoe-engine/internal/config"
	"ctchen222/tictactoe-engine/internal/session"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func runApp(t *testing.T, conf *config.Config, input string) (string, error) {
	t.Helper()
	out := &lockedBuffer{}
	err := NewApp(conf, strings.NewReader(input), out).Run(context.Background())
	return out.String(), err
}

func TestApp_TwoPlayers(t *testing.T) {
	conf := &config.Config{Mode: string(session.ModeTwoPlayer), Difficulty: "medium"}

	out, err := runApp(t, conf, "4\n4\n0\nquit\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Mode: two players.")
	assert.Contains(t, out, "Rejected: illegal move: cell already occupied: 4")
	assert.Contains(t, out, " O | 1 | 2 \n")
	assert.True(t, strings.HasSuffix(out, "Next: X\n"), "last render should hand the turn back to X")
}

func TestApp_UnknownCommand(t *testing.T) {
	conf := &config.Config{Mode: string(session.ModeTwoPlayer)}

	out, err := runApp(t, conf, "fly\n")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown command")
	assert.Contains(t, out, "(type help)")
}

func TestApp_ModeSwitch(t *testing.T) {
	conf := &config.Config{Mode: string(session.ModeTwoPlayer), Difficulty: "medium"}

	t.Run("Explicit level", func(t *testing.T) {
		out, err := runApp(t, conf, "mode computer easy\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Mode: computer (easy). You play X.")
	})

	t.Run("Level from config", func(t *testing.T) {
		out, err := runApp(t, conf, "mode computer\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Mode: computer (medium). You play X.")
	})

	t.Run("Back to two players", func(t *testing.T) {
		out, err := runApp(t, conf, "mode computer hard\nmode two_player\n")
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out, "Mode: two players."))
	})
}

func TestApp_IllegalConfiguration(t *testing.T) {
	conf := &config.Config{Mode: "online"}

	_, err := runApp(t, conf, "quit\n")
	require.ErrorIs(t, err, session.ErrIllegalConfiguration)
}

func TestApp_ComputerReply(t *testing.T) {
	conf := &config.Config{
		Mode:       string(session.ModeComputer),
		Difficulty: "hard",
		ReplyDelay: 10 * time.Millisecond,
	}
	in, w := io.Pipe()
	out := &lockedBuffer{}

	done := make(chan error, 1)
	go func() {
		done <- NewApp(conf, in, out).Run(context.Background())
	}()

	_, err := io.WriteString(w, "4\n")
	require.NoError(t, err)

	// The optimal reply to the center is the first corner.
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), " O | 1 | 2 \n")
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, w.Close())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("app did not stop after input closed")
	}
}
