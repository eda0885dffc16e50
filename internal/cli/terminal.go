package cli

import (
	"context"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// syncWriter serializes writes from the room goroutine and the input loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// TerminalRenderer draws the board as text.
type TerminalRenderer struct {
	w io.Writer
}

func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: w}
}

// Render implements room.Renderer.
func (t *TerminalRenderer) Render(_ context.Context, msg *proto.ServerToClientMessage) error {
	var b strings.Builder

	b.WriteString("\n")
	for row := range 3 {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}
		for col := range 3 {
			if col > 0 {
				b.WriteString("|")
			}
			idx := row*3 + col
			cell := string(msg.Board[idx])
			if msg.Board[idx] == game.None {
				cell = strconv.Itoa(idx)
			}
			fmt.Fprintf(&b, " %s ", cell)
		}
		b.WriteString("\n")
	}

	switch {
	case msg.Type == proto.TypeError:
		fmt.Fprintf(&b, "Rejected: %s\n", msg.Reason)
	case msg.Message != "":
		fmt.Fprintf(&b, "%s\n", msg.Message)
	default:
		fmt.Fprintf(&b, "Next: %s\n", msg.Next)
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}
