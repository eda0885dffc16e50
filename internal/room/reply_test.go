package room

import (
	"context"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/session"
	"ctchen222/tictactoe-engine/pkg/proto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardRenderer struct{}

func (discardRenderer) Render(context.Context, *proto.ServerToClientMessage) error { return nil }

func TestHandleComputerReply_StaleReplyKeepsCurrentTimer(t *testing.T) {
	sess, err := session.Start(session.Options{Mode: session.ModeComputer, Difficulty: bot.Hard})
	require.NoError(t, err)
	r, err := NewRoom(sess, discardRenderer{}, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() {
		if r.pending != nil {
			r.pending.Stop()
		}
	})

	ctx := context.Background()
	move := func(index int) proto.ClientToServerMessage {
		return proto.ClientToServerMessage{Type: proto.TypeMove, Position: &index}
	}

	// Given: a reply armed in the first round, then a reset and a reply armed in the second
	require.NoError(t, r.HandleMessage(ctx, move(4)))
	staleRound := sess.Round
	require.NoError(t, r.HandleMessage(ctx, proto.ClientToServerMessage{Type: proto.TypeReset}))
	assert.Nil(t, r.pending)
	require.NoError(t, r.HandleMessage(ctx, move(4)))
	live := r.pending
	require.NotNil(t, live)

	// When: the first round's reply arrives
	r.handleComputerReply(ctx, staleRound)

	// Then: it is dropped and the current timer is still reachable
	assert.Same(t, live, r.pending)
	assert.Equal(t, game.None, sess.Snapshot().Board[0])

	// When: the current round's reply arrives
	r.handleComputerReply(ctx, sess.Round)

	// Then: the computer plays and the timer is released
	assert.Nil(t, r.pending)
	assert.Equal(t, game.PlayerO, sess.Snapshot().Board[0])
}
