package room

import (
	"context"
	"ctchen222/tictactoe-engine/internal/game"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type roomMetrics struct {
	moves         metric.Int64Counter
	gamesFinished metric.Int64Counter
	staleReplies  metric.Int64Counter
}

func newRoomMetrics() (*roomMetrics, error) {
	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to a session"),
	)
	if err != nil {
		return nil, err
	}
	gamesFinished, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Games that reached a win or a draw"),
	)
	if err != nil {
		return nil, err
	}
	staleReplies, err := meter.Int64Counter("tictactoe.replies.stale",
		metric.WithDescription("Deferred computer replies discarded after a reset"),
	)
	if err != nil {
		return nil, err
	}

	return &roomMetrics{
		moves:         moves,
		gamesFinished: gamesFinished,
		staleReplies:  staleReplies,
	}, nil
}

func (m *roomMetrics) recordMove(ctx context.Context, side string) {
	m.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("move.side", side)))
}

func (m *roomMetrics) recordFinished(ctx context.Context, status game.Status, winner game.PlayerMark) {
	m.gamesFinished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("game.status", string(status)),
		attribute.String("game.winner", string(winner)),
	))
}

func (m *roomMetrics) recordStaleReply(ctx context.Context) {
	m.staleReplies.Add(ctx, 1)
}
