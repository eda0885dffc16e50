package room

import (
	"context"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/validator"
	"ctchen222/tictactoe-engine/pkg/proto"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage handles a message from the collaborator. It acts as a
// dispatcher and must only be called from the run loop.
func (r *Room) HandleMessage(ctx context.Context, message proto.ClientToServerMessage) error {
	ctx, span := tracer.Start(ctx, "room.HandleMessage", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("message.type", message.Type),
	))
	defer span.End()

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message", "room.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		return fmt.Errorf("invalid message: %w", err)
	}

	switch message.Type {
	case proto.TypeMove:
		return r.handleMove(ctx, *message.Position)
	case proto.TypeReset:
		r.handleReset(ctx)
	}
	return nil
}

// handleMove applies a human move and schedules the computer reply if the
// computer is next.
func (r *Room) handleMove(ctx context.Context, index int) error {
	ctx, span := tracer.Start(ctx, "room.handleMove", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("move.index", index),
	))
	defer span.End()

	snap, err := r.session.ApplyHumanMove(index)
	if err != nil {
		slog.WarnContext(ctx, "illegal move", "room.id", r.ID, "move.index", index, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal move")
		r.render(ctx, proto.NewError(snap, err))
		return err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	r.metrics.recordMove(ctx, "human")

	r.render(ctx, proto.NewUpdate(snap))
	r.recordOutcome(ctx, snap.Status, snap.Winner)

	if r.session.ComputerToMove() {
		slog.DebugContext(ctx, "Computer reply scheduled", "room.id", r.ID, "delay", r.replyDelay)
		r.scheduleReply(snap.Round)
	}
	return nil
}

// handleComputerReply runs a deferred computer move. Replies from a previous
// round are dropped.
func (r *Room) handleComputerReply(ctx context.Context, round string) {
	ctx, span := tracer.Start(ctx, "room.handleComputerReply", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("session.round", round),
	))
	defer span.End()

	snap, applied, err := r.session.ApplyComputerMove(round)
	if err != nil {
		slog.ErrorContext(ctx, "computer move failed", "room.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer move failed")
		return
	}
	if !applied {
		slog.DebugContext(ctx, "Discarding stale computer reply", "room.id", r.ID, "session.round", round)
		span.SetAttributes(attribute.Bool("reply.stale", true))
		r.metrics.recordStaleReply(ctx)
		return
	}
	// A stale reply must not drop the timer armed for the current round.
	r.pending = nil
	r.metrics.recordMove(ctx, "computer")

	r.render(ctx, proto.NewUpdate(snap))
	r.recordOutcome(ctx, snap.Status, snap.Winner)
}

// handleReset starts a new round and invalidates any pending reply.
func (r *Room) handleReset(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "room.handleReset", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
	r.session.Reset()
	slog.InfoContext(ctx, "Session reset", "room.id", r.ID, "session.round", r.session.Round)

	r.render(ctx, proto.NewUpdate(r.session.Snapshot()))
}

func (r *Room) recordOutcome(ctx context.Context, status game.Status, winner game.PlayerMark) {
	if status == game.StatusInProgress {
		return
	}
	slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "status", status, "winner", winner)
	r.metrics.recordFinished(ctx, status, winner)
}

// render sends msg to the collaborator. Rendering failures are logged only.
func (r *Room) render(ctx context.Context, msg *proto.ServerToClientMessage) {
	ctx, span := tracer.Start(ctx, "room.render", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("message.type", msg.Type),
	))
	defer span.End()

	if err := r.renderer.Render(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "error rendering message", "room.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error rendering message")
	}
}
