package room

//go:generate mockgen -destination=mock_room/renderer.go -package=mock_room . Renderer

import (
	"context"
	"ctchen222/tictactoe-engine/internal/session"
	"ctchen222/tictactoe-engine/pkg/proto"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
)

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")

	ErrRoomClosed = errors.New("room closed")
)

// Renderer is the collaborator that shows the board after every change.
type Renderer interface {
	Render(ctx context.Context, msg *proto.ServerToClientMessage) error
}

type request struct {
	ctx     context.Context
	message proto.ClientToServerMessage
	result  chan error
}

// Room serializes everything that touches its session onto one goroutine:
// collaborator requests and deferred computer replies are handled one at a
// time, each to completion.
type Room struct {
	ID         string
	session    *session.Session
	renderer   Renderer
	replyDelay time.Duration
	requests   chan *request
	replies    chan string
	pending    *time.Timer
	metrics    *roomMetrics
	closeOnce  sync.Once
	Done       chan struct{}
}

// NewRoom creates a room around sess. Computer replies are posted replyDelay
// after the human move that triggered them.
func NewRoom(sess *session.Session, renderer Renderer, replyDelay time.Duration) (*Room, error) {
	metrics, err := newRoomMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create room metrics: %w", err)
	}

	return &Room{
		ID:         sess.ID,
		session:    sess,
		renderer:   renderer,
		replyDelay: replyDelay,
		requests:   make(chan *request, 10),
		replies:    make(chan string, 1),
		metrics:    metrics,
		Done:       make(chan struct{}),
	}, nil
}

// Run renders the initial state and processes events until ctx is cancelled
// or the room is closed. The room is closed when Run returns.
func (r *Room) Run(ctx context.Context) {
	defer func() {
		if r.pending != nil {
			r.pending.Stop()
		}
		r.Close()
	}()

	slog.InfoContext(ctx, "Room started", "room.id", r.ID, "mode", r.session.Mode, "difficulty", r.session.Difficulty)
	r.render(ctx, proto.NewUpdate(r.session.Snapshot()))

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Room run loop stopping", "room.id", r.ID, "reason", ctx.Err())
			return

		case <-r.Done:
			slog.InfoContext(ctx, "Room run loop stopping", "room.id", r.ID)
			return

		case req := <-r.requests:
			req.result <- r.HandleMessage(req.ctx, req.message)

		case round := <-r.replies:
			r.handleComputerReply(ctx, round)
		}
	}
}

// Submit hands msg to the run loop and waits for it to be processed.
func (r *Room) Submit(ctx context.Context, msg proto.ClientToServerMessage) error {
	select {
	case <-r.Done:
		return ErrRoomClosed
	default:
	}

	req := &request{ctx: ctx, message: msg, result: make(chan error, 1)}
	select {
	case r.requests <- req:
	case <-r.Done:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.result:
		return err
	case <-r.Done:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Move submits a human move at index.
func (r *Room) Move(ctx context.Context, index int) error {
	return r.Submit(ctx, proto.ClientToServerMessage{Type: proto.TypeMove, Position: &index})
}

// Reset submits a reset of the session.
func (r *Room) Reset(ctx context.Context) error {
	return r.Submit(ctx, proto.ClientToServerMessage{Type: proto.TypeReset})
}

// Close stops the run loop. Pending replies are dropped.
func (r *Room) Close() {
	r.closeOnce.Do(func() { close(r.Done) })
}

// scheduleReply posts a computer reply for round after the reply delay. The
// timer only enqueues; the reply itself runs on the loop goroutine.
func (r *Room) scheduleReply(round string) {
	if r.pending != nil {
		r.pending.Stop()
	}
	r.pending = time.AfterFunc(r.replyDelay, func() {
		select {
		case r.replies <- round:
		case <-r.Done:
		}
	})
}
