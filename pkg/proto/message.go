package proto

import (
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/session"
)

// Message types
const (
	TypeMove   = "move"
	TypeReset  = "reset"
	TypeUpdate = "update"
	TypeError  = "error"
)

// ClientToServerMessage represents a message from the collaborator to the engine.
type ClientToServerMessage struct {
	Type     string `json:"type" validate:"required,oneof=move reset"`
	Position *int   `json:"position,omitempty" validate:"required_if=Type move"`
}

// ServerToClientMessage represents a message from the engine to the collaborator.
type ServerToClientMessage struct {
	Type      string          `json:"type" validate:"required"`
	SessionID string          `json:"sessionId,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Board     game.Board      `json:"board"`
	Next      game.PlayerMark `json:"next,omitempty"`
	Status    game.Status     `json:"status,omitempty"`
	Winner    game.PlayerMark `json:"winner,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// NewUpdate builds an update message from a session snapshot.
func NewUpdate(snap session.Snapshot) *ServerToClientMessage {
	msg := &ServerToClientMessage{
		Type:      TypeUpdate,
		SessionID: snap.SessionID,
		Board:     snap.Board,
		Status:    snap.Status,
		Winner:    snap.Winner,
		Message:   snap.Message,
	}
	if snap.Status == game.StatusInProgress {
		msg.Next = snap.Next
	}
	return msg
}

// NewError builds a rejection message that still carries the unchanged board.
func NewError(snap session.Snapshot, err error) *ServerToClientMessage {
	msg := NewUpdate(snap)
	msg.Type = TypeError
	msg.Reason = err.Error()
	return msg
}
