package model

import (
	"context"
	"time"
)

// HistoryEntry is one turn of the conversation: the raw input, the context it
// arrived with, and the result produced for it.
type HistoryEntry struct {
	ID           string      `json:"id"`
	Input        string      `json:"input"`
	Context      TaskContext `json:"context"`
	Result       Result      `json:"result"`
	Timestamp    time.Time   `json:"timestamp"`
	ModeSelected Mode        `json:"mode_selected"`
}

// PendingAction is the single outstanding request awaiting user confirmation.
// A session holds at most one; any new turn resolves it before or instead of
// creating another.
type PendingAction struct {
	Mode            Mode        `json:"mode"`
	OriginalInput   string      `json:"original_input"`
	OriginalContext TaskContext `json:"original_context"`
	CreatedAt       time.Time   `json:"created_at"`
}

// SessionSummary aggregates per-session statistics for export and display.
type SessionSummary struct {
	SessionID          string       `json:"session_id"`
	TotalInteractions  int          `json:"total_interactions"`
	ModesDistribution  map[Mode]int `json:"modes_distribution"`
	TotalConfirmations int          `json:"total_confirmations"`
	HasPendingAction   bool         `json:"has_pending_action"`
	Collaborator       string       `json:"collaborator"`
}

// SessionSnapshot is the read-only view handed to exporters. The core does
// not define a wire format; exporters serialize this however they like.
type SessionSnapshot struct {
	SessionID  string         `json:"session_id"`
	ExportedAt time.Time      `json:"exported_at"`
	Summary    SessionSummary `json:"summary"`
	History    []HistoryEntry `json:"conversation"`
}

// ArchivedTurn is the flattened record persisted by a SessionArchive. It
// keeps only the fields needed to reconstruct an audit trail; the full typed
// result stays in process memory.
type ArchivedTurn struct {
	ID            string    `json:"id"`
	Input         string    `json:"input"`
	Mode          Mode      `json:"mode"`
	Status        Status    `json:"status"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	InteractionID int       `json:"interaction_id"`
}

// ArchiveTurn flattens a history entry for persistence.
func ArchiveTurn(e HistoryEntry) ArchivedTurn {
	meta := e.Result.Meta()
	return ArchivedTurn{
		ID:            e.ID,
		Input:         e.Input,
		Mode:          e.ModeSelected,
		Status:        meta.Status,
		Message:       meta.Message,
		Timestamp:     e.Timestamp,
		InteractionID: meta.InteractionID,
	}
}

// SessionArchive persists session turns outside the process. Implementations
// must tolerate being called best-effort: the session layer logs archive
// failures but never fails a turn on them.
type SessionArchive interface {
	// AppendTurn appends one flattened turn to the archive for a session.
	AppendTurn(ctx context.Context, sessionID string, turn ArchivedTurn) error

	// LoadTurns returns all archived turns for a session, oldest first.
	LoadTurns(ctx context.Context, sessionID string) ([]ArchivedTurn, error)

	// Clear removes every archived turn for a session.
	Clear(ctx context.Context, sessionID string) error

	// TurnCount returns the number of archived turns for a session.
	TurnCount(ctx context.Context, sessionID string) (int, error)
}
