// Package session owns the conversation state: the append-only history, the
// single pending-action slot, and the confirmation state machine that decides
// whether a turn confirms, rejects, or replaces a pending action.
//
// A Controller serves one conversation and is not safe for concurrent use;
// callers serving concurrent sessions give each its own Controller and
// serialise calls per session.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/reasoning"
	"github.com/martin-core-poc/agent/internal/agent/selector"
	errx "github.com/martin-core-poc/agent/internal/core/error"
	logx "github.com/martin-core-poc/agent/pkg/logger"
)

const sessionIDLayout = "20060102_150405"

// Controller runs the full pipeline for each turn and maintains session
// state. The pending-action invariant holds throughout: at most one pending
// action exists, and every new turn resolves an existing one (confirmation,
// rejection, or silent replacement) before a new one can be created.
type Controller struct {
	selector   *selector.ModeSelector
	dispatcher *reasoning.Dispatcher
	archive    model.SessionArchive // optional, best-effort

	sessionID string
	history   []model.HistoryEntry
	pending   *model.PendingAction

	now   func() time.Time
	newID func() string
}

// NewController builds a controller with a fresh session id. The archive may
// be nil; archiving is then skipped entirely.
func NewController(sel *selector.ModeSelector, dispatcher *reasoning.Dispatcher, archive model.SessionArchive) *Controller {
	c := &Controller{
		selector:   sel,
		dispatcher: dispatcher,
		archive:    archive,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	c.sessionID = c.now().Format(sessionIDLayout)
	return c
}

// SessionID returns the current session identifier.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Process handles one user turn. In order: resolve any pending action
// (confirmation / rejection / silent discard), then run the selection and
// dispatch pipeline for new input. Every turn is appended to history.
func (c *Controller) Process(ctx context.Context, input string, taskCtx model.TaskContext) model.Result {
	if c.pending != nil {
		switch {
		case IsConfirmation(input):
			logx.Debug().Msg("confirmation detected; executing pending action")
			return c.acceptPending(ctx, input, taskCtx)
		case IsRejection(input):
			logx.Debug().Msg("rejection detected; cancelling pending action")
			return c.rejectPending(ctx, input, taskCtx)
		default:
			// Neither: the stale pending action is dropped without a
			// confirmation record and the turn is processed fresh.
			logx.Debug().Msg("new query while awaiting confirmation; discarding pending action")
			c.pending = nil
		}
	}

	mode := c.selector.SelectMode(input, taskCtx)
	result := c.dispatcher.Dispatch(ctx, mode, input, taskCtx)
	result.Meta().ModeExplanation = c.selector.ExplainLastDecision()

	if result.Meta().RequiresUserAction {
		c.pending = &model.PendingAction{
			Mode:            mode,
			OriginalInput:   input,
			OriginalContext: taskCtx,
			CreatedAt:       c.now(),
		}
		logx.Debug().Str("mode", string(mode)).Msg("pending action stored, awaiting confirmation")
	}

	c.record(ctx, input, taskCtx, result, mode)
	return result
}

// ConfirmPending resolves the pending action programmatically, as a front end
// button would. It fails with an invalid-reference error when nothing is
// pending.
func (c *Controller) ConfirmPending(ctx context.Context, accept bool) (model.Result, error) {
	if c.pending == nil {
		return nil, errx.NewInvalidReference(fmt.Errorf("no pending action"))
	}
	if accept {
		return c.acceptPending(ctx, "yes", c.pending.OriginalContext), nil
	}
	return c.rejectPending(ctx, "no", c.pending.OriginalContext), nil
}

// acceptPending re-runs the pending action through the DIRECT engine with
// its original input and context.
func (c *Controller) acceptPending(ctx context.Context, input string, taskCtx model.TaskContext) model.Result {
	pending := *c.pending
	c.pending = nil

	result := c.dispatcher.Direct(ctx, pending.OriginalInput, pending.OriginalContext)
	result.Confirmation = model.ConfirmationAccepted
	result.ModeExplanation = fmt.Sprintf("action previously pending in %s mode confirmed by user; executing", pending.Mode)

	c.record(ctx, input, taskCtx, result, result.Mode)
	return result
}

// rejectPending cancels the pending action.
func (c *Controller) rejectPending(ctx context.Context, input string, taskCtx model.TaskContext) model.Result {
	pending := *c.pending
	c.pending = nil

	result := &model.CancelledResult{
		ResultMeta: model.ResultMeta{
			Mode:               pending.Mode,
			Status:             model.StatusCancelled,
			Message:            "Action cancelled by the user.\n\nWhat else can I help you with?",
			RequiresUserAction: false,
			Confirmation:       model.ConfirmationRejected,
			ModeExplanation:    "user rejected the pending action",
		},
	}

	c.record(ctx, input, taskCtx, result, pending.Mode)
	return result
}

// record stamps result metadata, appends the turn to history and mirrors it
// to the archive. Archive failures are logged and swallowed: persistence is
// best-effort and never fails a turn.
func (c *Controller) record(ctx context.Context, input string, taskCtx model.TaskContext, result model.Result, mode model.Mode) {
	meta := result.Meta()
	meta.Timestamp = c.now()
	meta.InteractionID = len(c.history)

	entry := model.HistoryEntry{
		ID:           c.newID(),
		Input:        input,
		Context:      taskCtx,
		Result:       result,
		Timestamp:    meta.Timestamp,
		ModeSelected: mode,
	}
	c.history = append(c.history, entry)

	if c.archive == nil {
		return
	}
	if err := c.archive.AppendTurn(ctx, c.sessionID, model.ArchiveTurn(entry)); err != nil {
		logx.Warn().Err(err).Str("session_id", c.sessionID).Msg("failed to archive turn")
	}
}

// History returns a copy of the conversation history, oldest first.
func (c *Controller) History() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}

// PendingAction returns a copy of the pending action, or nil when none.
func (c *Controller) PendingAction() *model.PendingAction {
	if c.pending == nil {
		return nil
	}
	pending := *c.pending
	return &pending
}

// ExplainLastDecision exposes the selector's most recent decision.
func (c *Controller) ExplainLastDecision() string {
	return c.selector.ExplainLastDecision()
}

// DecisionLog exposes the selector's audit log.
func (c *Controller) DecisionLog() []model.DecisionRecord {
	return c.selector.DecisionLog()
}

// Summary aggregates the session statistics.
func (c *Controller) Summary() model.SessionSummary {
	modes := make(map[model.Mode]int)
	confirmations := 0
	for _, entry := range c.history {
		modes[entry.ModeSelected]++
		if entry.Result.Meta().Confirmation != model.ConfirmationNone {
			confirmations++
		}
	}
	return model.SessionSummary{
		SessionID:          c.sessionID,
		TotalInteractions:  len(c.history),
		ModesDistribution:  modes,
		TotalConfirmations: confirmations,
		HasPendingAction:   c.pending != nil,
		Collaborator:       c.dispatcher.CollaboratorName(),
	}
}

// Snapshot produces the read-only view handed to exporters.
func (c *Controller) Snapshot() model.SessionSnapshot {
	return model.SessionSnapshot{
		SessionID:  c.sessionID,
		ExportedAt: c.now(),
		Summary:    c.Summary(),
		History:    c.History(),
	}
}

// Reset clears history, pending action and the decision log, drops the
// archived turns for the old session, and issues a new session id.
func (c *Controller) Reset(ctx context.Context) {
	if c.archive != nil {
		if err := c.archive.Clear(ctx, c.sessionID); err != nil {
			logx.Warn().Err(err).Str("session_id", c.sessionID).Msg("failed to clear session archive")
		}
	}

	c.history = nil
	c.pending = nil
	c.selector.Reset()
	c.sessionID = c.now().Format(sessionIDLayout)
	logx.Info().Str("session_id", c.sessionID).Msg("session reset")
}
