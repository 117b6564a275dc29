// Package agent exposes the public surface of the reasoning agent: a facade
// over mode selection, the three reasoning engines and the session state
// machine. Callers construct one Agent per conversation.
package agent

import (
	"context"

	"github.com/martin-core-poc/agent/internal/agent/export"
	"github.com/martin-core-poc/agent/internal/agent/llm"
	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/policy"
	"github.com/martin-core-poc/agent/internal/agent/reasoning"
	"github.com/martin-core-poc/agent/internal/agent/selector"
	"github.com/martin-core-poc/agent/internal/agent/session"
	logx "github.com/martin-core-poc/agent/pkg/logger"
)

// Config wires the agent's collaborators. Every field is optional: a nil
// Collaborator runs the agent in simulated mode, a nil Archive disables
// persistence, and an empty Company falls back to generic policy wording.
type Config struct {
	Collaborator llm.Collaborator
	Archive      model.SessionArchive
	Company      model.CompanyContext
}

// Agent is the conversation entry point.
type Agent struct {
	controller *session.Controller
}

// New assembles the pipeline: scorer-backed selector, policy generator,
// reasoning dispatcher and session controller.
func New(cfg Config) (*Agent, error) {
	policies, err := policy.NewGenerator()
	if err != nil {
		return nil, err
	}

	sel := selector.New()
	dispatcher := reasoning.New(cfg.Collaborator, policies, cfg.Company)
	controller := session.NewController(sel, dispatcher, cfg.Archive)

	logx.Info().
		Str("session_id", controller.SessionID()).
		Str("collaborator", dispatcher.CollaboratorName()).
		Msg("agent initialised")
	return &Agent{controller: controller}, nil
}

// Process handles one user turn: it resolves any pending confirmation first,
// then selects a mode for fresh input and dispatches to the matching engine.
func (a *Agent) Process(ctx context.Context, input string, taskCtx model.TaskContext) model.Result {
	return a.controller.Process(ctx, input, taskCtx)
}

// ConfirmPending accepts or rejects the pending action without a textual
// turn. It errors when nothing is pending.
func (a *Agent) ConfirmPending(ctx context.Context, accept bool) (model.Result, error) {
	return a.controller.ConfirmPending(ctx, accept)
}

// History returns a copy of the conversation so far, oldest first.
func (a *Agent) History() []model.HistoryEntry {
	return a.controller.History()
}

// PendingAction returns the action awaiting confirmation, or nil.
func (a *Agent) PendingAction() *model.PendingAction {
	return a.controller.PendingAction()
}

// SessionSummary aggregates interaction counts, mode distribution and
// confirmation totals for the session.
func (a *Agent) SessionSummary() model.SessionSummary {
	return a.controller.Summary()
}

// ExplainLastDecision describes why the selector chose the last mode.
func (a *Agent) ExplainLastDecision() string {
	return a.controller.ExplainLastDecision()
}

// DecisionLog returns the selector's full audit trail for the session.
func (a *Agent) DecisionLog() []model.DecisionRecord {
	return a.controller.DecisionLog()
}

// SessionID returns the current session identifier.
func (a *Agent) SessionID() string {
	return a.controller.SessionID()
}

// Export serialises the session in the given format.
func (a *Agent) Export(format export.Format) ([]byte, error) {
	return export.Export(a.controller.Snapshot(), format)
}

// Reset wipes history, pending state and archived turns, and starts a new
// session id.
func (a *Agent) Reset(ctx context.Context) {
	a.controller.Reset(ctx)
}
