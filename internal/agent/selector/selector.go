// Package selector applies the mode decision table over the scorer's output.
package selector

import (
	"fmt"
	"strings"

	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/scoring"
	logx "github.com/martin-core-poc/agent/pkg/logger"
)

const taskExcerptLimit = 50

// ModeSelector decides how the agent should reason about a task and keeps an
// append-only log of its decisions for explainability. The log is owned by
// the session: it grows per decision and is emptied only by Reset.
//
// Not safe for concurrent use; the session layer serialises calls.
type ModeSelector struct {
	decisionLog []model.DecisionRecord
}

// New returns a selector with an empty decision log.
func New() *ModeSelector {
	return &ModeSelector{}
}

// SelectMode scores the task and walks the decision table in strict priority
// order. Production and high risk dominate clarity: an unambiguous
// destructive instruction in production still routes to SAFE, never DIRECT.
func (s *ModeSelector) SelectMode(task string, taskCtx model.TaskContext) model.Mode {
	scores := scoring.Score(task, taskCtx)
	env := taskCtx.Env()

	var mode model.Mode
	var reason string

	switch {
	case env.IsProduction():
		mode = model.ModeSafe
		reason = "production environment"
	case scores.Risk >= 0.7:
		mode = model.ModeSafe
		reason = fmt.Sprintf("high risk detected (score: %.2f)", scores.Risk)
	case scores.Clarity < 0.5:
		mode = model.ModePassive
		reason = fmt.Sprintf("ambiguous task, needs clarification (clarity: %.2f)", scores.Clarity)
	case scores.Risk >= 0.4 && scores.Clarity < 0.7:
		mode = model.ModePassive
		reason = fmt.Sprintf("moderate risk with insufficient clarity (risk: %.2f, clarity: %.2f)", scores.Risk, scores.Clarity)
	default:
		mode = model.ModeDirect
		reason = "clear and low-risk task"
	}

	record := model.DecisionRecord{
		TaskExcerpt:  excerpt(task),
		RiskScore:    scores.Risk,
		ClarityScore: scores.Clarity,
		Environment:  env,
		SelectedMode: mode,
		Reason:       reason,
	}
	s.decisionLog = append(s.decisionLog, record)

	logx.Debug().
		Str("mode", string(mode)).
		Float64("risk", scores.Risk).
		Float64("clarity", scores.Clarity).
		Str("environment", env.String()).
		Str("reason", reason).
		Msg("mode selected")

	return mode
}

// DecisionLog returns the recorded decisions, oldest first. The returned
// slice is a copy; callers cannot mutate the log through it.
func (s *ModeSelector) DecisionLog() []model.DecisionRecord {
	out := make([]model.DecisionRecord, len(s.decisionLog))
	copy(out, s.decisionLog)
	return out
}

// LastDecision returns the most recent record, if any.
func (s *ModeSelector) LastDecision() (model.DecisionRecord, bool) {
	if len(s.decisionLog) == 0 {
		return model.DecisionRecord{}, false
	}
	return s.decisionLog[len(s.decisionLog)-1], true
}

// ExplainLastDecision formats the most recent decision for display. It never
// fails: with an empty log it reports that no decisions were recorded.
func (s *ModeSelector) ExplainLastDecision() string {
	last, ok := s.LastDecision()
	if !ok {
		return "No decisions recorded yet"
	}

	var b strings.Builder
	b.WriteString("Mode selector decision\n")
	b.WriteString(strings.Repeat("-", 48) + "\n")
	fmt.Fprintf(&b, "Task: %q\n", last.TaskExcerpt)
	fmt.Fprintf(&b, "Selected mode: %s\n", last.SelectedMode)
	fmt.Fprintf(&b, "Reason: %s\n\n", last.Reason)
	b.WriteString("Factors:\n")
	fmt.Fprintf(&b, "  - risk: %.2f (0=safe, 1=dangerous)\n", last.RiskScore)
	fmt.Fprintf(&b, "  - clarity: %.2f (0=vague, 1=clear)\n", last.ClarityScore)
	fmt.Fprintf(&b, "  - environment: %s\n", last.Environment)
	return b.String()
}

// Reset clears the decision log. Called on session reset only.
func (s *ModeSelector) Reset() {
	s.decisionLog = nil
}

// excerpt trims the task to the audit-log excerpt length.
func excerpt(task string) string {
	runes := []rune(task)
	if len(runes) <= taskExcerptLimit {
		return task
	}
	return string(runes[:taskExcerptLimit]) + "..."
}
