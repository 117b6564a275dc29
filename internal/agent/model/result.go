package model

import (
	"time"
)

// Result is the tagged union of reasoning outcomes. Each variant carries a
// fixed field set instead of an ad hoc map, so callers can type-switch and
// the compiler keeps the branches honest.
//
// All variants embed ResultMeta; Meta returns a pointer so the session layer
// can stamp timestamp, explanation and confirmation metadata after dispatch.
type Result interface {
	Meta() *ResultMeta
}

// ResultMeta is the field set common to every result variant.
type ResultMeta struct {
	Mode               Mode         `json:"mode"`
	Status             Status       `json:"status"`
	Message            string       `json:"message"`
	RequiresUserAction bool         `json:"requires_user_action"`
	Confirmation       Confirmation `json:"confirmation,omitempty"`
	ModeExplanation    string       `json:"mode_explanation,omitempty"`
	Timestamp          time.Time    `json:"timestamp"`
	InteractionID      int          `json:"interaction_id"`
}

// Meta implements Result for every embedding variant.
func (m *ResultMeta) Meta() *ResultMeta { return m }

// PassiveResult proposes a plan and waits for the user.
type PassiveResult struct {
	ResultMeta
	Plan string `json:"plan"`
}

// DirectResult reports an executed task; Policy is set when the task matched
// a known policy-generation intent.
type DirectResult struct {
	ResultMeta
	Results string        `json:"results"`
	Policy  *PolicyOutput `json:"policy,omitempty"`
}

// PolicyOutput embeds the policy-template collaborator's document.
type PolicyOutput struct {
	Type     PolicyType `json:"type"`
	Document string     `json:"document"`
}

// SafeApprovedResult passed self-validation and was executed with precautions.
type SafeApprovedResult struct {
	ResultMeta
	Plan             string    `json:"plan"`
	ValidationReport string    `json:"validation_report"`
	RiskLevel        RiskLevel `json:"risk_level"`
	Precautions      []string  `json:"precautions"`
}

// SafeBlockedResult failed self-validation; Alternative carries the suggested
// safer approach for the detected danger category.
type SafeBlockedResult struct {
	ResultMeta
	OriginalPlan     string         `json:"original_plan"`
	ValidationReport string         `json:"validation_report"`
	RiskLevel        RiskLevel      `json:"risk_level"`
	DangerCategory   DangerCategory `json:"danger_category"`
	Alternative      string         `json:"alternative"`
}

// CancelledResult records a pending action the user rejected.
type CancelledResult struct {
	ResultMeta
}
