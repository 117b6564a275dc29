package model

import (
	"github.com/martin-core-poc/agent/internal/core"
)

// DecisionRecord is an audit entry for one mode-selection decision. Records
// are append-only; they explain decisions but never drive control flow.
type DecisionRecord struct {
	TaskExcerpt  string           `json:"task_excerpt"`
	RiskScore    float64          `json:"risk_score"`
	ClarityScore float64          `json:"clarity_score"`
	Environment  core.Environment `json:"environment"`
	SelectedMode Mode             `json:"selected_mode"`
	Reason       string           `json:"reason"`
}
