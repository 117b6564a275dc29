package model

// Mode is the reasoning mode selected for a task.
type Mode string

const (
	// ModePassive proposes a plan and waits for user confirmation.
	ModePassive Mode = "PASSIVE"
	// ModeDirect executes immediately and reports what was done.
	ModeDirect Mode = "DIRECT"
	// ModeSafe validates the plan against risk criteria before acting.
	ModeSafe Mode = "SAFE"
)

// Status reports the outcome of a reasoning pass.
type Status string

const (
	StatusAwaitingConfirmation Status = "awaiting_confirmation"
	StatusExecuted             Status = "executed"
	StatusApprovedAndExecuted  Status = "approved_and_executed"
	StatusBlocked              Status = "blocked"
	StatusCancelled            Status = "cancelled"
)

// Confirmation records how a pending action was resolved, if at all.
type Confirmation string

const (
	ConfirmationNone     Confirmation = ""
	ConfirmationAccepted Confirmation = "accepted"
	ConfirmationRejected Confirmation = "rejected"
)

// RiskLevel is the classification produced by the SAFE self-validation pass.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Blocking reports whether this risk level forces the SAFE engine to block.
func (r RiskLevel) Blocking() bool {
	return r == RiskHigh || r == RiskCritical
}

// DangerCategory keys the alternative-approach suggestion when SAFE blocks.
type DangerCategory string

const (
	DangerDisableSecurity DangerCategory = "disable_security"
	DangerDelete          DangerCategory = "delete"
	DangerGeneric         DangerCategory = "generic"
)
