package scoring

import (
	"github.com/martin-core-poc/agent/internal/agent/model"
)

// The SAFE self-validation pass reuses the scorer's keyword families. These
// helpers fold the text themselves so callers can pass raw input.

// DangerHits counts danger-keyword matches in the task.
func DangerHits(task string) int {
	return CountHits(Fold(task), dangerKeywords)
}

// CriticalResourceHits counts critical-resource mentions in the task.
func CriticalResourceHits(task string) int {
	return CountHits(Fold(task), criticalResources)
}

// HasBroadScope reports a broad-scope indicator anywhere in the task.
func HasBroadScope(task string) bool {
	return CountHits(Fold(task), broadScopeIndicators) > 0
}

// HasIrreversibility reports an irreversibility keyword in the task.
func HasIrreversibility(task string) bool {
	return CountHits(Fold(task), irreversibilityKeywords) > 0
}

// Keywords that flip a blocked action into the "disable security" category
// rather than the generic destructive one.
var disableSecurityKeywords = []string{
	"disable", "deshabilitar", "revoke", "block",
}

// Keywords that classify a blocked action as data deletion.
var deleteKeywords = []string{
	"delete", "remove", "destroy", "drop", "eliminar", "borrar", "destruir",
}

// DangerCategoryOf picks the alternative-suggestion category for a task.
// Disable-security wins over delete when both families match.
func DangerCategoryOf(task string) model.DangerCategory {
	folded := Fold(task)
	if CountHits(folded, disableSecurityKeywords) > 0 {
		return model.DangerDisableSecurity
	}
	if CountHits(folded, deleteKeywords) > 0 {
		return model.DangerDelete
	}
	return model.DangerGeneric
}
