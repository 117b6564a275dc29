package reasoning

import (
	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/scoring"
)

// policyIntentTable maps keyword families to policy types. The task must
// also mention a policy-ish word at all; "change the admin password" is not
// a request for a password policy document.
var policyIntentTable = []struct {
	policyType model.PolicyType
	keywords   []string
}{
	{model.PolicyPassword, []string{"password", "contraseña"}},
	{model.PolicyIncident, []string{"incident", "incidente"}},
	{model.PolicyAccess, []string{"access", "acceso"}},
	{model.PolicyDataClassification, []string{"classification", "clasificación"}},
	{model.PolicyBackup, []string{"backup", "respaldo", "copia de seguridad"}},
}

var policyWords = []string{"policy", "política", "politica", "policies", "políticas"}

// DetectPolicyIntent reports whether the task asks for a known policy
// document, using the scorer's folded substring matching. First table entry
// that matches wins.
func DetectPolicyIntent(task string) (model.PolicyType, bool) {
	folded := scoring.Fold(task)
	if scoring.CountHits(folded, policyWords) == 0 {
		return "", false
	}
	for _, entry := range policyIntentTable {
		if scoring.CountHits(folded, entry.keywords) > 0 {
			return entry.policyType, true
		}
	}
	return "", false
}
