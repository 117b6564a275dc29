package reasoning

import (
	"fmt"
	"strings"

	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/scoring"
)

// ValidationReport is the structured outcome of the SAFE self-validation
// pass. The verdict is computed locally from the scorer's keyword families;
// it never depends on collaborator availability.
type ValidationReport struct {
	Level          model.RiskLevel
	Rejected       bool
	Risks          []string
	DangerCategory model.DangerCategory
	Alternative    string
	Precautions    []string
}

// classify derives the risk level and risk list from the same keyword
// families as the scorer. Production escalates straight to CRITICAL
// regardless of content. Alternative/precaution fields are filled by
// finalizeReport once any LLM escalation has been merged in.
func classify(task string, taskCtx model.TaskContext) ValidationReport {
	danger := scoring.DangerHits(task)
	critical := scoring.CriticalResourceHits(task)
	broad := scoring.HasBroadScope(task)
	irreversible := scoring.HasIrreversibility(task)

	var level model.RiskLevel
	switch {
	case taskCtx.Env().IsProduction():
		level = model.RiskCritical
	case danger > 0 && (critical > 0 || broad || irreversible):
		level = model.RiskHigh
	case danger > 0:
		level = model.RiskMedium
	case critical > 0 && broad:
		level = model.RiskMedium
	default:
		level = model.RiskLow
	}

	return ValidationReport{
		Level:    level,
		Rejected: level.Blocking(),
		Risks:    identifiedRisks(danger, critical, broad, irreversible, taskCtx),
	}
}

// finalizeReport fills the verdict-dependent fields after escalation: the
// alternative suggestion when rejected, the precaution list when approved.
func finalizeReport(report ValidationReport, task string) ValidationReport {
	if report.Rejected {
		report.DangerCategory = scoring.DangerCategoryOf(task)
		report.Alternative = alternativeFor(report.DangerCategory)
		report.Precautions = nil
	} else {
		report.DangerCategory = ""
		report.Alternative = ""
		report.Precautions = precautionsFor(report.Level)
	}
	return report
}

// identifiedRisks lists the factors that contributed to the verdict.
func identifiedRisks(danger, critical int, broad, irreversible bool, taskCtx model.TaskContext) []string {
	var risks []string
	if taskCtx.Env().IsProduction() {
		risks = append(risks, "operation targets the production environment")
	}
	if danger > 0 {
		risks = append(risks, fmt.Sprintf("potentially destructive action detected (%d keyword match(es))", danger))
	}
	if critical > 0 {
		risks = append(risks, fmt.Sprintf("critical resources mentioned (%d match(es))", critical))
	}
	if broad {
		risks = append(risks, "broad scope: the action may affect everything it can reach")
	}
	if irreversible {
		risks = append(risks, "action is described as irreversible")
	}
	if taskCtx.HasActiveUsers {
		risks = append(risks, "active users are present on the target system")
	}
	if len(risks) == 0 {
		risks = append(risks, "minimal risk detected; operation appears read-only or low criticality")
	}
	return risks
}

// precautionsFor returns the execution precautions: a baseline for LOW, a
// longer list for MEDIUM.
func precautionsFor(level model.RiskLevel) []string {
	precautions := []string{
		"audit logging enabled for the operation",
		"operation monitored while it runs",
		"results validated after execution",
	}
	if level == model.RiskMedium {
		precautions = append(precautions,
			"rollback point created before execution",
			"execution restricted to the narrowest possible scope",
		)
	}
	return precautions
}

// alternativeFor suggests a safer approach keyed by the danger category.
func alternativeFor(category model.DangerCategory) string {
	switch category {
	case model.DangerDisableSecurity:
		return "Instead of disabling the control outright, scope the change to the " +
			"single affected account or system, make it time-boxed with automatic " +
			"re-enablement, and record a compensating control while it is off."
	case model.DangerDelete:
		return "Instead of deleting directly, archive or back up the data first, " +
			"run the deletion in a test environment, and keep a verified rollback " +
			"procedure before touching the real data."
	default:
		return "Run the change as a staged rollout: start in a test environment, " +
			"apply it to a small slice, verify the results, and only then expand, " +
			"with supervisor approval at each stage."
	}
}

// renderValidationReport formats the report in the validator's wire format so
// mock and LLM validation narratives read the same.
func renderValidationReport(r ValidationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "RISK LEVEL: %s\n\n", r.Level)
	b.WriteString("IDENTIFIED RISKS:\n")
	for _, risk := range r.Risks {
		fmt.Fprintf(&b, "- %s\n", risk)
	}
	b.WriteString("\n")
	if r.Rejected {
		b.WriteString("DECISION: REJECT\n\n")
		b.WriteString("SAFE ALTERNATIVE:\n")
		b.WriteString(r.Alternative + "\n")
	} else {
		b.WriteString("DECISION: APPROVE\n\n")
		b.WriteString("PRECAUTIONS:\n")
		for _, p := range r.Precautions {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	return b.String()
}
