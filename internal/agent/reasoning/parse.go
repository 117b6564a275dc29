package reasoning

import (
	"strings"

	"github.com/martin-core-poc/agent/internal/agent/model"
)

// basic safety limits to avoid pathological model output
const (
	maxValidationLen = 64 * 1024 // 64KB
	maxMarkerLine    = 256
)

// parsedVerdict is what an LLM validation narrative may add on top of the
// local keyword verdict. Parsing is best-effort: anything malformed simply
// yields no escalation.
type parsedVerdict struct {
	Level    model.RiskLevel
	HasLevel bool
	Rejected bool
}

// parseValidationNarrative scans the narrative for the RISK LEVEL and
// DECISION markers the validation prompt mandates.
func parseValidationNarrative(content string) parsedVerdict {
	var v parsedVerdict
	if content == "" || len(content) > maxValidationLen {
		return v
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > maxMarkerLine {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "RISK LEVEL:"):
			if lvl, ok := parseRiskLevel(upper); ok {
				v.Level = lvl
				v.HasLevel = true
			}
		case strings.HasPrefix(upper, "DECISION:"):
			if strings.Contains(upper, "REJECT") {
				v.Rejected = true
			}
		}
	}
	return v
}

func parseRiskLevel(upperLine string) (model.RiskLevel, bool) {
	// order matters: LOW is a substring of nothing, but CRITICAL must be
	// checked before HIGH in case the model writes "HIGH/CRITICAL"
	for _, lvl := range []model.RiskLevel{model.RiskCritical, model.RiskHigh, model.RiskMedium, model.RiskLow} {
		if strings.Contains(upperLine, string(lvl)) {
			return lvl, true
		}
	}
	return "", false
}

// escalate merges an LLM verdict into the local report. The narrative can
// only raise the risk level or force a rejection, never lower either: the
// local keyword verdict is the safety floor.
func escalate(report ValidationReport, v parsedVerdict) ValidationReport {
	if v.HasLevel && riskRank(v.Level) > riskRank(report.Level) {
		report.Level = v.Level
	}
	if v.Rejected || report.Level.Blocking() {
		report.Rejected = true
	}
	return report
}

func riskRank(l model.RiskLevel) int {
	switch l {
	case model.RiskLow:
		return 0
	case model.RiskMedium:
		return 1
	case model.RiskHigh:
		return 2
	case model.RiskCritical:
		return 3
	default:
		return -1
	}
}
