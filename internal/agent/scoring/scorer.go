// Package scoring implements the lexical risk/clarity heuristics that feed
// mode selection. Scoring is pure and deterministic: same task and context in,
// same scores out.
//
// Matching rule: text and keywords are case-folded and stripped of Spanish
// diacritics before comparison. Multi-character keywords match by plain
// substring containment; single-character keywords match only on word
// boundaries so they do not fire inside longer words. The substring rule
// over-matches (e.g. "all" fires inside "install"); that is a known
// limitation of the classifier, not a bug.
package scoring

import (
	"regexp"
	"strings"

	"github.com/martin-core-poc/agent/internal/agent/model"
)

// Danger keywords signal destructive intent (weight 0.4, scaled by hits/2).
var dangerKeywords = []string{
	"delete", "remove", "destroy", "drop", "disable",
	"terminate", "kill", "shutdown", "revoke", "block",
	"eliminar", "borrar", "destruir", "deshabilitar",
}

// Critical resources raise risk when mentioned (weight 0.3, scaled by hits/2).
var criticalResources = []string{
	"database", "db", "producción", "production",
	"payment", "billing", "auth", "credentials", "credenciales",
	"users", "admin",
}

// Broad-scope indicators add a flat +0.2.
var broadScopeIndicators = []string{
	"all", "every", "todos", "todas", "cada", "entire", "completo", "*",
}

// Irreversibility keywords add a flat +0.2.
var irreversibilityKeywords = []string{
	"permanent", "permanente", "forever", "irreversible", "para siempre",
}

// Vague or help-seeking keywords lower clarity by 0.15 each, capped at 0.45.
var vagueKeywords = []string{
	"ayuda", "ayúdame", "help", "cómo", "qué debo", "no sé",
	"podrías", "puedes", "quiero", "necesito",
}

// Question words mark interrogative form when the task starts with one.
var questionWords = []string{
	"what", "how", "why", "when", "where", "which", "who",
	"can", "could", "should",
	"qué", "cómo", "por qué", "cuándo", "dónde", "cuál", "quién",
	"puedo", "debo",
}

// Action verbs raise clarity by 0.15 when present.
var actionVerbs = []string{
	"generate", "create", "analyze", "audit", "scan", "update",
	"configure", "review", "list", "export",
	"genera", "crea", "analiza", "audita", "escanea", "actualiza",
	"configura", "revisa", "lista", "exporta",
}

// Specific-entity patterns. Capitalised tokens are checked against the
// original text, skipping the first word: sentence-initial capitalisation
// says nothing about specificity.
var (
	capitalizedToken   = regexp.MustCompile(`^\p{Lu}\p{Ll}+`)
	entityPathPattern  = regexp.MustCompile(`(^|\s)/[\w./-]+`)
	entityNumber       = regexp.MustCompile(`\d\d+`)
	entityEmailPattern = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.]+`)
)

// diacriticFolder strips the Spanish diacritics that appear in the keyword
// lists, so "Ayúdame" matches both "ayuda" and "ayúdame".
var diacriticFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
)

// Fold lower-cases the text and strips diacritics, producing the form every
// keyword comparison runs against.
func Fold(text string) string {
	return diacriticFolder.Replace(strings.ToLower(text))
}

// Score computes risk and clarity for a task. Empty or whitespace-only input
// is still scored; both results are clamped to [0,1].
func Score(task string, taskCtx model.TaskContext) model.Scores {
	return model.Scores{
		Risk:    assessRisk(task, taskCtx),
		Clarity: assessClarity(task),
	}
}

// assessRisk accumulates independently weighted factors and clamps the sum.
func assessRisk(task string, taskCtx model.TaskContext) float64 {
	folded := Fold(task)
	risk := 0.0

	// Factor 1: danger keywords, scaled by hit count
	if hits := CountHits(folded, dangerKeywords); hits > 0 {
		risk += 0.4 * minFloat(float64(hits)/2, 1.0)
	}

	// Factor 2: critical resources, same scaling
	if hits := CountHits(folded, criticalResources); hits > 0 {
		risk += 0.3 * minFloat(float64(hits)/2, 1.0)
	}

	// Factor 3: broad scope
	if CountHits(folded, broadScopeIndicators) > 0 {
		risk += 0.2
	}

	// Factor 4: live traffic in the blast radius
	if taskCtx.HasActiveUsers {
		risk += 0.1
	}

	// Factor 5: irreversibility
	if CountHits(folded, irreversibilityKeywords) > 0 {
		risk += 0.2
	}

	return clamp01(risk)
}

// assessClarity starts at 1.0 and adjusts for form, vagueness, length and
// specificity.
func assessClarity(task string) float64 {
	folded := Fold(task)
	clarity := 1.0

	if isInterrogative(folded, task) {
		clarity -= 0.3
	}

	if penalty := 0.15 * float64(CountHits(folded, vagueKeywords)); penalty > 0 {
		clarity -= minFloat(penalty, 0.45)
	}

	switch words := len(strings.Fields(task)); {
	case words < 3:
		clarity -= 0.5
	case words < 5:
		clarity -= 0.3
	case words > 15:
		clarity += 0.1
	}

	if hasSpecificEntity(task) {
		clarity += 0.2
	}

	if CountHits(folded, actionVerbs) > 0 {
		clarity += 0.15
	}

	return clamp01(clarity)
}

// isInterrogative reports a question mark anywhere or a question word at the
// start of the task.
func isInterrogative(folded, original string) bool {
	if strings.Contains(original, "?") || strings.Contains(original, "¿") {
		return true
	}
	trimmed := strings.TrimSpace(folded)
	for _, w := range questionWords {
		fw := Fold(w)
		if trimmed == fw || strings.HasPrefix(trimmed, fw+" ") {
			return true
		}
	}
	return false
}

// hasSpecificEntity detects capitalised tokens past the first word, paths,
// multi-digit numbers and emails.
func hasSpecificEntity(task string) bool {
	for i, field := range strings.Fields(task) {
		if i == 0 {
			continue
		}
		if capitalizedToken.MatchString(field) {
			return true
		}
	}
	return entityPathPattern.MatchString(task) ||
		entityNumber.MatchString(task) ||
		entityEmailPattern.MatchString(task)
}

// CountHits counts how many keywords from the list occur in the folded text
// under the shared matching rule. Each keyword counts at most once.
func CountHits(folded string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if MatchKeyword(folded, kw) {
			hits++
		}
	}
	return hits
}

// MatchKeyword applies the shared matching rule: word-boundary for
// single-character tokens, substring containment otherwise. The text must
// already be folded; the keyword is folded here.
func MatchKeyword(folded, keyword string) bool {
	kw := Fold(keyword)
	if len([]rune(kw)) == 1 {
		return matchBoundary(folded, kw)
	}
	return strings.Contains(folded, kw)
}

// matchBoundary matches a single-character token only when it stands alone
// between non-word characters (or string edges).
func matchBoundary(folded, token string) bool {
	re, err := regexp.Compile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(token) + `([^\p{L}\p{N}]|$)`)
	if err != nil {
		return false
	}
	return re.MatchString(folded)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
