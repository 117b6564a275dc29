package session

import (
	"strings"

	"github.com/martin-core-poc/agent/internal/agent/scoring"
)

// Bilingual confirmation phrases. Matching is exact on the trimmed, folded
// input, else per-phrase with the scorer's rule: word-boundary for
// single-character phrases, substring containment for longer ones. The
// substring rule over-matches: a confirmation phrase embedded in an
// unrelated sentence will trigger. That limitation is preserved, not fixed.
var confirmationPhrases = []string{
	// Spanish
	"sí", "si", "s", "ok", "okay", "vale", "confirmar", "confirmo",
	"proceder", "procede", "continuar", "continúa", "continua",
	"adelante", "hazlo", "dale", "claro", "correcto",
	"exacto", "perfecto", "por favor", "procede por favor",
	// English
	"yes", "y", "yep", "yeah", "sure", "confirm", "proceed",
	"continue", "go ahead", "do it", "please proceed",
}

// Bilingual rejection phrases, same matching rule.
var rejectionPhrases = []string{
	// Spanish
	"no", "n", "nop", "nope", "cancelar", "cancela", "detener",
	"detenlo", "para", "alto", "stop", "rechazar", "rechazo",
	"mejor no", "no proceder", "no continuar", "no gracias",
	// English
	"cancel", "reject", "abort", "halt", "no thanks",
}

// IsConfirmation reports whether the user text confirms the pending action.
func IsConfirmation(text string) bool {
	return matchesPhraseSet(text, confirmationPhrases)
}

// IsRejection reports whether the user text rejects the pending action.
func IsRejection(text string) bool {
	return matchesPhraseSet(text, rejectionPhrases)
}

func matchesPhraseSet(text string, phrases []string) bool {
	folded := strings.TrimSpace(scoring.Fold(text))
	for _, phrase := range phrases {
		fp := scoring.Fold(phrase)
		if folded == fp {
			return true
		}
		if scoring.MatchKeyword(folded, fp) {
			return true
		}
	}
	return false
}
