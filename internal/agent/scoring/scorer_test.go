package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/martin-core-poc/agent/internal/agent/model"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ayúdame", "ayudame"},
		{"PRODUCCIÓN", "produccion"},
		{"contraseñas", "contraseñas"}, // ñ is kept, only accents are stripped
		{"Delete ALL", "delete all"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in))
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"?",
		"Delete all users from the production database permanently forever right now",
		"Ayúdame con SOC 2",
		"Genera una política de contraseñas según ISO 27001",
	}
	ctx := model.TaskContext{HasActiveUsers: true}
	for _, in := range inputs {
		scores := Score(in, ctx)
		assert.GreaterOrEqual(t, scores.Risk, 0.0, "risk for %q", in)
		assert.LessOrEqual(t, scores.Risk, 1.0, "risk for %q", in)
		assert.GreaterOrEqual(t, scores.Clarity, 0.0, "clarity for %q", in)
		assert.LessOrEqual(t, scores.Clarity, 1.0, "clarity for %q", in)
	}
}

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name string
		task string
		ctx  model.TaskContext
		want float64
	}{
		{
			name: "benign help request",
			task: "Ayúdame con SOC 2",
			want: 0.0,
		},
		{
			name: "destructive broad production task",
			task: "Delete all users from the production database",
			want: 0.7, // 0.2 danger + 0.3 critical (capped) + 0.2 broad
		},
		{
			name: "active users add a tenth",
			task: "Delete all users from the production database",
			ctx:  model.TaskContext{HasActiveUsers: true},
			want: 0.8,
		},
		{
			name: "irreversible drop",
			task: "Drop the database permanently",
			want: 0.55, // 0.2 danger + 0.15 critical + 0.2 irreversible
		},
		{
			name: "two danger keywords saturate the danger factor",
			task: "necesito delete remove logs",
			want: 0.4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := Score(tt.task, tt.ctx)
			assert.InDelta(t, tt.want, scores.Risk, 1e-9)
		})
	}
}

func TestAssessClarity(t *testing.T) {
	tests := []struct {
		name string
		task string
		want float64
	}{
		{
			name: "vague short help request",
			task: "Ayúdame con SOC 2",
			want: 0.40, // -0.30 vague (ayuda + ayúdame), -0.3 short
		},
		{
			name: "specific actionable request clamps at one",
			task: "Genera una política de contraseñas según ISO 27001",
			want: 1.0, // +0.2 entity (27001), +0.15 action verb
		},
		{
			name: "empty input",
			task: "",
			want: 0.5, // length penalty only
		},
		{
			name: "question form",
			task: "How should we configure the backup retention window",
			want: 0.85, // -0.3 interrogative, +0.15 action verb
		},
		{
			name: "vague plus short",
			task: "necesito delete remove logs",
			want: 0.55, // -0.15 vague, -0.3 short
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := Score(tt.task, model.TaskContext{})
			assert.InDelta(t, tt.want, scores.Clarity, 1e-9)
		})
	}
}

func TestIsInterrogative(t *testing.T) {
	tests := []struct {
		task string
		want bool
	}{
		{"¿Puedo borrar esto?", true},
		{"What happened yesterday", true},
		{"cómo funciona el escaneo", true},
		{"Generate the report", false},
		{"Which option is faster?", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isInterrogative(Fold(tt.task), tt.task), tt.task)
	}
}

func TestHasSpecificEntity(t *testing.T) {
	tests := []struct {
		task string
		want bool
	}{
		// sentence-initial capitalisation does not count
		{"Delete everything", false},
		{"Audit the Finance department", true},
		{"check /etc/passwd for stale entries", true},
		{"rotate key 42", true},
		{"notify admin@example.com", true},
		// single digits and all-caps acronyms are not specific entities
		{"Ayúdame con SOC 2", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hasSpecificEntity(tt.task), tt.task)
	}
}

func TestMatchKeyword(t *testing.T) {
	// multi-character keywords match by substring, including inside words
	assert.True(t, MatchKeyword("install the package", "all"))
	assert.True(t, MatchKeyword("borrar todo", "borrar"))

	// single-character keywords only match standing alone
	assert.True(t, MatchKeyword("s", "s"))
	assert.True(t, MatchKeyword("respond with s please", "s"))
	assert.False(t, MatchKeyword("si", "s"))
	assert.False(t, MatchKeyword("yes", "y"))
}

func TestCountHitsCountsEachKeywordOnce(t *testing.T) {
	folded := Fold("delete delete delete the database database")
	assert.Equal(t, 1, CountHits(folded, []string{"delete"}))
	assert.Equal(t, 2, CountHits(folded, []string{"delete", "database"}))
}

func TestDangerCategoryOf(t *testing.T) {
	tests := []struct {
		task string
		want model.DangerCategory
	}{
		{"disable the firewall", model.DangerDisableSecurity},
		{"delete the backups", model.DangerDelete},
		// disable-security wins when both families match
		{"disable auth and delete the logs", model.DangerDisableSecurity},
		{"overwrite the main branch", model.DangerGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DangerCategoryOf(tt.task), tt.task)
	}
}
