package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/core"
)

func TestSelectModeDecisionTable(t *testing.T) {
	tests := []struct {
		name       string
		task       string
		ctx        model.TaskContext
		want       model.Mode
		wantReason string
	}{
		{
			name:       "production always routes to safe",
			task:       "List the open incident tickets",
			ctx:        model.TaskContext{Environment: core.Production},
			want:       model.ModeSafe,
			wantReason: "production environment",
		},
		{
			name:       "high risk routes to safe outside production",
			task:       "Delete all users from the production database",
			ctx:        model.TaskContext{Environment: core.Development},
			want:       model.ModeSafe,
			wantReason: "high risk detected",
		},
		{
			name:       "vague task routes to passive",
			task:       "Ayúdame con SOC 2",
			want:       model.ModePassive,
			wantReason: "ambiguous task",
		},
		{
			name:       "moderate risk with middling clarity routes to passive",
			task:       "necesito delete remove logs",
			want:       model.ModePassive,
			wantReason: "moderate risk",
		},
		{
			name:       "clear low-risk task routes to direct",
			task:       "Genera una política de contraseñas según ISO 27001",
			want:       model.ModeDirect,
			wantReason: "clear and low-risk",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			got := s.SelectMode(tt.task, tt.ctx)
			assert.Equal(t, tt.want, got)

			last, ok := s.LastDecision()
			require.True(t, ok)
			assert.Equal(t, tt.want, last.SelectedMode)
			assert.Contains(t, last.Reason, tt.wantReason)
		})
	}
}

func TestProductionDominatesClarity(t *testing.T) {
	// an unambiguous destructive instruction in production must never run
	// DIRECT, however clear it is
	s := New()
	got := s.SelectMode("Delete all users from the production database", model.TaskContext{
		Environment:    core.Production,
		HasActiveUsers: true,
	})
	assert.Equal(t, model.ModeSafe, got)
}

func TestDecisionLogGrowsPerDecision(t *testing.T) {
	s := New()
	assert.Empty(t, s.DecisionLog())

	s.SelectMode("Ayúdame con SOC 2", model.TaskContext{})
	s.SelectMode("Genera una política de contraseñas según ISO 27001", model.TaskContext{})

	log := s.DecisionLog()
	require.Len(t, log, 2)
	assert.Equal(t, model.ModePassive, log[0].SelectedMode)
	assert.Equal(t, model.ModeDirect, log[1].SelectedMode)

	// the returned slice is a copy
	log[0].SelectedMode = model.ModeSafe
	assert.Equal(t, model.ModePassive, s.DecisionLog()[0].SelectedMode)
}

func TestDecisionRecordCarriesScoresAndExcerpt(t *testing.T) {
	s := New()
	long := strings.Repeat("audit the access logs ", 5)
	s.SelectMode(long, model.TaskContext{})

	last, ok := s.LastDecision()
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(last.TaskExcerpt, "..."))
	assert.LessOrEqual(t, len([]rune(last.TaskExcerpt)), taskExcerptLimit+3)
	assert.GreaterOrEqual(t, last.ClarityScore, 0.0)
	assert.LessOrEqual(t, last.ClarityScore, 1.0)
	assert.Equal(t, core.Development, last.Environment)
}

func TestExplainLastDecision(t *testing.T) {
	s := New()
	assert.Equal(t, "No decisions recorded yet", s.ExplainLastDecision())

	s.SelectMode("Ayúdame con SOC 2", model.TaskContext{})
	explanation := s.ExplainLastDecision()
	assert.Contains(t, explanation, "Selected mode: PASSIVE")
	assert.Contains(t, explanation, "risk:")
	assert.Contains(t, explanation, "clarity:")
	assert.Contains(t, explanation, "environment: development")
}

func TestReset(t *testing.T) {
	s := New()
	s.SelectMode("Ayúdame con SOC 2", model.TaskContext{})
	require.NotEmpty(t, s.DecisionLog())

	s.Reset()
	assert.Empty(t, s.DecisionLog())
	_, ok := s.LastDecision()
	assert.False(t, ok)
	assert.Equal(t, "No decisions recorded yet", s.ExplainLastDecision())
}
