package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-core-poc/agent/internal/agent/model"
)

func TestGenerateAllPolicyTypes(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) }

	company := model.CompanyContext{Name: "Acme Corp", Industry: "fintech", Employees: 120}

	for _, policyType := range model.PolicyTypes() {
		doc, err := g.Generate(policyType, company)
		require.NoError(t, err, "policy type %s", policyType)
		assert.Contains(t, doc, "Acme Corp", "policy type %s", policyType)
		assert.Contains(t, doc, "2026-08-28", "policy type %s", policyType)
	}
}

func TestGenerateFillsCompanyFields(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	doc, err := g.Generate(model.PolicyPassword, model.CompanyContext{
		Name: "Acme Corp", Industry: "fintech", Employees: 120,
	})
	require.NoError(t, err)
	assert.Contains(t, doc, "fintech")
	assert.Contains(t, doc, "120")
}

func TestGenerateDefaultsEmptyCompanyName(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	doc, err := g.Generate(model.PolicyBackup, model.CompanyContext{})
	require.NoError(t, err)
	assert.Contains(t, doc, "the organization")
}

func TestGenerateUnknownType(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	_, err = g.Generate(model.PolicyType("bring_your_own_device"), model.CompanyContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown policy type")
}
