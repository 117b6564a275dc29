package model

import (
	"github.com/martin-core-poc/agent/internal/core"
)

// TaskContext carries the situational information attached to a user
// instruction. The zero value is a valid "no context" record: development
// environment, no active users.
type TaskContext struct {
	Environment    core.Environment `json:"environment,omitempty"`
	HasActiveUsers bool             `json:"has_active_users,omitempty"`
	UserRole       string           `json:"user_role,omitempty"`
	Company        CompanyContext   `json:"company,omitempty"`
}

// Env returns the effective environment, defaulting to development when the
// context carries none.
func (c TaskContext) Env() core.Environment {
	if c.Environment == "" {
		return core.Development
	}
	return c.Environment
}

// CompanyContext describes the organisation the agent is acting for. It is
// passed through to the policy-template collaborator untouched.
type CompanyContext struct {
	Name      string `json:"name,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Employees int    `json:"employees,omitempty"`
}

// Scores is the output of the risk/clarity scorer. Both values are in [0,1].
type Scores struct {
	Risk    float64 `json:"risk"`
	Clarity float64 `json:"clarity"`
}
