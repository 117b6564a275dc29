package model

// ================ Config ================
type SessionConfig struct {
	TTL string `envconfig:"SESSION_TTL" default:"24h"`
}

type LLMModelConfig struct {
	Model       string  `envconfig:"LLM_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"LLM_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"LLM_TEMPERATURE" default:"0.0"`
}

type CompanyConfig struct {
	Name      string `envconfig:"COMPANY_NAME" default:"TechStartup Inc"`
	Industry  string `envconfig:"COMPANY_INDUSTRY" default:"software"`
	Employees int    `envconfig:"COMPANY_EMPLOYEES" default:"50"`
}

// Context converts the configured company profile into the per-task record
// handed to collaborators.
func (c CompanyConfig) Context() CompanyContext {
	return CompanyContext{
		Name:      c.Name,
		Industry:  c.Industry,
		Employees: c.Employees,
	}
}
