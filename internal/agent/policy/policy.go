// Package policy implements the policy-template collaborator: pure text
// generation of compliance policy documents from a company profile. The core
// treats it as an external collaborator behind a one-method boundary.
package policy

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/martin-core-poc/agent/internal/agent/model"
)

//go:embed template/*.tmpl
var templateFS embed.FS

// Generator renders policy documents. The zero value is not usable; construct
// with NewGenerator so templates are parsed once.
type Generator struct {
	templates *template.Template
	now       func() time.Time
}

// NewGenerator parses the embedded policy templates.
func NewGenerator() (*Generator, error) {
	tmpl, err := template.ParseFS(templateFS, "template/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse policy templates: %w", err)
	}
	return &Generator{templates: tmpl, now: time.Now}, nil
}

// templateData is the variable set every policy template renders against.
type templateData struct {
	CompanyName string
	Industry    string
	Employees   int
	Date        string
}

// Generate renders the document for a policy type. Unknown types are an
// error; the caller decides the fallback.
func (g *Generator) Generate(policyType model.PolicyType, company model.CompanyContext) (string, error) {
	name := string(policyType) + ".tmpl"
	if g.templates.Lookup(name) == nil {
		return "", fmt.Errorf("unknown policy type %q", policyType)
	}

	data := templateData{
		CompanyName: company.Name,
		Industry:    company.Industry,
		Employees:   company.Employees,
		Date:        g.now().Format("2006-01-02"),
	}
	if data.CompanyName == "" {
		data.CompanyName = "the organization"
	}

	var b strings.Builder
	if err := g.templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render policy %q: %w", policyType, err)
	}
	return b.String(), nil
}
