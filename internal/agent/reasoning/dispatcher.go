// Package reasoning implements the three reasoning engines the agent can
// route a task to: PASSIVE (propose and wait), DIRECT (act and report) and
// SAFE (validate, then act or block).
//
// Failure semantics: collaborator failures never escape a dispatch. Each
// engine pattern-matches the (text, error) pair from the collaborator and
// substitutes the mock narrative for that call only. There is no retry.
package reasoning

import (
	"context"

	"github.com/martin-core-poc/agent/internal/agent/llm"
	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/policy"
	logx "github.com/martin-core-poc/agent/pkg/logger"
)

// Dispatcher maps a selected mode to its response-producing strategy.
type Dispatcher struct {
	collab   llm.Collaborator // nil means simulated mode
	policies *policy.Generator
	company  model.CompanyContext
}

// New builds a dispatcher. A nil collaborator is valid and routes every
// generation to the simulated narratives.
func New(collab llm.Collaborator, policies *policy.Generator, company model.CompanyContext) *Dispatcher {
	return &Dispatcher{
		collab:   collab,
		policies: policies,
		company:  company,
	}
}

// CollaboratorName reports the backing generator for session summaries.
func (d *Dispatcher) CollaboratorName() string {
	if d.collab == nil {
		return "simulated"
	}
	return d.collab.Name()
}

// Dispatch routes to the engine for the selected mode.
func (d *Dispatcher) Dispatch(ctx context.Context, mode model.Mode, task string, taskCtx model.TaskContext) model.Result {
	switch mode {
	case model.ModePassive:
		return d.Passive(ctx, task, taskCtx)
	case model.ModeSafe:
		return d.Safe(ctx, task, taskCtx)
	default:
		return d.Direct(ctx, task, taskCtx)
	}
}

// Passive generates a plan narrative and waits: no side effects beyond text.
func (d *Dispatcher) Passive(ctx context.Context, task string, taskCtx model.TaskContext) *model.PassiveResult {
	plan := d.generate(ctx,
		func() (string, error) { return renderPassivePrompt(ctx, task, taskCtx) },
		func() string { return mockPassivePlan(task) },
	)

	return &model.PassiveResult{
		ResultMeta: model.ResultMeta{
			Mode:               model.ModePassive,
			Status:             model.StatusAwaitingConfirmation,
			Message:            "PASSIVE MODE\n\n" + plan,
			RequiresUserAction: true,
		},
		Plan: plan,
	}
}

// Direct executes immediately. When the task matches a policy-generation
// intent the policy collaborator's document is embedded in the result.
func (d *Dispatcher) Direct(ctx context.Context, task string, taskCtx model.TaskContext) *model.DirectResult {
	var policyOut *model.PolicyOutput
	if policyType, ok := DetectPolicyIntent(task); ok && d.policies != nil {
		company := taskCtx.Company
		if company == (model.CompanyContext{}) {
			company = d.company
		}
		doc, err := d.policies.Generate(policyType, company)
		if err != nil {
			logx.Warn().Err(err).Str("policy_type", string(policyType)).Msg("policy generation failed; using generic narrative")
		} else {
			policyOut = &model.PolicyOutput{Type: policyType, Document: doc}
		}
	}

	results := d.generate(ctx,
		func() (string, error) { return renderDirectPrompt(ctx, task) },
		func() string { return mockDirectReport(task) },
	)

	message := "DIRECT MODE - executed automatically\n\n" + results
	if policyOut != nil {
		message += "\n\n---\n\n" + policyOut.Document
	}

	return &model.DirectResult{
		ResultMeta: model.ResultMeta{
			Mode:               model.ModeDirect,
			Status:             model.StatusExecuted,
			Message:            message,
			RequiresUserAction: false,
		},
		Results: results,
		Policy:  policyOut,
	}
}

// Safe runs the two-phase engine: generate a plan, then self-validate. The
// keyword verdict is the floor; an LLM validation narrative can only
// escalate it. HIGH, CRITICAL or an explicit reject blocks the action.
func (d *Dispatcher) Safe(ctx context.Context, task string, taskCtx model.TaskContext) model.Result {
	plan := d.generate(ctx,
		func() (string, error) { return renderSafePlanPrompt(ctx, task, taskCtx) },
		func() string { return mockSafePlan(task) },
	)

	report := classify(task, taskCtx)

	var narrative string
	if d.collab != nil {
		narrative = d.generate(ctx,
			func() (string, error) { return renderSafeValidationPrompt(ctx, task, plan) },
			func() string { return "" },
		)
	}
	if narrative != "" {
		report = escalate(report, parseValidationNarrative(narrative))
	}
	report = finalizeReport(report, task)
	if narrative == "" {
		narrative = renderValidationReport(report)
	}

	if report.Rejected {
		logx.Info().
			Str("risk_level", string(report.Level)).
			Str("danger_category", string(report.DangerCategory)).
			Msg("safe mode blocked action")

		return &model.SafeBlockedResult{
			ResultMeta: model.ResultMeta{
				Mode:               model.ModeSafe,
				Status:             model.StatusBlocked,
				Message:            "SAFE MODE - ACTION BLOCKED\n\n" + narrative,
				RequiresUserAction: true,
			},
			OriginalPlan:     plan,
			ValidationReport: narrative,
			RiskLevel:        report.Level,
			DangerCategory:   report.DangerCategory,
			Alternative:      report.Alternative,
		}
	}

	return &model.SafeApprovedResult{
		ResultMeta: model.ResultMeta{
			Mode:               model.ModeSafe,
			Status:             model.StatusApprovedAndExecuted,
			Message:            "SAFE MODE - validated and executed\n\n" + narrative + "\nEXECUTED with precautions.",
			RequiresUserAction: false,
		},
		Plan:             plan,
		ValidationReport: narrative,
		RiskLevel:        report.Level,
		Precautions:      report.Precautions,
	}
}

// generate runs prompt rendering plus the collaborator call, falling back to
// the mock text on any failure. The fallback applies to this call only.
func (d *Dispatcher) generate(ctx context.Context, render func() (string, error), mock func() string) string {
	if d.collab == nil {
		return mock()
	}

	prompt, err := render()
	if err != nil {
		logx.Warn().Err(err).Msg("prompt render failed; using simulated response")
		return mock()
	}

	text, err := d.collab.Complete(ctx, prompt)
	if err != nil {
		logx.Warn().Err(err).Str("collaborator", d.collab.Name()).Msg("collaborator failed; using simulated response")
		return mock()
	}
	return text
}
