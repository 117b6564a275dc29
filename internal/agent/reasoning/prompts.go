package reasoning

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/martin-core-poc/agent/internal/agent/model"
)

//go:embed template/passive_prompt.txt
var passivePromptTemplate string

//go:embed template/direct_prompt.txt
var directPromptTemplate string

//go:embed template/safe_plan_prompt.txt
var safePlanPromptTemplate string

//go:embed template/safe_validation_prompt.txt
var safeValidationPromptTemplate string

// renderPrompt renders one prompt template via the Eino prompt component.
func renderPrompt(ctx context.Context, tpl string, vars map[string]any) (string, error) {
	msgs, err := prompt.FromMessages(
		schema.GoTemplate,
		schema.UserMessage(tpl),
	).Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("prompt render: empty result")
	}
	return msgs[0].Content, nil
}

// contextDescription serialises the task context for prompt interpolation.
func contextDescription(taskCtx model.TaskContext) string {
	b, err := json.Marshal(taskCtx)
	if err != nil || string(b) == "{}" {
		return "no additional context"
	}
	return string(b)
}

func renderPassivePrompt(ctx context.Context, task string, taskCtx model.TaskContext) (string, error) {
	return renderPrompt(ctx, passivePromptTemplate, map[string]any{
		"Task":    task,
		"Context": contextDescription(taskCtx),
	})
}

func renderDirectPrompt(ctx context.Context, task string) (string, error) {
	return renderPrompt(ctx, directPromptTemplate, map[string]any{
		"Task": task,
	})
}

func renderSafePlanPrompt(ctx context.Context, task string, taskCtx model.TaskContext) (string, error) {
	return renderPrompt(ctx, safePlanPromptTemplate, map[string]any{
		"Task":    task,
		"Context": contextDescription(taskCtx),
	})
}

func renderSafeValidationPrompt(ctx context.Context, task, plan string) (string, error) {
	return renderPrompt(ctx, safeValidationPromptTemplate, map[string]any{
		"Task": task,
		"Plan": plan,
	})
}
