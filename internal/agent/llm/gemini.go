package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/martin-core-poc/agent/internal/agent/model"
	errx "github.com/martin-core-poc/agent/internal/core/error"
	logx "github.com/martin-core-poc/agent/pkg/logger"
)

// GeminiConfig holds what is needed to build the Gemini-backed collaborator.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   model.LLMModelConfig
}

// Gemini is the production Collaborator backed by a Gemini chat model.
type Gemini struct {
	chatModel *gemini.ChatModel
	modelName string
}

var _ Collaborator = (*Gemini)(nil)

// NewGemini creates the Gemini client and chat model.
func NewGemini(ctx context.Context, config GeminiConfig) (*Gemini, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.Model.Model,
		Temperature: &config.Model.Temperature,
		MaxTokens:   &config.Model.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini chat model")
		return nil, fmt.Errorf("error creating Gemini chat model: %w", err)
	}

	return &Gemini{
		chatModel: chatModel,
		modelName: config.Model.Model,
	}, nil
}

// Name implements Collaborator.
func (g *Gemini) Name() string {
	return "gemini/" + g.modelName
}

// Complete implements Collaborator. Failures are wrapped as collaborator
// errors so the reasoning layer can match on them and fall back to mock text.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		logx.Warn().Err(err).Str("model", g.modelName).Msg("gemini completion failed")
		return "", errx.WrapCollaborator(err)
	}
	if out == nil {
		return "", errx.WrapCollaborator(fmt.Errorf("empty response from model"))
	}

	g.logUsage(out)
	return out.Content, nil
}

// logUsage records token usage and USD cost for the call when the provider
// reports usage metadata.
func (g *Gemini) logUsage(msg *schema.Message) {
	if !model.CostEnabled() || msg.ResponseMeta == nil || msg.ResponseMeta.Usage == nil {
		return
	}
	usage := msg.ResponseMeta.Usage
	_, _, total := model.ComputeCost(usage, model.ResolvePricing(g.modelName))
	logx.Debug().
		Str("model", g.modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Float64("cost_usd", total).
		Msg("collaborator usage")
}
