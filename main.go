package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/martin-core-poc/agent/internal/agent"
	"github.com/martin-core-poc/agent/internal/agent/export"
	"github.com/martin-core-poc/agent/internal/agent/llm"
	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/repo"
	"github.com/martin-core-poc/agent/internal/core"
	logx "github.com/martin-core-poc/agent/pkg/logger"
	pkgredis "github.com/martin-core-poc/agent/pkg/redis"
)

// AppConfig defines all configurable parameters for the agent demo, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure. Redis is optional: when REDIS_URL is empty the session
	// runs in-memory only.
	Redis pkgredis.Config

	// LLM provider. Optional: when GEMINI_API_KEY is empty the agent runs
	// with simulated responses.
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	LLM     model.LLMModelConfig
	Session model.SessionConfig
	Company model.CompanyConfig
}

func main() {
	fmt.Println("Reasoning-mode agent demo")
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(os.Getenv("ENVIRONMENT"))})

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	cfg := agent.Config{Company: envCfg.Company.Context()}

	if envCfg.Redis.URL != "" {
		ttl, err := time.ParseDuration(envCfg.Session.TTL)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL '%s': %v", envCfg.Session.TTL, err)
		}
		rdb, err := envCfg.Redis.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		cfg.Archive = repo.NewRedisSessionArchive(rdb, ttl)
		fmt.Println("Connected to Redis successfully")
	} else {
		fmt.Println("REDIS_URL not set; running without session archive")
	}

	if envCfg.APIKey != "" {
		collab, err := llm.NewGemini(ctx, llm.GeminiConfig{
			APIKey:  envCfg.APIKey,
			BaseURL: envCfg.BaseURL,
			Model:   envCfg.LLM,
		})
		if err != nil {
			log.Fatalf("Failed to initialise Gemini collaborator: %v", err)
		}
		cfg.Collaborator = collab
	} else {
		fmt.Println("GEMINI_API_KEY not set; running with simulated responses")
	}

	a, err := agent.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build agent: %v", err)
	}

	devCtx := model.TaskContext{Environment: core.Development}
	prodCtx := model.TaskContext{Environment: core.Production, HasActiveUsers: true, UserRole: "admin"}

	turns := []struct {
		description string
		query       string
		taskCtx     model.TaskContext
	}{
		{
			description: "Vague request routes to PASSIVE and waits",
			query:       "Ayúdame con SOC 2",
			taskCtx:     devCtx,
		},
		{
			description: "User confirms the pending plan",
			query:       "sí, continúa",
			taskCtx:     devCtx,
		},
		{
			description: "Clear low-risk request executes in DIRECT mode",
			query:       "Genera una política de contraseñas según ISO 27001",
			taskCtx:     devCtx,
		},
		{
			description: "Destructive request in production is validated in SAFE mode",
			query:       "Delete all users from the production database",
			taskCtx:     prodCtx,
		},
		{
			description: "User rejects the blocked action's follow-up",
			query:       "no, mejor no",
			taskCtx:     prodCtx,
		},
	}

	for i, turn := range turns {
		fmt.Printf("\nTurn %d: %s\n", i+1, turn.description)
		fmt.Printf("User: %q\n", turn.query)

		result := a.Process(ctx, turn.query, turn.taskCtx)
		meta := result.Meta()

		fmt.Printf("[%s / %s]\n%s\n", meta.Mode, meta.Status, meta.Message)
		fmt.Printf("Why: %s\n", meta.ModeExplanation)
		fmt.Println("────────────────────────────────────────────────")

		// slight delay between turns for readability
		time.Sleep(200 * time.Millisecond)
	}

	summary := a.SessionSummary()
	fmt.Printf("\nSession %s: %d interactions, %d confirmations, pending=%v\n",
		summary.SessionID, summary.TotalInteractions, summary.TotalConfirmations, summary.HasPendingAction)
	for mode, count := range summary.ModesDistribution {
		fmt.Printf("  %s: %d\n", mode, count)
	}

	format := export.FormatMarkdown
	data, err := a.Export(format)
	if err != nil {
		log.Fatalf("Failed to export session: %v", err)
	}
	filename := fmt.Sprintf("session_%s.%s", summary.SessionID, format.Extension())
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		log.Fatalf("Failed to write session export: %v", err)
	}
	fmt.Printf("\nSession exported to %s\n", filename)
}
