package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/meridianbank/governance-gateway/internal/gateway"
	"github.com/meridianbank/governance-gateway/internal/guardrail"
	"github.com/meridianbank/governance-gateway/internal/llm"
	"github.com/meridianbank/governance-gateway/internal/llm/bedrock"
	"github.com/meridianbank/governance-gateway/internal/llm/mock"
	"github.com/meridianbank/governance-gateway/internal/prompts"
	"github.com/meridianbank/governance-gateway/internal/router"
	"github.com/meridianbank/governance-gateway/internal/telemetry"
	"github.com/rs/zerolog"
)

type Config struct {
	AWSRegion      string
	LiveMode       bool
	RedisAddr      string
	RedisPassword  string
	APIPort        string
	AuditMaxTokens int
	LogLevel       string
}

type Dependencies struct {
	Gateway   *gateway.Gateway
	Guardrail *guardrail.Guardrail
	Logger    *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		LiveMode:       getEnvBool("GATEWAY_LIVE_MODE", false),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		APIPort:        getEnv("GATEWAY_API_PORT", "18080"),
		AuditMaxTokens: getEnvInt("AUDIT_MAX_TOKENS", 512),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds the full dependency graph shared by every entrypoint.
// Configuration problems are fatal here; the guardrail's runtime
// fail-open policy covers call-time failures only.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	guardrailCfg, err := config.LoadGuardrailConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load guardrail config: %w", err)
	}

	policy, err := config.LoadModelPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load model policy: %w", err)
	}

	renderer, err := prompts.NewRenderer(prompts.DefaultDir())
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	client, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	estimator := telemetry.NewCostEstimator(policy, logger)
	modelRouter := router.NewRouter(policy, logger)

	guard, err := guardrail.New(guardrailCfg, client, renderer, estimator, cfg.LiveMode, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build guardrail: %w", err)
	}

	gw := gateway.NewGateway(guard, modelRouter, renderer, client, estimator, cfg.AuditMaxTokens, logger)

	return &Dependencies{
		Gateway:   gw,
		Guardrail: guard,
		Logger:    logger,
	}, nil
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	if !cfg.LiveMode {
		return mock.NewClient(), nil
	}

	client, err := bedrock.NewClient(ctx, cfg.AWSRegion, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}
	return client, nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
