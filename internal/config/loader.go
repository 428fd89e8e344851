package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadGuardrailConfig() (*GuardrailConfig, error) {

	path := os.Getenv("GUARDRAIL_CONFIG_PATH")
	if path == "" {
		path = "configs/guardrail.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read guardrail config %s: %w", path, err)
	}

	var cfg GuardrailConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse guardrail config %s: %w", path, err)
	}

	applyGuardrailDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid guardrail config %s: %w", path, err)
	}

	return &cfg, nil
}

func applyGuardrailDefaults(cfg *GuardrailConfig) {
	if cfg.LLMClassification.Enabled == nil {
		enabled := true
		cfg.LLMClassification.Enabled = &enabled
	}
	if cfg.LLMClassification.MaxOutputTokens == 0 {
		cfg.LLMClassification.MaxOutputTokens = 256
	}
	if cfg.LLMClassification.Temperature == 0 {
		cfg.LLMClassification.Temperature = 0.1
	}
	if cfg.LLMClassification.ResponseFormat == "" {
		cfg.LLMClassification.ResponseFormat = "application/json"
	}
	if cfg.DataMinimization.MaxLogLength == 0 {
		cfg.DataMinimization.MaxLogLength = 200
	}
}

func LoadModelPolicy() (*ModelPolicy, error) {

	path := os.Getenv("MODEL_POLICY_PATH")
	if path == "" {
		path = "configs/model_policy.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model policy %s: %w", path, err)
	}

	var policy ModelPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse model policy %s: %w", path, err)
	}

	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model policy %s: %w", path, err)
	}

	return &policy, nil
}
