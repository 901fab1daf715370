package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	DefaultAnthropicModel = "claude-haiku-4-5"

	envAnthropicAPIKey = "ANTHROPIC_API_KEY"
	envAnthropicModel  = "ANTHROPIC_MODEL"
)

type AnthropicConfig struct {
	APIKey string
	Model  string
}

/**
 * 環境変数から読み込んでAnthropic連携に使用
 */

func LoadAnthropicConfigFromEnv() (*AnthropicConfig, error) {
	key := strings.TrimSpace(os.Getenv(envAnthropicAPIKey))
	if key == "" {
		return nil, fmt.Errorf("config: %s is not set", envAnthropicAPIKey)
	}

	model := strings.TrimSpace(os.Getenv(envAnthropicModel))
	if model == "" {
		model = DefaultAnthropicModel
	}

	return &AnthropicConfig{
		APIKey: key,
		Model:  model,
	}, nil
}
