package config

import (
	"os"
	"strings"
)

const envLLMProvider = "LLM_PROVIDER"

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	// ProviderNone はバックエンドなしのパススルーモードを表す。
	ProviderNone = "none"
)

// LoadLLMProvider は環境変数からプロバイダー名を読み取る。
// 未設定・未知の値はパススルーモードに倒し、キーなしのデプロイでも起動できるようにする。
func LoadLLMProvider() string {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv(envLLMProvider)))
	if provider == "" {
		return ProviderNone
	}
	switch provider {
	case ProviderOpenAI, ProviderGemini, ProviderAnthropic, ProviderNone:
		return provider
	default:
		return ProviderNone
	}
}
