package app

import (
	"context"
	"fmt"
	"log"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/adapter/http/handler"
	llmAnthropic "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/adapter/llm/anthropic"
	llmGemini "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/adapter/llm/gemini"
	llmOpenAI "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/adapter/llm/openai"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/config"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"
	rewriteusecase "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/usecase/rewrite"
)

// Container は API で使用する依存を保持する。
type Container struct {
	RewriteHandler *handler.RewriteHandler
	closeBackend   func() error
}

// テストで差し替えるバックエンド生成ポイントを集約する。
var (
	providerLoader = config.LoadLLMProvider

	openaiBackendFactory = func() (llm.Completer, func() error, error) {
		cfg, err := config.LoadOpenAIConfigFromEnv()
		if err != nil {
			return nil, nil, err
		}
		rewriter, err := llmOpenAI.NewRewriter(cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		return rewriter, rewriter.Close, nil
	}

	geminiBackendFactory = func(ctx context.Context) (llm.Completer, func() error, error) {
		cfg, err := config.LoadGeminiConfigFromEnv()
		if err != nil {
			return nil, nil, err
		}
		rewriter, err := llmGemini.NewRewriter(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		return rewriter, rewriter.Close, nil
	}

	anthropicBackendFactory = func() (llm.Completer, func() error, error) {
		cfg, err := config.LoadAnthropicConfigFromEnv()
		if err != nil {
			return nil, nil, err
		}
		rewriter, err := llmAnthropic.NewRewriter(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		return rewriter, rewriter.Close, nil
	}
)

/**
 * API 稼働に必要なバックエンド、ユースケース、ハンドラーを整えて返す。
 * プロバイダーが none のときはバックエンドなしのパススルー構成になる。
 */
func NewContainer(ctx context.Context) (*Container, error) {
	backend, closeBackend, err := provideBackend(ctx)
	if err != nil {
		return nil, fmt.Errorf("provide llm backend: %w", err)
	}

	var usecase *rewriteusecase.LetterRewriteUsecase
	if backend == nil {
		log.Println("llm backend disabled: letters will pass through unchanged")
		usecase = rewriteusecase.NewPassthroughUsecase()
	} else {
		usecase = rewriteusecase.NewLetterRewriteUsecase(backend)
	}

	return &Container{
		RewriteHandler: handler.NewRewriteHandler(usecase),
		closeBackend:   closeBackend,
	}, nil
}

// Close は保持しているバックエンド接続を後片付けする。
func (c *Container) Close() error {
	if c == nil || c.closeBackend == nil {
		return nil
	}
	return c.closeBackend()
}

/**
 * 設定されたプロバイダーに応じて生成バックエンドを用意する。
 * none のときは (nil, nil, nil) を返し、呼び出し側がパススルーを選ぶ。
 */
func provideBackend(ctx context.Context) (llm.Completer, func() error, error) {
	switch providerLoader() {
	case config.ProviderOpenAI:
		return openaiBackendFactory()
	case config.ProviderGemini:
		return geminiBackendFactory(ctx)
	case config.ProviderAnthropic:
		return anthropicBackendFactory()
	default:
		return nil, nil, nil
	}
}
