package openai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/config"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"

	"github.com/sashabaranov/go-openai"
)

const (
	maxOutputTokens = 1024
	temperature     = 0.4
)

/**
 * OpenAI へ会話リクエストを送るのに必要な最小限の操作をまとめた窓口。
 */
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

/**
 * OpenAI に指示文を渡して書き換え済みの文面を受け取るバックエンド。
 */
type Rewriter struct {
	client ChatClient
	model  string
}

/**
 * API キーやモデル名を点検してから OpenAI との橋渡し役を組み立てる。
 */
func NewRewriter(apiKey, model, baseURL string) (*Rewriter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai rewriter: API キーが設定されていません")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(cfg)
	if model == "" {
		model = config.DefaultOpenAIModel
	}
	return &Rewriter{
		client: client,
		model:  model,
	}, nil
}

/**
 * OpenAI クライアントは後片付け不要なので互換性のためだけに戻り値を返す。
 */
func (r *Rewriter) Close() error {
	return nil
}

/**
 * 組み立て済みの指示文を OpenAI に渡し、書き換え後のテキストを受け取る。
 * 呼び出し失敗は ErrBackendUnavailable、空応答は ErrInvalidResponse として返す。
 */
func (r *Rewriter) Complete(ctx context.Context, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", llm.ErrInvalidRequest
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: temperature,
		MaxTokens:   maxOutputTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrBackendUnavailable, err)
	}

	text, err := extractFirstText(resp)
	if err != nil {
		return "", err
	}

	// 手紙の中身はログに残さない
	log.Printf("[openai] letter rewritten model=%s chars=%d", r.model, len(text))

	return text, nil
}

/**
 * OpenAI の返答から最初に意味を持つテキストを拾い、余白を取り除いて返す。
 */
func extractFirstText(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", llm.ErrInvalidResponse
	}
	// 最初に意味のある文を拾えたらそこで返す
	for _, choice := range resp.Choices {
		trimmed := strings.TrimSpace(choice.Message.Content)
		if trimmed != "" {
			return trimmed, nil
		}
	}
	return "", llm.ErrInvalidResponse
}

var _ llm.Completer = (*Rewriter)(nil)
