package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/config"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const maxOutputTokens = 1024

/**
 * Anthropic へメッセージを送るのに必要な最小限の操作をまとめた窓口。
 */
type MessageClient interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

/**
 * Anthropic に指示文を渡して書き換え済みの文面を受け取るバックエンド。
 */
type Rewriter struct {
	messages MessageClient
	model    anthropic.Model
}

/**
 * API キーとモデル名を点検してから Anthropic との橋渡し役を組み立てる。
 */
func NewRewriter(apiKey, model string) (*Rewriter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("anthropic rewriter: API キーが設定されていません")
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = config.DefaultAnthropicModel
	}
	return &Rewriter{
		messages: &client.Messages,
		model:    anthropic.Model(model),
	}, nil
}

/**
 * Anthropic クライアントは後片付け不要なので互換性のためだけに戻り値を返す。
 */
func (r *Rewriter) Close() error {
	return nil
}

/**
 * 組み立て済みの指示文を Anthropic に渡し、書き換え後のテキストを受け取る。
 */
func (r *Rewriter) Complete(ctx context.Context, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", llm.ErrInvalidRequest
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := r.messages.New(ctx, anthropic.MessageNewParams{
		Model:     r.model,
		MaxTokens: maxOutputTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(instruction)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrBackendUnavailable, err)
	}

	return extractFirstText(resp)
}

/**
 * Anthropic の返答ブロックから最初に意味を持つテキストを拾う。
 */
func extractFirstText(resp *anthropic.Message) (string, error) {
	if resp == nil || len(resp.Content) == 0 {
		return "", llm.ErrInvalidResponse
	}
	for _, block := range resp.Content {
		trimmed := strings.TrimSpace(block.Text)
		if trimmed != "" {
			return trimmed, nil
		}
	}
	return "", llm.ErrInvalidResponse
}

var _ llm.Completer = (*Rewriter)(nil)
