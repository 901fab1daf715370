package llm

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrInvalidRequest は書き換え依頼が契約を満たさない場合に返される。
	ErrInvalidRequest = errors.New("llm: 書き換え依頼が不正です")
	// ErrInvalidResponse はバックエンドの応答が期待する形式でない場合に返される。
	ErrInvalidResponse = errors.New("llm: 期待する形式で出力されませんでした")
	// ErrBackendUnavailable はバックエンドへの接続や呼び出しが失敗した場合に返される。
	ErrBackendUnavailable = errors.New("llm: 文面サービスに接続できません")
)

// Source は書き換え結果がどの経路で生成されたかを表す。
type Source string

const (
	// SourceLLM is set when the text went through the generative backend.
	SourceLLM Source = "llm"
	// SourcePassthrough is set when no backend is configured and the draft
	// is returned unchanged.
	SourcePassthrough Source = "passthrough"
)

/**
 * 書き換え依頼の契約
 * Text: 書き換え対象の本文（必須）
 * RecipientContext: 宛先の階級など、任意の修飾（例: "Admiral"）
 * SubjectContext: 主題の分野など、任意の修飾（例: "logistics"）
 */
type RewriteRequest struct {
	Text             string
	RecipientContext string
	SubjectContext   string
}

/**
 * 生成バックエンドの契約
 * Complete: 組み立てた指示文を渡し、書き換え後の生テキストを受け取る。
 * 外部呼び出しはこの一点に集約され、失敗は ErrBackendUnavailable として返る。
 */
type Completer interface {
	Complete(ctx context.Context, instruction string) (string, error)
}

// ValidateRequest checks the inbound contract: the request must exist and
// carry a body that is non-empty after whitespace trimming. Optional context
// modifiers are free-form and need no validation here.
func ValidateRequest(req *RewriteRequest) error {
	if req == nil {
		return ErrInvalidRequest
	}
	if strings.TrimSpace(req.Text) == "" {
		return ErrInvalidRequest
	}
	return nil
}

// ValidateResponse checks the outbound contract: the backend must have
// produced usable text. It returns the trimmed text on success so a
// misbehaving backend cannot slip whitespace-only output past the caller.
func ValidateResponse(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidResponse
	}
	return trimmed, nil
}
