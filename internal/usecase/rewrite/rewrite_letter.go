package rewrite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/domain/letter"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"
)

var (
	// ErrNilInput はユースケースに nil 入力が渡された際に返される。
	ErrNilInput = errors.New("rewrite_letter: input is nil")
)

// 手紙書き換えの入力値
type RewriteInput struct {
	Text             string
	RecipientContext string
	SubjectContext   string
}

// 書き換え後に呼び出し側へ返す値
type RewriteOutput struct {
	Text   string
	Source llm.Source
}

/**
 * 手紙の文面書き換えユースケース
 * backend: 生成バックエンド。nil のときはパススルーモードで動作し、
 * 指示文の組み立てもバックエンド呼び出しも行わず下書きをそのまま返す。
 */
type LetterRewriteUsecase struct {
	backend llm.Completer
}

/**
 * 生成バックエンド込みで初期化する。
 */
func NewLetterRewriteUsecase(backend llm.Completer) *LetterRewriteUsecase {
	return &LetterRewriteUsecase{backend: backend}
}

/**
 * バックエンドなしのパススルーモードで初期化する。
 * 入力の契約は通常モードと同一で、呼び出し側からは失敗の形で区別できない。
 */
func NewPassthroughUsecase() *LetterRewriteUsecase {
	return &LetterRewriteUsecase{}
}

/**
 * 手紙書き換えの実行
 * 依頼の検証 → 指示文の組み立て → バックエンド呼び出し → 応答の検証、の順に進み、
 * どの段階の失敗も llm パッケージの番兵エラーへ写し替えて返す。
 */
func (u *LetterRewriteUsecase) Execute(ctx context.Context, in *RewriteInput) (*RewriteOutput, error) {
	if in == nil {
		return nil, ErrNilInput
	}

	req := &llm.RewriteRequest{
		Text:             in.Text,
		RecipientContext: in.RecipientContext,
		SubjectContext:   in.SubjectContext,
	}
	if err := llm.ValidateRequest(req); err != nil {
		return nil, err
	}

	l, err := letter.New(req.Text, req.RecipientContext, req.SubjectContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrInvalidRequest, err)
	}

	if u.backend == nil {
		// バックエンド未設定時は下書きを無加工で返す
		return &RewriteOutput{Text: l.Body(), Source: llm.SourcePassthrough}, nil
	}

	raw, err := u.backend.Complete(ctx, BuildInstruction(l))
	if err != nil {
		// アダプタが分類済みのエラーはそのまま、未知の失敗はバックエンド障害として返す
		if errors.Is(err, llm.ErrInvalidResponse) || errors.Is(err, llm.ErrBackendUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", llm.ErrBackendUnavailable, err)
	}

	text, err := llm.ValidateResponse(raw)
	if err != nil {
		return nil, err
	}

	return &RewriteOutput{Text: text, Source: llm.SourceLLM}, nil
}

// 指示文を構成する節。applies が真のときだけ build の出力を採用する。
type instructionClause struct {
	applies func(l *letter.Letter) bool
	build   func(l *letter.Letter) string
}

func always(*letter.Letter) bool { return true }

// 節の並びは固定: 本文 → 宛先 → 主題 → 締めの指示。
var instructionClauses = []instructionClause{
	{
		applies: always,
		build: func(l *letter.Letter) string {
			return fmt.Sprintf("Rewrite the tone of the following letter.\n\nLetter:\n%s", strings.TrimSpace(l.Body()))
		},
	},
	{
		applies: (*letter.Letter).HasRecipientRank,
		build: func(l *letter.Letter) string {
			return fmt.Sprintf("The letter is addressed to a recipient of rank %q. Use the level of deference appropriate for that rank.", l.RecipientRank())
		},
	},
	{
		applies: (*letter.Letter).HasSubject,
		build: func(l *letter.Letter) string {
			return fmt.Sprintf("The subject matter of the letter is %q.", l.Subject())
		},
	},
	{
		applies: always,
		build: func(*letter.Letter) string {
			return "Rewrite the letter so it is professional, respectful, and appropriate for the context. Return only the rewritten letter text, with no commentary or preamble."
		},
	},
}

// BuildInstruction assembles the backend instruction from the gated clauses
// in their fixed order. The output is deterministic for a given letter.
func BuildInstruction(l *letter.Letter) string {
	parts := make([]string, 0, len(instructionClauses))
	for _, clause := range instructionClauses {
		if !clause.applies(l) {
			continue
		}
		parts = append(parts, clause.build(l))
	}
	return strings.Join(parts, "\n\n")
}
