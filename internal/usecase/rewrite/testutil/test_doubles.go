package testutil

import (
	"context"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"
)

// 応答とエラーを切り替えられるテスト用の生成バックエンド。
type StubCompleter struct {
	Raw             string
	Err             error
	Called          bool
	LastInstruction string
}

/**
 * 受け取った指示文を覚えて、設定された応答かエラーを返す。
 */
func (s *StubCompleter) Complete(ctx context.Context, instruction string) (string, error) {
	s.Called = true
	s.LastInstruction = instruction
	if s.Err != nil {
		return "", s.Err
	}
	return s.Raw, nil
}

var _ llm.Completer = (*StubCompleter)(nil)
