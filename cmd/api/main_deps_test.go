package main

import (
	"testing"

	rewritehandler "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/adapter/http/handler"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/app"
)

/**
 * デフォルトの依存生成とクローズが動作することを確認する。
 */
func TestMainDeps_DefaultDepsAreCallable(t *testing.T) {
	router := newRouter(&rewritehandler.RewriteHandler{})
	if router == nil {
		t.Fatalf("router の生成に失敗しました")
	}

	if err := closeContainer(&app.Container{}); err != nil {
		t.Fatalf("container の close に失敗しました: %v", err)
	}
}
