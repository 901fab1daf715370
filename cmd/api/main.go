package main

import (
	"context"
	"fmt"
	"log"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/config"
)

func main() {
	config.LoadDotEnv()

	if err := runFunc(context.Background()); err != nil {
		fatalf("failed to start api: %v", err)
	}
}

/**
 * 依存を初期化し、HTTP サーバーを起動する。
 * サーバー終了時はコンテナの後片付けを行い、失敗はログに残すだけにする。
 */
func run(ctx context.Context) error {
	container, err := newContainer(ctx)
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}
	defer func() {
		if cerr := closeContainer(container); cerr != nil {
			log.Printf("shutdown error: %v", cerr)
		}
	}()

	router := newRouter(container.RewriteHandler)
	if err := router.Run(); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
