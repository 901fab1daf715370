package main

import (
	"context"
	"log"

	rewritehandler "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/adapter/http/handler"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/app"
)

// main.go で使用する依存の差し替えポイントを集約したファイル

type containerFactory func(ctx context.Context) (*app.Container, error)

type routerFactory func(rewriteHandler *rewritehandler.RewriteHandler) routerRunner

type routerRunner interface {
	Run(...string) error
}

type containerCloser func(container *app.Container) error

var (
	newContainer containerFactory = app.NewContainer
	newRouter    routerFactory    = func(rewriteHandler *rewritehandler.RewriteHandler) routerRunner {
		return rewritehandler.NewRouter(rewriteHandler)
	}
	closeContainer containerCloser = func(container *app.Container) error {
		return container.Close()
	}
	runFunc = run
	fatalf  = log.Fatalf
)
