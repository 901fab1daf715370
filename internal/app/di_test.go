package app

import (
	"context"
	"errors"
	"testing"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/config"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"
	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/usecase/rewrite/testutil"
)

func swapFactories(t *testing.T) {
	t.Helper()
	origLoader := providerLoader
	origOpenAI := openaiBackendFactory
	origGemini := geminiBackendFactory
	origAnthropic := anthropicBackendFactory
	t.Cleanup(func() {
		providerLoader = origLoader
		openaiBackendFactory = origOpenAI
		geminiBackendFactory = origGemini
		anthropicBackendFactory = origAnthropic
	})
}

func TestNewContainer_PassthroughWhenProviderNone(t *testing.T) {
	swapFactories(t)
	providerLoader = func() string { return config.ProviderNone }

	container, err := NewContainer(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if container.RewriteHandler == nil {
		t.Fatalf("expected rewrite handler to be built")
	}
	if err := container.Close(); err != nil {
		t.Fatalf("close without backend must not error: %v", err)
	}
}

func TestNewContainer_SelectsConfiguredProvider(t *testing.T) {
	cases := []struct {
		provider string
		set      func(backend llm.Completer, called *string)
	}{
		{
			provider: config.ProviderOpenAI,
			set: func(backend llm.Completer, called *string) {
				openaiBackendFactory = func() (llm.Completer, func() error, error) {
					*called = config.ProviderOpenAI
					return backend, nil, nil
				}
			},
		},
		{
			provider: config.ProviderGemini,
			set: func(backend llm.Completer, called *string) {
				geminiBackendFactory = func(ctx context.Context) (llm.Completer, func() error, error) {
					*called = config.ProviderGemini
					return backend, nil, nil
				}
			},
		},
		{
			provider: config.ProviderAnthropic,
			set: func(backend llm.Completer, called *string) {
				anthropicBackendFactory = func() (llm.Completer, func() error, error) {
					*called = config.ProviderAnthropic
					return backend, nil, nil
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			swapFactories(t)
			providerLoader = func() string { return tc.provider }

			var called string
			tc.set(&testutil.StubCompleter{Raw: "ok"}, &called)

			container, err := NewContainer(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if called != tc.provider {
				t.Fatalf("expected %s factory to run, got %q", tc.provider, called)
			}
			if container.RewriteHandler == nil {
				t.Fatalf("expected rewrite handler to be built")
			}
		})
	}
}

func TestNewContainer_BackendFactoryError(t *testing.T) {
	swapFactories(t)
	providerLoader = func() string { return config.ProviderOpenAI }
	openaiBackendFactory = func() (llm.Completer, func() error, error) {
		return nil, nil, errors.New("missing key")
	}

	if _, err := NewContainer(context.Background()); err == nil {
		t.Fatalf("expected factory error to propagate")
	}
}

func TestContainer_CloseDelegatesToBackend(t *testing.T) {
	var closed bool
	container := &Container{closeBackend: func() error {
		closed = true
		return nil
	}}
	if err := container.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closed {
		t.Fatalf("expected backend close to run")
	}

	var nilContainer *Container
	if err := nilContainer.Close(); err != nil {
		t.Fatalf("nil container close must not error")
	}
}
