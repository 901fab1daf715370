package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"
	rewriteusecase "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/usecase/rewrite"

	"github.com/gin-gonic/gin"
)

type stubRewriteUsecase struct {
	out *rewriteusecase.RewriteOutput
	err error
	in  *rewriteusecase.RewriteInput
}

func (s *stubRewriteUsecase) Execute(ctx context.Context, in *rewriteusecase.RewriteInput) (*rewriteusecase.RewriteOutput, error) {
	s.in = in
	return s.out, s.err
}

func performRewrite(router *gin.Engine, payload any) (*httptest.ResponseRecorder, []byte) {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/letters/rewrite", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	raw, _ := io.ReadAll(rec.Body)
	return rec, raw
}

func decodeBody(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("failed to decode body %s: %v", body, err)
	}
}

func TestRewriteHandler_RewriteLetter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		stub := &stubRewriteUsecase{
			out: &rewriteusecase.RewriteOutput{Text: "Respectfully submitted.", Source: llm.SourceLLM},
		}
		router := NewRouter(NewRewriteHandler(stub))

		rec, body := performRewrite(router, RewriteLetterRequest{
			Text:             "Approve this now.",
			RecipientContext: "Admiral",
			SubjectContext:   "logistics",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d but got %d", http.StatusOK, rec.Code)
		}

		var got RewriteLetterResponse
		decodeBody(t, body, &got)

		want := RewriteLetterResponse{Output: "Respectfully submitted.", Source: "llm"}
		if got != want {
			t.Fatalf("unexpected response: %+v", got)
		}
		if stub.in == nil || stub.in.RecipientContext != "Admiral" || stub.in.SubjectContext != "logistics" {
			t.Fatalf("usecase input not forwarded: %+v", stub.in)
		}
	})

	t.Run("passthrough", func(t *testing.T) {
		stub := &stubRewriteUsecase{
			out: &rewriteusecase.RewriteOutput{Text: "Request approved.", Source: llm.SourcePassthrough},
		}
		router := NewRouter(NewRewriteHandler(stub))

		rec, body := performRewrite(router, RewriteLetterRequest{Text: "Request approved."})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d but got %d", http.StatusOK, rec.Code)
		}

		var got RewriteLetterResponse
		decodeBody(t, body, &got)

		if got.Output != "Request approved." || got.Source != "passthrough" {
			t.Fatalf("unexpected response: %+v", got)
		}
	})

	t.Run("invalid request", func(t *testing.T) {
		stub := &stubRewriteUsecase{err: llm.ErrInvalidRequest}
		router := NewRouter(NewRewriteHandler(stub))

		rec, body := performRewrite(router, RewriteLetterRequest{Text: ""})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d but got %d", http.StatusBadRequest, rec.Code)
		}

		var got errorResponse
		decodeBody(t, body, &got)
		if got.Message != messageRewriteInvalidRequest {
			t.Fatalf("expected message %q but got %q", messageRewriteInvalidRequest, got.Message)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		stub := &stubRewriteUsecase{}
		router := NewRouter(NewRewriteHandler(stub))

		req := httptest.NewRequest(http.MethodPost, "/letters/rewrite", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d but got %d", http.StatusBadRequest, rec.Code)
		}
		if stub.in != nil {
			t.Fatalf("usecase must not run on malformed input")
		}
	})

	t.Run("backend unavailable", func(t *testing.T) {
		stub := &stubRewriteUsecase{err: llm.ErrBackendUnavailable}
		router := NewRouter(NewRewriteHandler(stub))

		rec, body := performRewrite(router, RewriteLetterRequest{Text: "See attached."})

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected status %d but got %d", http.StatusBadGateway, rec.Code)
		}

		var got errorResponse
		decodeBody(t, body, &got)
		if got.Message != messageBackendUnavailable {
			t.Fatalf("expected message %q but got %q", messageBackendUnavailable, got.Message)
		}
	})

	t.Run("invalid backend response", func(t *testing.T) {
		stub := &stubRewriteUsecase{err: llm.ErrInvalidResponse}
		router := NewRouter(NewRewriteHandler(stub))

		rec, _ := performRewrite(router, RewriteLetterRequest{Text: "See attached."})

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected status %d but got %d", http.StatusBadGateway, rec.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		stub := &stubRewriteUsecase{err: errors.New("boom")}
		router := NewRouter(NewRewriteHandler(stub))

		rec, body := performRewrite(router, RewriteLetterRequest{Text: "See attached."})

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d but got %d", http.StatusInternalServerError, rec.Code)
		}

		var got errorResponse
		decodeBody(t, body, &got)
		if got.Message != messageInternalError {
			t.Fatalf("expected message %q but got %q", messageInternalError, got.Message)
		}
	})
}

func TestRouter_Ping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewRewriteHandler(&stubRewriteUsecase{}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d but got %d", http.StatusOK, rec.Code)
	}
}
