package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/SemperAdmin/naval-letter-formatter-sub001/internal/port/llm"
	rewriteusecase "github.com/SemperAdmin/naval-letter-formatter-sub001/internal/usecase/rewrite"

	"github.com/gin-gonic/gin"
)

const (
	messageRewriteInvalidRequest = "invalid rewrite request"
	messageBackendUnavailable    = "letter service is unavailable"
	messageInternalError         = "internal server error"
)

// 文面書き換えユースケースの契約。
type RewriteExecutor interface {
	Execute(ctx context.Context, in *rewriteusecase.RewriteInput) (*rewriteusecase.RewriteOutput, error)
}

type RewriteHandler struct {
	rewriteUsecase RewriteExecutor
}

// RewriteHandler を生成する。
func NewRewriteHandler(usecase RewriteExecutor) *RewriteHandler {
	return &RewriteHandler{rewriteUsecase: usecase}
}

// POST /letters/rewrite の入力。
type RewriteLetterRequest struct {
	Text             string `json:"text"`
	RecipientContext string `json:"recipient_context"`
	SubjectContext   string `json:"subject_context"`
}

// 書き換え結果を表す。
type RewriteLetterResponse struct {
	Output string `json:"output"`
	Source string `json:"source"`
}

type errorResponse struct {
	Message string `json:"message"`
}

/**
 * POST /letters/rewrite のリクエストを検証し、ユースケースへ委譲して結果を返す。
 * 失敗時は漏洩のない一般的なメッセージだけを返し、output は一切含めない。
 */
func (h *RewriteHandler) RewriteLetter(c *gin.Context) {
	var req RewriteLetterRequest
	// JSON パースに失敗したら入力不備
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageRewriteInvalidRequest})
		return
	}

	out, err := h.rewriteUsecase.Execute(c.Request.Context(), &rewriteusecase.RewriteInput{
		Text:             req.Text,
		RecipientContext: req.RecipientContext,
		SubjectContext:   req.SubjectContext,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, RewriteLetterResponse{
		Output: out.Text,
		Source: string(out.Source),
	})
}

/**
 * ユースケースからのエラーを HTTP ステータスとメッセージへ写し替える。
 */
func (h *RewriteHandler) handleError(c *gin.Context, err error) {
	switch {
	// 契約違反の入力
	case errors.Is(err, rewriteusecase.ErrNilInput),
		errors.Is(err, llm.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageRewriteInvalidRequest})
	// バックエンド障害、もしくは契約を満たさない応答
	case errors.Is(err, llm.ErrBackendUnavailable),
		errors.Is(err, llm.ErrInvalidResponse):
		log.Printf("POST /letters/rewrite backend 失敗: %v", err)
		c.JSON(http.StatusBadGateway, errorResponse{Message: messageBackendUnavailable})
	default:
		log.Printf("POST /letters/rewrite 失敗: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Message: messageInternalError})
	}
}
