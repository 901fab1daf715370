package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter は HTTP ハンドラーを紐づけた gin.Engine を返す。
// UI は別オリジンで配信されるため CORS を許可しておく。
func NewRouter(rewriteHandler *RewriteHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	router.POST("/letters/rewrite", rewriteHandler.RewriteLetter)

	return router
}
