package router

import (
	"github.com/gin-gonic/gin"

	"github.com/MrJerard79809/capstone-scribe/internal/config"
	"github.com/MrJerard79809/capstone-scribe/internal/interfaces/http/middleware"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, cfg *config.Config, h Handlers) {
	// 生成引擎
	v1.POST("/titles", h.Generation.TitleOptions)
	v1.POST("/projects/generate", h.Generation.Generate)

	// 文档编辑
	documents := v1.Group("/documents")
	{
		documents.POST("", h.Document.Create)
		documents.GET("/:did", h.Document.Get)
		documents.PUT("/:did", h.Document.UpdateTitle)
		documents.POST("/:did/save", h.Document.Save)
		documents.GET("/:did/export", h.Document.Export)

		documents.PUT("/:did/chapters/:num", h.Document.UpdateChapter)
		documents.PUT("/:did/chapters/:num/sections/:idx", h.Document.UpdateSection)

		// 章节会话历史
		documents.GET("/:did/chapters/:num/messages", h.Companion.Messages)
	}

	// 写作助手，聊天端点单独限流
	comp := v1.Group("/companion")
	{
		chatLimit := middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:           cfg.Security.RateLimit.Enabled,
			RequestsPerSecond: cfg.Security.RateLimit.RequestsPerSecond,
			KeyPrefix:         "ratelimit:chat",
		}, h.ChatLimiter)

		comp.POST("/chat", chatLimit, h.Companion.Chat)
		comp.GET("/suggestions", h.Companion.Suggestions)
	}
}
