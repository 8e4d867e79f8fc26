package dto

import (
	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// ChatRequest 助手对话请求。
// 字段约束与对话端点契约一致：message 1-2000、chapterNumber 1-5、chapterTitle 1-200
type ChatRequest struct {
	DocumentID    string `json:"document_id" binding:"max=64"`
	Message       string `json:"message" binding:"required,min=1,max=2000"`
	ChapterNumber int    `json:"chapter_number" binding:"required,min=1,max=5"`
	ChapterTitle  string `json:"chapter_title" binding:"required,min=1,max=200"`
}

// ChatResponse 助手对话响应，Insertable 为净化后可直接插入文档的正文
type ChatResponse struct {
	Reply      entity.Message `json:"reply"`
	Insertable string         `json:"insertable"`
}

// MessagesResponse 会话历史响应
type MessagesResponse struct {
	Messages []entity.Message `json:"messages"`
}

// SuggestionsResponse 章节快捷提问响应
type SuggestionsResponse struct {
	ChapterNumber int      `json:"chapter_number"`
	Suggestions   []string `json:"suggestions"`
	Welcome       string   `json:"welcome"`
}
