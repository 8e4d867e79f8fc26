// Package companion 实现章节写作助手：本地罐装回复、网关转发
// 与直连模型三种可配置策略，以及会话历史维护
package companion

import (
	"context"
)

// ChatInput 一次对话请求的输入，字段校验由 HTTP 层完成
type ChatInput struct {
	Message       string
	ChapterNumber int
	ChapterTitle  string
}

// Strategy 回复生成策略
type Strategy interface {
	// Name 策略名，用于日志与指标标签
	Name() string
	// Reply 生成助手回复文本
	Reply(ctx context.Context, in ChatInput) (string, error)
}
