// Package model 定义工作流的输入输出模型
package model

// CompanionChatInput 助手对话工作流输入
type CompanionChatInput struct {
	// Provider 为空时使用配置的默认提供商
	Provider      string
	Message       string
	ChapterNumber int
	ChapterTitle  string
}
