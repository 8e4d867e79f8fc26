package companion

import (
	"context"

	"github.com/MrJerard79809/capstone-scribe/internal/workflow/chain"
	wfmodel "github.com/MrJerard79809/capstone-scribe/internal/workflow/model"
	"github.com/MrJerard79809/capstone-scribe/pkg/errors"
)

// ModelStrategy 直连 LLM 提供商的策略，经由助手对话链完成调用
type ModelStrategy struct {
	chain    *chain.CompanionChain
	provider string
}

// NewModelStrategy 创建模型策略，provider 为空时使用默认提供商
func NewModelStrategy(c *chain.CompanionChain, provider string) *ModelStrategy {
	return &ModelStrategy{chain: c, provider: provider}
}

// Name 实现 Strategy
func (s *ModelStrategy) Name() string { return "model" }

// Reply 调用对话链生成回复
func (s *ModelStrategy) Reply(ctx context.Context, in ChatInput) (string, error) {
	text, err := s.chain.Invoke(ctx, &wfmodel.CompanionChatInput{
		Provider:      s.provider,
		Message:       in.Message,
		ChapterNumber: in.ChapterNumber,
		ChapterTitle:  in.ChapterTitle,
	})
	if err != nil {
		return "", errors.ErrLLMCallFailed.WithError(err)
	}
	return text, nil
}
