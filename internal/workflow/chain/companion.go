// Package chain 编排提示词模板与 ChatModel 的调用链
package chain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	wfmodel "github.com/MrJerard79809/capstone-scribe/internal/workflow/model"
	workflowport "github.com/MrJerard79809/capstone-scribe/internal/workflow/port"
	workflowprompt "github.com/MrJerard79809/capstone-scribe/internal/workflow/prompt"
	"github.com/MrJerard79809/capstone-scribe/pkg/metrics"
)

// chapterLabels 各章节在提示词中的称谓
var chapterLabels = map[int]string{
	1: "Introduction",
	2: "Literature Review",
	3: "Methodology",
	4: "Results & Analysis",
	5: "Conclusion & Recommendations",
}

// CompanionChain 助手对话链：模板渲染 -> ChatModel 生成
type CompanionChain struct {
	factory workflowport.ChatModelFactory
}

// NewCompanionChain 创建助手对话链
func NewCompanionChain(factory workflowport.ChatModelFactory) *CompanionChain {
	return &CompanionChain{factory: factory}
}

var companionPromptRegistry = workflowprompt.NewRegistry()

// Invoke 同步生成一条助手回复
func (c *CompanionChain) Invoke(ctx context.Context, in *wfmodel.CompanionChatInput) (string, error) {
	if c == nil || c.factory == nil {
		return "", fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return "", fmt.Errorf("input is nil")
	}
	if strings.TrimSpace(in.Message) == "" {
		return "", fmt.Errorf("message is required")
	}
	if in.ChapterNumber < 1 || in.ChapterNumber > 5 {
		return "", fmt.Errorf("chapter number out of range: %d", in.ChapterNumber)
	}

	chatModel, err := c.factory.Get(ctx, strings.TrimSpace(in.Provider))
	if err != nil {
		return "", err
	}

	msgs, err := formatCompanionMessages(ctx, in)
	if err != nil {
		return "", err
	}

	modelName := c.factory.ModelName(in.Provider)

	start := time.Now()
	outMsg, err := chatModel.Generate(ctx, msgs)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.LLMCallTotal.WithLabelValues(in.Provider, modelName, status).Inc()
	metrics.LLMCallDuration.WithLabelValues(in.Provider, modelName).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	if outMsg != nil && outMsg.ResponseMeta != nil && outMsg.ResponseMeta.Usage != nil {
		usage := outMsg.ResponseMeta.Usage
		metrics.LLMTokensUsed.WithLabelValues(in.Provider, modelName, "prompt").Add(float64(usage.PromptTokens))
		metrics.LLMTokensUsed.WithLabelValues(in.Provider, modelName, "completion").Add(float64(usage.CompletionTokens))
	}
	if outMsg == nil || outMsg.Content == "" {
		return "", fmt.Errorf("empty llm response")
	}
	return outMsg.Content, nil
}

func formatCompanionMessages(ctx context.Context, in *wfmodel.CompanionChatInput) ([]*schema.Message, error) {
	tpl, err := companionPromptRegistry.ChatTemplate(workflowprompt.PromptCompanionChatV1)
	if err != nil {
		return nil, err
	}
	return tpl.Format(ctx, map[string]any{
		"chapter_number": strconv.Itoa(in.ChapterNumber),
		"chapter_label":  chapterLabels[in.ChapterNumber],
		"chapter_title":  in.ChapterTitle,
		"message":        in.Message,
	})
}
