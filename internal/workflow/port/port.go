package port

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ChatModelFactory 定义工作流层对 LLM ChatModel 的最小依赖（port）。
type ChatModelFactory interface {
	Get(ctx context.Context, name string) (model.BaseChatModel, error)
	// ModelName 返回提供商配置的模型名，用于指标标签；name 为空时取默认提供商
	ModelName(name string) string
}
