package generation

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
	"github.com/MrJerard79809/capstone-scribe/pkg/errors"
	"github.com/MrJerard79809/capstone-scribe/pkg/logger"
	"github.com/MrJerard79809/capstone-scribe/pkg/metrics"
)

// TitleCache 标题候选缓存的最小依赖，由 Redis 缓存实现
type TitleCache interface {
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, error)
}

// Service 生成服务：包装引擎，叠加可选的标题候选缓存与指标上报。
// 缓存带来短 TTL 内的重复输入稳定性，关闭缓存时每次调用独立随机
type Service struct {
	engine *Engine
	cache  TitleCache
	ttl    time.Duration
}

// NewService 创建生成服务，cache 为 nil 或 ttl <= 0 时不启用缓存
func NewService(engine *Engine, cache TitleCache, ttl time.Duration) *Service {
	return &Service{engine: engine, cache: cache, ttl: ttl}
}

// titleCacheKey 同一表单输入映射到同一缓存键
func titleCacheKey(input entity.FormInput) string {
	h := sha1.New()
	h.Write([]byte(input.Field))
	h.Write([]byte{0})
	h.Write([]byte(input.Topic))
	h.Write([]byte{0})
	h.Write([]byte(input.Keywords))
	h.Write([]byte{0})
	h.Write([]byte(input.ResearchType))
	return "titles:" + hex.EncodeToString(h.Sum(nil))
}

// TitleOptions 生成标题候选，启用缓存时相同输入在 TTL 内返回同一批候选
func (s *Service) TitleOptions(ctx context.Context, input entity.FormInput) ([]string, error) {
	if s.cache == nil || s.ttl <= 0 {
		metrics.TitleOptionsTotal.WithLabelValues(input.Field, "direct").Inc()
		return s.engine.GenerateTitleOptions(input), nil
	}

	raw, err := s.cache.GetOrLoad(ctx, titleCacheKey(input), s.ttl, func() (interface{}, error) {
		return s.engine.GenerateTitleOptions(input), nil
	})
	if err != nil {
		// 缓存故障降级为直接生成
		logger.Warn(ctx, "title cache unavailable, generating directly", "error", err)
		metrics.TitleOptionsTotal.WithLabelValues(input.Field, "direct").Inc()
		return s.engine.GenerateTitleOptions(input), nil
	}

	var titles []string
	if err := json.Unmarshal(raw, &titles); err != nil {
		return nil, errors.Wrap(err, errors.CodeCacheError, "corrupt cached title options")
	}
	metrics.TitleOptionsTotal.WithLabelValues(input.Field, "cached").Inc()
	return titles, nil
}

// Generate 组装完整项目骨架
func (s *Service) Generate(ctx context.Context, input entity.FormInput, chosenTitle string) (*entity.GeneratedProject, error) {
	start := time.Now()

	project := s.engine.AssembleProject(input, chosenTitle)

	metrics.ProjectGenerationTotal.WithLabelValues(input.Field, "success").Inc()
	metrics.GenerationDuration.WithLabelValues(input.Field).Observe(time.Since(start).Seconds())
	logger.Info(ctx, "project assembled",
		"field", input.Field,
		"topic", input.Topic,
		"chapters", len(project.Chapters),
	)
	return project, nil
}
