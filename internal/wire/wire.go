// Package wire 手工组装应用依赖
package wire

import (
	"fmt"
	"net/http"

	"github.com/MrJerard79809/capstone-scribe/internal/application/companion"
	"github.com/MrJerard79809/capstone-scribe/internal/application/document"
	"github.com/MrJerard79809/capstone-scribe/internal/application/generation"
	"github.com/MrJerard79809/capstone-scribe/internal/config"
	"github.com/MrJerard79809/capstone-scribe/internal/infrastructure/llm"
	"github.com/MrJerard79809/capstone-scribe/internal/infrastructure/persistence/redis"
	"github.com/MrJerard79809/capstone-scribe/internal/interfaces/http/handler"
	"github.com/MrJerard79809/capstone-scribe/internal/interfaces/http/router"
	"github.com/MrJerard79809/capstone-scribe/internal/workflow/chain"
)

// App 组装完成的应用
type App struct {
	router *router.Router
}

// Engine 返回 HTTP 引擎
func (a *App) Engine() http.Handler {
	return a.router.Engine()
}

// InitializeApp 按配置组装全部依赖，返回应用与资源清理函数
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	cleanup := func() {}

	// Redis 可选：关闭时限流与标题缓存全部降级
	var redisClient *redis.Client
	if cfg.Cache.Redis.Enabled {
		client, err := redis.NewClient(&cfg.Cache.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect redis: %w", err)
		}
		redisClient = client
		cleanup = func() { _ = client.Close() }
	}

	// 生成引擎与服务
	var engineOpts []generation.Option
	if cfg.Generation.Seed != 0 {
		engineOpts = append(engineOpts, generation.WithSeed(cfg.Generation.Seed))
	}
	engine := generation.NewEngine(engineOpts...)

	var titleCache generation.TitleCache
	if redisClient != nil {
		titleCache = redis.NewCache(redisClient)
	}
	generationSvc := generation.NewService(engine, titleCache, cfg.Generation.TitleCacheTTL)

	// 文档编辑
	editor := document.NewEditor(document.NewStore())

	// 写作助手策略
	strategy, err := buildCompanionStrategy(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	companionSvc := companion.NewService(strategy, cfg.Companion.HistoryLimit)

	// 限流器
	var chatLimiter *redis.RateLimiter
	if redisClient != nil {
		chatLimiter = redis.NewRateLimiter(redisClient)
	}

	handlers := router.Handlers{
		Health:     handler.NewHealthHandler(redisClient, cfg.App.Version),
		Generation: handler.NewGenerationHandler(generationSvc),
		Document:   handler.NewDocumentHandler(editor),
		Companion:  handler.NewCompanionHandler(companionSvc),
	}
	if chatLimiter != nil {
		handlers.ChatLimiter = chatLimiter
	}

	return &App{router: router.New(cfg, handlers)}, cleanup, nil
}

// buildCompanionStrategy 按配置选择回复策略
func buildCompanionStrategy(cfg *config.Config) (companion.Strategy, error) {
	switch cfg.Companion.Strategy {
	case "", "local":
		return companion.NewLocalStrategy(), nil
	case "gateway":
		if cfg.Companion.Gateway.Endpoint == "" {
			return nil, fmt.Errorf("companion.gateway.endpoint is required for gateway strategy")
		}
		var client *http.Client
		if cfg.Companion.Gateway.Timeout > 0 {
			client = &http.Client{Timeout: cfg.Companion.Gateway.Timeout}
		}
		return companion.NewGatewayStrategy(cfg.Companion.Gateway.Endpoint, cfg.Companion.Gateway.APIKey, client), nil
	case "model":
		factory := llm.NewEinoFactory(cfg)
		return companion.NewModelStrategy(chain.NewCompanionChain(factory), cfg.LLM.DefaultProvider), nil
	default:
		return nil, fmt.Errorf("unknown companion strategy: %s", cfg.Companion.Strategy)
	}
}
