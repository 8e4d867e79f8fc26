package generation

import (
	"math/rand"
	"sync"
	"time"
)

// Engine 文档生成引擎。随机源可注入，便于测试固定序列；
// 内部用互斥锁保护随机源，生成调用可被多个请求并发发起。
type Engine struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// Option 引擎配置项
type Option func(*Engine)

// WithSeed 使用固定种子的随机源
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRand 直接注入随机源
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// NewEngine 创建生成引擎，默认使用系统时间作为随机种子
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// pick 返回 [0, n) 内的随机下标
func (e *Engine) pick(n int) int {
	if n <= 1 {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Intn(n)
}
