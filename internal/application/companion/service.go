package companion

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
	"github.com/MrJerard79809/capstone-scribe/pkg/logger"
	"github.com/MrJerard79809/capstone-scribe/pkg/metrics"
)

// defaultHistoryLimit 单个会话保留的消息上限
const defaultHistoryLimit = 100

// Service 写作助手服务：持有回复策略与按 文档+章节 维度的会话历史。
// 策略失败时会话仍保持连贯：用户消息与一条占位回复都会入史
type Service struct {
	mu           sync.Mutex
	strategy     Strategy
	histories    map[string][]entity.Message
	historyLimit int
}

// NewService 创建助手服务，limit <= 0 时使用默认历史上限
func NewService(strategy Strategy, limit int) *Service {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &Service{
		strategy:     strategy,
		histories:    make(map[string][]entity.Message),
		historyLimit: limit,
	}
}

func historyKey(documentID string, chapterNumber int) string {
	return documentID + "#" + strconv.Itoa(chapterNumber)
}

// Chat 处理一轮对话：用户消息入史，策略生成回复；
// 失败时追加占位回复并返回错误，调用方据此下发差异化提示
func (s *Service) Chat(ctx context.Context, documentID string, in ChatInput) (entity.Message, error) {
	start := time.Now()

	s.mu.Lock()
	key := historyKey(documentID, in.ChapterNumber)
	s.ensureSeededLocked(key, in.ChapterNumber)
	s.appendLocked(key, entity.Message{
		ID:        uuid.NewString(),
		Role:      entity.RoleUser,
		Content:   in.Message,
		CreatedAt: time.Now(),
	})
	s.mu.Unlock()

	reply, err := s.strategy.Reply(ctx, in)
	status := "success"
	if err != nil {
		status = "error"
		reply = fallbackReply
		logger.Warn(ctx, "companion strategy failed",
			"strategy", s.strategy.Name(),
			"chapter", in.ChapterNumber,
			"error", err,
		)
	}

	msg := entity.Message{
		ID:        uuid.NewString(),
		Role:      entity.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.appendLocked(key, msg)
	s.mu.Unlock()

	metrics.CompanionRequestsTotal.WithLabelValues(s.strategy.Name(), strconv.Itoa(in.ChapterNumber), status).Inc()
	metrics.CompanionRequestDuration.WithLabelValues(s.strategy.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		return msg, err
	}
	return msg, nil
}

// History 返回会话历史副本，空会话先播种开场白
func (s *Service) History(documentID string, chapterNumber int) []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := historyKey(documentID, chapterNumber)
	s.ensureSeededLocked(key, chapterNumber)

	history := s.histories[key]
	out := make([]entity.Message, len(history))
	copy(out, history)
	return out
}

// ensureSeededLocked 空会话时写入章节开场白，调用方需持锁
func (s *Service) ensureSeededLocked(key string, chapterNumber int) {
	if _, ok := s.histories[key]; ok {
		return
	}
	s.histories[key] = []entity.Message{{
		ID:        fmt.Sprintf("welcome-%d", chapterNumber),
		Role:      entity.RoleAssistant,
		Content:   WelcomeMessage(chapterNumber),
		CreatedAt: time.Now(),
	}}
}

// appendLocked 追加消息并裁剪超限的最早记录，调用方需持锁
func (s *Service) appendLocked(key string, msg entity.Message) {
	history := append(s.histories[key], msg)
	if len(history) > s.historyLimit {
		history = history[len(history)-s.historyLimit:]
	}
	s.histories[key] = history
}
