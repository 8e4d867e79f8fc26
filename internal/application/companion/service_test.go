package companion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
	apperrors "github.com/MrJerard79809/capstone-scribe/pkg/errors"
)

// stubStrategy 测试用策略，可注入固定回复或错误
type stubStrategy struct {
	reply string
	err   error
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) Reply(context.Context, ChatInput) (string, error) {
	return s.reply, s.err
}

func TestServiceChatAppendsUserAndAssistant(t *testing.T) {
	svc := NewService(&stubStrategy{reply: "A draft."}, 0)
	in := ChatInput{Message: "write my intro", ChapterNumber: 1, ChapterTitle: "Intro"}

	msg, err := svc.Chat(context.Background(), "doc-1", in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAssistant, msg.Role)
	assert.Equal(t, "A draft.", msg.Content)

	history := svc.History("doc-1", 1)
	// 开场白 + 用户消息 + 助手回复
	require.Len(t, history, 3)
	assert.Equal(t, entity.RoleAssistant, history[0].Role)
	assert.Contains(t, history[0].Content, "Chapter 1 - Introduction")
	assert.Equal(t, entity.RoleUser, history[1].Role)
	assert.Equal(t, "write my intro", history[1].Content)
	assert.Equal(t, msg.Content, history[2].Content)
}

func TestServiceChatFailureAppendsExactlyOneFallback(t *testing.T) {
	svc := NewService(&stubStrategy{err: apperrors.ErrRateLimited}, 0)
	in := ChatInput{Message: "hello", ChapterNumber: 2, ChapterTitle: "Review"}

	before := len(svc.History("doc-1", 2))

	msg, err := svc.Chat(context.Background(), "doc-1", in)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeRateLimited, apperrors.AsAppError(err).Code)
	assert.Equal(t, fallbackReply, msg.Content)

	// 失败时历史恰好增长 2：用户消息 + 占位回复
	history := svc.History("doc-1", 2)
	assert.Len(t, history, before+2)
	assert.Equal(t, fallbackReply, history[len(history)-1].Content)
}

func TestServiceHistoryIsolatedPerDocumentAndChapter(t *testing.T) {
	svc := NewService(&stubStrategy{reply: "ok"}, 0)

	_, err := svc.Chat(context.Background(), "doc-1", ChatInput{Message: "m", ChapterNumber: 1})
	require.NoError(t, err)

	assert.Len(t, svc.History("doc-1", 1), 3)
	assert.Len(t, svc.History("doc-1", 2), 1)
	assert.Len(t, svc.History("doc-2", 1), 1)
}

func TestServiceHistoryTrimmedToLimit(t *testing.T) {
	svc := NewService(&stubStrategy{reply: "ok"}, 5)

	for i := 0; i < 10; i++ {
		_, err := svc.Chat(context.Background(), "doc-1", ChatInput{Message: "m", ChapterNumber: 1})
		require.NoError(t, err)
	}

	history := svc.History("doc-1", 1)
	assert.Len(t, history, 5)
	// 最新一条永远是助手回复
	assert.Equal(t, entity.RoleAssistant, history[len(history)-1].Role)
}

func TestServiceHistoryReturnsCopy(t *testing.T) {
	svc := NewService(&stubStrategy{reply: "ok"}, 0)

	history := svc.History("doc-1", 1)
	require.Len(t, history, 1)
	history[0].Content = "tampered"

	assert.NotEqual(t, "tampered", svc.History("doc-1", 1)[0].Content)
}
