package chain

import (
	"context"
	"fmt"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfmodel "github.com/MrJerard79809/capstone-scribe/internal/workflow/model"
)

// stubChatModel 记录收到的消息并返回预设应答
type stubChatModel struct {
	reply    *schema.Message
	err      error
	received []*schema.Message
}

func (m *stubChatModel) Generate(_ context.Context, in []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	m.received = in
	return m.reply, m.err
}

func (m *stubChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("stream not supported")
}

// stubFactory 固定返回同一个 ChatModel 的工厂桩
type stubFactory struct {
	chatModel einomodel.BaseChatModel
	err       error
}

func (f *stubFactory) Get(_ context.Context, _ string) (einomodel.BaseChatModel, error) {
	return f.chatModel, f.err
}

func (f *stubFactory) ModelName(string) string { return "stub-model" }

func validInput() *wfmodel.CompanionChatInput {
	return &wfmodel.CompanionChatInput{
		Provider:      "openai",
		Message:       "Help me write the problem statement",
		ChapterNumber: 1,
		ChapterTitle:  "Smart Triage Systems",
	}
}

func TestCompanionChainInvoke(t *testing.T) {
	stub := &stubChatModel{reply: schema.AssistantMessage("Here is your problem statement.", nil)}
	chain := NewCompanionChain(&stubFactory{chatModel: stub})

	out, err := chain.Invoke(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Here is your problem statement.", out)

	// 系统提示词渲染章节号、章节称谓与课题标题，用户消息原样传入
	require.Len(t, stub.received, 2)
	assert.Equal(t, schema.System, stub.received[0].Role)
	assert.Contains(t, stub.received[0].Content, "Chapter 1 (Introduction)")
	assert.Contains(t, stub.received[0].Content, `"Smart Triage Systems"`)
	assert.Equal(t, schema.User, stub.received[1].Role)
	assert.Equal(t, "Help me write the problem statement", stub.received[1].Content)
}

func TestCompanionChainValidation(t *testing.T) {
	chain := NewCompanionChain(&stubFactory{chatModel: &stubChatModel{}})
	ctx := context.Background()

	_, err := chain.Invoke(ctx, nil)
	require.Error(t, err)

	in := validInput()
	in.Message = "   "
	_, err = chain.Invoke(ctx, in)
	require.Error(t, err)

	for _, number := range []int{0, 6, -1} {
		in := validInput()
		in.ChapterNumber = number
		_, err := chain.Invoke(ctx, in)
		require.Error(t, err, "chapter %d", number)
	}
}

func TestCompanionChainFactoryErrorPropagates(t *testing.T) {
	chain := NewCompanionChain(&stubFactory{err: fmt.Errorf("provider missing")})

	_, err := chain.Invoke(context.Background(), validInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider missing")
}

func TestCompanionChainGenerateErrorPropagates(t *testing.T) {
	stub := &stubChatModel{err: fmt.Errorf("upstream boom")}
	chain := NewCompanionChain(&stubFactory{chatModel: stub})

	_, err := chain.Invoke(context.Background(), validInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream boom")
}

func TestCompanionChainEmptyResponse(t *testing.T) {
	for _, reply := range []*schema.Message{nil, schema.AssistantMessage("", nil)} {
		stub := &stubChatModel{reply: reply}
		chain := NewCompanionChain(&stubFactory{chatModel: stub})

		_, err := chain.Invoke(context.Background(), validInput())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty llm response")
	}
}

func TestCompanionChainNilFactory(t *testing.T) {
	chain := NewCompanionChain(nil)
	_, err := chain.Invoke(context.Background(), validInput())
	require.Error(t, err)
}
