package companion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStrategyKeywordRouting(t *testing.T) {
	s := NewLocalStrategy()
	ctx := context.Background()

	tests := []struct {
		chapter int
		message string
		phrase  string
	}{
		{1, "Help me write a PROBLEM STATEMENT please", "For your problem statement"},
		{1, "suggest research objectives", "SMART (Specific, Measurable, Achievable, Relevant, Time-bound)"},
		{1, "guide me with background context", "Start broad, then narrow"},
		{1, "help with research questions", "Open-ended (not yes/no)"},
		{2, "organize my literature themes", "literature matrix"},
		{2, "help identify research gaps", "Understudied populations"},
		{3, "choose research methodology", "Quantitative/Qualitative/Mixed"},
		{3, "what sample size should I use", "statistical power analysis"},
		{4, "analyze my findings", "Let the data speak"},
		{5, "write strong conclusions", "Avoid introducing new information"},
		{5, "develop recommendations", "specific, actionable, and evidence-based"},
	}
	for _, tc := range tests {
		reply, err := s.Reply(ctx, ChatInput{Message: tc.message, ChapterNumber: tc.chapter})
		require.NoError(t, err)
		assert.Contains(t, reply, tc.phrase, "chapter %d message %q", tc.chapter, tc.message)
	}
}

func TestLocalStrategyGenericFallback(t *testing.T) {
	s := NewLocalStrategy()

	reply, err := s.Reply(context.Background(), ChatInput{Message: "what's for lunch", ChapterNumber: 3})
	require.NoError(t, err)
	assert.Contains(t, reply, `I understand you need help with "what's for lunch".`)
	assert.Contains(t, reply, "Chapter 3")
}

func TestLocalStrategyOrderedFirstMatchWins(t *testing.T) {
	s := NewLocalStrategy()

	// 同时命中 problem statement 与 research objectives 时取表内靠前的一条
	reply, err := s.Reply(context.Background(),
		ChatInput{Message: "research objectives for my problem statement", ChapterNumber: 1})
	require.NoError(t, err)
	assert.Contains(t, reply, "For your problem statement")
}

func TestWelcomeMessageAndSuggestions(t *testing.T) {
	assert.Contains(t, WelcomeMessage(1), "Chapter 1 - Introduction")
	assert.Contains(t, WelcomeMessage(5), "Conclusion & Recommendations")
	assert.Equal(t, genericWelcome, WelcomeMessage(9))

	require.Len(t, Suggestions(1), 4)
	assert.Contains(t, Suggestions(3), "Choose research methodology")
	assert.Empty(t, Suggestions(7))
}
