package generation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// mapTitleCache 测试用缓存，模拟 Read-Through 语义
type mapTitleCache struct {
	entries map[string][]byte
	loads   int
}

func (c *mapTitleCache) GetOrLoad(_ context.Context, key string, _ time.Duration, loader func() (interface{}, error)) ([]byte, error) {
	if val, ok := c.entries[key]; ok {
		return val, nil
	}
	c.loads++
	data, err := loader()
	if err != nil {
		return nil, err
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	c.entries[key] = bytes
	return bytes, nil
}

func TestServiceTitleOptionsWithoutCache(t *testing.T) {
	svc := NewService(NewEngine(WithSeed(1)), nil, 0)

	titles, err := svc.TitleOptions(context.Background(), entity.FormInput{Field: "business", Topic: "Remote Work"})
	require.NoError(t, err)
	assert.Len(t, titles, 5)
}

func TestServiceTitleOptionsCached(t *testing.T) {
	cache := &mapTitleCache{entries: make(map[string][]byte)}
	svc := NewService(NewEngine(WithSeed(1)), cache, time.Minute)
	input := entity.FormInput{Field: "computer-science", Topic: "Edge Computing", ResearchType: entity.ResearchMixed}

	first, err := svc.TitleOptions(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.TitleOptions(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.loads)

	// 输入不同则缓存键不同
	other := input
	other.Topic = "Fog Computing"
	_, err = svc.TitleOptions(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.loads)
}

func TestServiceGenerate(t *testing.T) {
	svc := NewService(NewEngine(WithSeed(1)), nil, 0)

	project, err := svc.Generate(context.Background(), entity.FormInput{
		Field: "healthcare",
		Topic: "Telemedicine",
	}, "Chosen")
	require.NoError(t, err)
	assert.Equal(t, "Chosen", project.MainTitle)
	assert.Len(t, project.Chapters, ChapterCount)
}
