package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

func TestAssembleProjectStructure(t *testing.T) {
	e := NewEngine(WithSeed(1))
	input := entity.FormInput{
		Field:        "computer-science",
		Topic:        "Machine Learning in Healthcare",
		Keywords:     "AI, medical diagnosis",
		ResearchType: entity.ResearchQuantitative,
	}

	project := e.AssembleProject(input, "Chosen Title: A Quantitative Analysis")
	require.NotNil(t, project)
	assert.Equal(t, "Chosen Title: A Quantitative Analysis", project.MainTitle)
	require.Len(t, project.Chapters, ChapterCount)

	for i, ch := range project.Chapters {
		n := i + 1
		tpl := Template(n)
		assert.Equal(t, n, ch.Number)
		assert.Contains(t, tpl.Titles, ch.Title)
		assert.Equal(t, tpl.Objectives, ch.Objectives)
		assert.Equal(t, tpl.ExpectedPages, ch.ExpectedPages)
		assert.Equal(t, tpl.KeyComponents, ch.KeyComponents)
		require.Len(t, ch.Sections, len(tpl.Sections))
		for j, sec := range ch.Sections {
			assert.Equal(t, tpl.Sections[j].Title, sec.Title)
			assert.NotEmpty(t, sec.Content)
		}
	}
}

func TestAssembleProjectSynthesizesTitleWhenEmpty(t *testing.T) {
	e := NewEngine(WithSeed(1))
	input := entity.FormInput{Field: "business", Topic: "Remote Work Adoption"}

	project := e.AssembleProject(input, "")
	assert.Contains(t, project.MainTitle, "Remote Work Adoption")
}

func TestAssembleProjectChapterThreeDescription(t *testing.T) {
	input := entity.FormInput{Field: "computer-science", Topic: "Edge Computing"}

	project := NewEngine(WithSeed(1)).AssembleProject(input, "T")
	assert.Equal(t,
		"This chapter details the research methodology with emphasis on agile development and systematic data collection procedures.",
		project.Chapters[2].Description)

	// 未知学科走通用描述
	generic := NewEngine(WithSeed(1)).AssembleProject(entity.FormInput{Field: "other", Topic: "Edge Computing"}, "T")
	assert.True(t, strings.HasPrefix(generic.Chapters[2].Description, "This chapter focuses on "))
}

func TestAssembleProjectDefaultDescription(t *testing.T) {
	input := entity.FormInput{Field: "education", Topic: "Blended Learning"}
	project := NewEngine(WithSeed(1)).AssembleProject(input, "T")

	tpl := Template(1)
	want := "This chapter focuses on " + strings.ToLower(tpl.Sections[0].Title) + " and related components."
	assert.Equal(t, want, project.Chapters[0].Description)
}

func TestAssembleProjectSeedDeterminism(t *testing.T) {
	input := entity.FormInput{
		Field:        "healthcare",
		Topic:        "Telemedicine Adoption",
		Keywords:     "rural access, outcomes",
		ResearchType: entity.ResearchMixed,
	}

	a := NewEngine(WithSeed(5)).AssembleProject(input, "")
	b := NewEngine(WithSeed(5)).AssembleProject(input, "")
	assert.Equal(t, a, b)
}

func TestTitleSelectionThroughAssembly(t *testing.T) {
	e := NewEngine(WithSeed(1))
	input := entity.FormInput{
		Field:        "computer-science",
		Topic:        "Machine Learning in Healthcare",
		Keywords:     "AI, medical diagnosis",
		ResearchType: entity.ResearchQuantitative,
	}

	titles := e.GenerateTitleOptions(input)
	require.Len(t, titles, 5)

	project := e.AssembleProject(input, titles[0])
	assert.Equal(t, titles[0], project.MainTitle)

	var background string
	for _, sec := range project.Chapters[0].Sections {
		if sec.Title == "Background of the Study" {
			background = sec.Content
		}
	}
	require.NotEmpty(t, background)
	assert.Contains(t, background, "Machine Learning in Healthcare")

	// 提供关键词时末段列出关键词
	paragraphs := strings.Split(background, "\n\n")
	last := paragraphs[len(paragraphs)-1]
	assert.Contains(t, last, "AI")
	assert.Contains(t, last, "medical diagnosis")
}

func TestTemplateOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Template(0) })
	assert.Panics(t, func() { Template(6) })
}
