package generation

import (
	"fmt"
	"strings"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// AssembleProject 组装完整的五章项目骨架。
// chosenTitle 为空时由引擎即席合成标题；章标题在候选池内随机挑选，
// 故重复调用会得到措辞有变化的章标题，小节正文则保持确定性。
func (e *Engine) AssembleProject(input entity.FormInput, chosenTitle string) *entity.GeneratedProject {
	title := chosenTitle
	if title == "" {
		title = e.synthesizeTitle(input)
	}

	fieldTpl := LookupField(input.Field)

	chapters := make([]entity.GeneratedChapter, 0, ChapterCount)
	for n := 1; n <= ChapterCount; n++ {
		tpl := Template(n)
		chapterTitle := tpl.Titles[e.pick(len(tpl.Titles))]

		description := fmt.Sprintf("This chapter focuses on %s and related components.",
			strings.ToLower(tpl.Sections[0].Title))
		if n == 3 && IsKnownField(input.Field) {
			description = fmt.Sprintf("This chapter details the research methodology with emphasis on %s and "+
				"systematic data collection procedures.", strings.ToLower(fieldTpl.MethodologyFocus[0]))
		}

		sections := make([]entity.GeneratedSection, 0, len(tpl.Sections))
		for _, sec := range tpl.Sections {
			sections = append(sections, entity.GeneratedSection{
				Title:   sec.Title,
				Content: e.GenerateSectionContent(sec.Title, sec.Description, input, n),
			})
		}

		chapters = append(chapters, entity.GeneratedChapter{
			Number:        n,
			Title:         chapterTitle,
			Description:   description,
			Objectives:    tpl.Objectives,
			Sections:      sections,
			ExpectedPages: tpl.ExpectedPages,
			KeyComponents: tpl.KeyComponents,
		})
	}

	return &entity.GeneratedProject{
		MainTitle: title,
		Chapters:  chapters,
	}
}
