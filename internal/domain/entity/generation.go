// Package entity 定义领域实体
package entity

import (
	"strings"
)

// ResearchType 研究方法取向
type ResearchType string

const (
	ResearchQuantitative ResearchType = "quantitative"
	ResearchQualitative  ResearchType = "qualitative"
	ResearchMixed        ResearchType = "mixed"
	ResearchExperimental ResearchType = "experimental"
	ResearchCaseStudy    ResearchType = "case-study"
	ResearchTheoretical  ResearchType = "theoretical"
)

// FormInput 生成表单输入
// Field 与 Topic 是生成有意义结果的必填项，校验由调用方（HTTP 层）负责
type FormInput struct {
	Field        string       `json:"field"`
	Topic        string       `json:"topic"`
	Keywords     string       `json:"keywords"`
	ResearchType ResearchType `json:"research_type"`
}

// KeywordList 将逗号分隔的关键词解析为去空白、去空项的有序列表
func (f FormInput) KeywordList() []string {
	parts := strings.Split(f.Keywords, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// GeneratedSection 生成的章节小节
type GeneratedSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GeneratedChapter 生成的章节
type GeneratedChapter struct {
	Number        int                `json:"number"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Objectives    []string           `json:"objectives"`
	Sections      []GeneratedSection `json:"sections"`
	ExpectedPages string             `json:"expected_pages"`
	KeyComponents []string           `json:"key_components"`
}

// GeneratedProject 生成的完整项目结构，章节固定为 1..5 顺序排列
type GeneratedProject struct {
	MainTitle string             `json:"main_title"`
	Chapters  []GeneratedChapter `json:"chapters"`
}
