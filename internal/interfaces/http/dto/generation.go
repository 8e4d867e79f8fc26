package dto

import (
	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// GenerationInput 生成表单的公共字段
type GenerationInput struct {
	Field        string `json:"field" binding:"required,max=64"`
	Topic        string `json:"topic" binding:"required,max=300"`
	Keywords     string `json:"keywords" binding:"max=500"`
	ResearchType string `json:"research_type" binding:"max=32"`
}

// FormInput 转换为领域输入
func (r GenerationInput) FormInput() entity.FormInput {
	return entity.FormInput{
		Field:        r.Field,
		Topic:        r.Topic,
		Keywords:     r.Keywords,
		ResearchType: entity.ResearchType(r.ResearchType),
	}
}

// TitleOptionsRequest 标题候选请求
type TitleOptionsRequest struct {
	GenerationInput
}

// TitleOptionsResponse 标题候选响应
type TitleOptionsResponse struct {
	Titles []string `json:"titles"`
}

// GenerateProjectRequest 项目生成请求，ChosenTitle 为空时即席合成
type GenerateProjectRequest struct {
	GenerationInput
	ChosenTitle string `json:"chosen_title" binding:"max=300"`
}

// GenerateProjectResponse 项目生成响应
type GenerateProjectResponse struct {
	Project *entity.GeneratedProject `json:"project"`
}
