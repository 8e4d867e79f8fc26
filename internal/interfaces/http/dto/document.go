package dto

import (
	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
)

// CreateDocumentRequest 由生成的项目骨架创建可编辑文档
type CreateDocumentRequest struct {
	Project *entity.GeneratedProject `json:"project" binding:"required"`
}

// UpdateDocumentRequest 修改文档主标题
type UpdateDocumentRequest struct {
	Title string `json:"title" binding:"required,max=300"`
}

// UpdateChapterRequest 修改章节级字段
type UpdateChapterRequest struct {
	Field string `json:"field" binding:"required,oneof=title introduction conclusion"`
	Value string `json:"value"`
}

// UpdateSectionRequest 修改小节级字段
type UpdateSectionRequest struct {
	Field string `json:"field" binding:"required,oneof=title content"`
	Value string `json:"value"`
}

// DocumentResponse 文档响应，附带全文档词数
type DocumentResponse struct {
	Document   *entity.Document `json:"document"`
	TotalWords int              `json:"total_words"`
}

// NewDocumentResponse 构造文档响应
func NewDocumentResponse(doc *entity.Document) DocumentResponse {
	return DocumentResponse{Document: doc, TotalWords: doc.TotalWords()}
}

// ChapterResponse 章节响应
type ChapterResponse struct {
	Chapter *entity.DocumentChapter `json:"chapter"`
}
