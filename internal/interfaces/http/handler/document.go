package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MrJerard79809/capstone-scribe/internal/application/document"
	"github.com/MrJerard79809/capstone-scribe/internal/application/export"
	"github.com/MrJerard79809/capstone-scribe/internal/interfaces/http/dto"
	"github.com/MrJerard79809/capstone-scribe/pkg/metrics"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocumentHandler 文档编辑处理器
type DocumentHandler struct {
	editor *document.Editor
}

// NewDocumentHandler 创建文档处理器
func NewDocumentHandler(editor *document.Editor) *DocumentHandler {
	return &DocumentHandler{editor: editor}
}

// Create 由生成的项目骨架创建可编辑文档
// @Summary 创建可编辑文档
// @Tags Document
// @Accept json
// @Produce json
// @Param request body dto.CreateDocumentRequest true "生成的项目骨架"
// @Success 201 {object} dto.Response[dto.DocumentResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	if len(req.Project.Chapters) == 0 {
		dto.BadRequest(c, "project must contain at least one chapter")
		return
	}

	doc := h.editor.CreateFromProject(req.Project)
	dto.Created(c, dto.NewDocumentResponse(doc))
}

// Get 获取文档
// @Summary 获取文档
// @Tags Document
// @Produce json
// @Param did path string true "文档 ID"
// @Success 200 {object} dto.Response[dto.DocumentResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/documents/{did} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.editor.Get(c.Param("did"))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.NewDocumentResponse(doc))
}

// UpdateTitle 修改文档主标题
// @Summary 修改文档标题
// @Tags Document
// @Accept json
// @Produce json
// @Param did path string true "文档 ID"
// @Param request body dto.UpdateDocumentRequest true "新标题"
// @Success 200 {object} dto.Response[dto.DocumentResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/documents/{did} [put]
func (h *DocumentHandler) UpdateTitle(c *gin.Context) {
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	doc, err := h.editor.UpdateTitle(c.Param("did"), req.Title)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.NewDocumentResponse(doc))
}

// UpdateChapter 修改章节级字段
// @Summary 修改章节字段
// @Description 修改章节的 title/introduction/conclusion，并重算词数
// @Tags Document
// @Accept json
// @Produce json
// @Param did path string true "文档 ID"
// @Param num path int true "章节号 (1-5)"
// @Param request body dto.UpdateChapterRequest true "字段与新值"
// @Success 200 {object} dto.Response[dto.ChapterResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/documents/{did}/chapters/{num} [put]
func (h *DocumentHandler) UpdateChapter(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("num"))
	if err != nil {
		dto.BadRequest(c, "invalid chapter number")
		return
	}

	var req dto.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	chapter, err := h.editor.UpdateChapter(c.Param("did"), number, req.Field, req.Value)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.ChapterResponse{Chapter: chapter})
}

// UpdateSection 修改小节级字段
// @Summary 修改小节字段
// @Description 修改小节的 title/content，小节按 0 起始下标定位
// @Tags Document
// @Accept json
// @Produce json
// @Param did path string true "文档 ID"
// @Param num path int true "章节号 (1-5)"
// @Param idx path int true "小节下标 (0 起始)"
// @Param request body dto.UpdateSectionRequest true "字段与新值"
// @Success 200 {object} dto.Response[dto.ChapterResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/documents/{did}/chapters/{num}/sections/{idx} [put]
func (h *DocumentHandler) UpdateSection(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("num"))
	if err != nil {
		dto.BadRequest(c, "invalid chapter number")
		return
	}
	index, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		dto.BadRequest(c, "invalid section index")
		return
	}

	var req dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	chapter, err := h.editor.UpdateSection(c.Param("did"), number, index, req.Field, req.Value)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.ChapterResponse{Chapter: chapter})
}

// Save 刷新文档保存时间戳
// @Summary 保存文档
// @Tags Document
// @Produce json
// @Param did path string true "文档 ID"
// @Success 200 {object} dto.Response[dto.DocumentResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/documents/{did}/save [post]
func (h *DocumentHandler) Save(c *gin.Context) {
	doc, err := h.editor.Save(c.Param("did"))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.NewDocumentResponse(doc))
}

// Export 导出文档
// @Summary 导出文档
// @Description format=text 返回纯文本，format=docx 返回 Word 文件
// @Tags Document
// @Produce plain
// @Param did path string true "文档 ID"
// @Param format query string false "导出格式 text|docx" default(text)
// @Success 200 {string} string "导出内容"
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/documents/{did}/export [get]
func (h *DocumentHandler) Export(c *gin.Context) {
	doc, err := h.editor.Get(c.Param("did"))
	if err != nil {
		metrics.ExportTotal.WithLabelValues(c.DefaultQuery("format", "text"), "error").Inc()
		dto.Fail(c, err)
		return
	}

	format := c.DefaultQuery("format", "text")
	switch format {
	case "text":
		content := export.Text(doc)
		c.Header("Content-Disposition", "attachment; filename="+export.Filename(doc.Title, "txt"))
		metrics.ExportTotal.WithLabelValues(format, "success").Inc()
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
	case "docx":
		var buf bytes.Buffer
		if err := export.Docx(doc, &buf); err != nil {
			metrics.ExportTotal.WithLabelValues(format, "error").Inc()
			dto.Fail(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+export.Filename(doc.Title, "docx"))
		metrics.ExportTotal.WithLabelValues(format, "success").Inc()
		c.Data(http.StatusOK, docxContentType, buf.Bytes())
	default:
		dto.BadRequest(c, "unsupported export format: "+format)
	}
}
