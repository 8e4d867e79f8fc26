package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MrJerard79809/capstone-scribe/internal/application/generation"
	"github.com/MrJerard79809/capstone-scribe/internal/interfaces/http/dto"
)

// GenerationHandler 文档生成处理器
type GenerationHandler struct {
	svc *generation.Service
}

// NewGenerationHandler 创建生成处理器
func NewGenerationHandler(svc *generation.Service) *GenerationHandler {
	return &GenerationHandler{svc: svc}
}

// TitleOptions 生成标题候选
// @Summary 生成标题候选
// @Description 根据学科与主题生成至多 5 个互不相同的标题候选
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.TitleOptionsRequest true "生成表单"
// @Success 200 {object} dto.Response[dto.TitleOptionsResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/titles [post]
func (h *GenerationHandler) TitleOptions(c *gin.Context) {
	var req dto.TitleOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	titles, err := h.svc.TitleOptions(c.Request.Context(), req.FormInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.TitleOptionsResponse{Titles: titles})
}

// Generate 生成完整项目骨架
// @Summary 生成五章项目骨架
// @Description 按模板组装标题、章节、目标与小节正文
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateProjectRequest true "生成表单与可选的选定标题"
// @Success 200 {object} dto.Response[dto.GenerateProjectResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/projects/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req dto.GenerateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	project, err := h.svc.Generate(c.Request.Context(), req.FormInput(), req.ChosenTitle)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.GenerateProjectResponse{Project: project})
}
