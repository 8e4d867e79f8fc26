package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MrJerard79809/capstone-scribe/internal/application/companion"
	"github.com/MrJerard79809/capstone-scribe/internal/interfaces/http/dto"
)

// CompanionHandler 写作助手处理器
type CompanionHandler struct {
	svc *companion.Service
}

// NewCompanionHandler 创建助手处理器
func NewCompanionHandler(svc *companion.Service) *CompanionHandler {
	return &CompanionHandler{svc: svc}
}

// Chat 助手对话
// @Summary 助手对话
// @Description 输入校验通过后分发给配置的回复策略；限流与额度耗尽按 429/402 下发
// @Tags Companion
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "对话请求"
// @Success 200 {object} dto.Response[dto.ChatResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 402 {object} dto.ErrorResponse
// @Router /v1/companion/chat [post]
func (h *CompanionHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	reply, err := h.svc.Chat(c.Request.Context(), req.DocumentID, companion.ChatInput{
		Message:       req.Message,
		ChapterNumber: req.ChapterNumber,
		ChapterTitle:  req.ChapterTitle,
	})
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.ChatResponse{
		Reply:      reply,
		Insertable: companion.Insertable(reply.Content),
	})
}

// Messages 章节会话历史
// @Summary 章节会话历史
// @Tags Companion
// @Produce json
// @Param did path string true "文档 ID"
// @Param num path int true "章节号 (1-5)"
// @Success 200 {object} dto.Response[dto.MessagesResponse]
// @Router /v1/documents/{did}/chapters/{num}/messages [get]
func (h *CompanionHandler) Messages(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("num"))
	if err != nil || number < 1 || number > 5 {
		dto.BadRequest(c, "invalid chapter number")
		return
	}

	messages := h.svc.History(c.Param("did"), number)
	dto.Success(c, dto.MessagesResponse{Messages: messages})
}

// Suggestions 章节快捷提问
// @Summary 章节快捷提问与开场白
// @Tags Companion
// @Produce json
// @Param chapter query int true "章节号 (1-5)"
// @Success 200 {object} dto.Response[dto.SuggestionsResponse]
// @Router /v1/companion/suggestions [get]
func (h *CompanionHandler) Suggestions(c *gin.Context) {
	number, err := strconv.Atoi(c.Query("chapter"))
	if err != nil || number < 1 || number > 5 {
		dto.BadRequest(c, "invalid chapter number")
		return
	}

	dto.Success(c, dto.SuggestionsResponse{
		ChapterNumber: number,
		Suggestions:   companion.Suggestions(number),
		Welcome:       companion.WelcomeMessage(number),
	})
}
