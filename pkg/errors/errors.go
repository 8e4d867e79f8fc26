// Package errors 提供统一的错误定义
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess         ErrorCode = "0"
	CodeUnknown         ErrorCode = "1000"
	CodeInvalidParam    ErrorCode = "1001"
	CodeNotFound        ErrorCode = "1002"
	CodeTooManyRequests ErrorCode = "1003"
	CodeInternalError   ErrorCode = "1004"

	// 资源错误 (2xxx)
	CodeDocumentNotFound ErrorCode = "2001"
	CodeChapterNotFound  ErrorCode = "2002"
	CodeSectionNotFound  ErrorCode = "2003"

	// 业务错误 (3xxx)
	CodeGenerationFailed ErrorCode = "3001"
	CodeExportFailed     ErrorCode = "3002"
	CodeCompanionFailed  ErrorCode = "3003"

	// 外部服务错误 (4xxx)
	CodeUpstreamError   ErrorCode = "4001"
	CodeRateLimited     ErrorCode = "4002"
	CodeQuotaExhausted  ErrorCode = "4003"
	CodeCacheError      ErrorCode = "4004"
	CodeLLMCallFailed   ErrorCode = "4005"
	CodeEmptyCompletion ErrorCode = "4006"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithError 添加底层错误
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeNotFound, CodeDocumentNotFound, CodeChapterNotFound, CodeSectionNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests, CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeQuotaExhausted:
		return http.StatusPaymentRequired
	case CodeUpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误
var (
	ErrInvalidParam    = New(CodeInvalidParam, "invalid parameter")
	ErrNotFound        = New(CodeNotFound, "resource not found")
	ErrTooManyRequests = New(CodeTooManyRequests, "too many requests")
	ErrInternalError   = New(CodeInternalError, "internal server error")

	ErrDocumentNotFound = New(CodeDocumentNotFound, "document not found")
	ErrChapterNotFound  = New(CodeChapterNotFound, "chapter not found")
	ErrSectionNotFound  = New(CodeSectionNotFound, "section not found")

	ErrGenerationFailed = New(CodeGenerationFailed, "project generation failed")
	ErrExportFailed     = New(CodeExportFailed, "document export failed")
	ErrCompanionFailed  = New(CodeCompanionFailed, "companion request failed")

	// ErrRateLimited 上游返回限流 (HTTP 429)
	ErrRateLimited = New(CodeRateLimited, "rate limit exceeded, please try again in a moment")
	// ErrQuotaExhausted 上游返回额度耗尽 (HTTP 402)
	ErrQuotaExhausted = New(CodeQuotaExhausted, "AI credits depleted, please add credits to continue")

	ErrLLMCallFailed   = New(CodeLLMCallFailed, "LLM call failed")
	ErrEmptyCompletion = New(CodeEmptyCompletion, "empty response from AI provider")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}
