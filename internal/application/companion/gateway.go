package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MrJerard79809/capstone-scribe/pkg/errors"
)

// GatewayStrategy 将对话请求转发到外部对话网关。
// 单发单收，不重试不取消，超时由注入的 http.Client 控制
type GatewayStrategy struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewGatewayStrategy 创建网关策略，client 为 nil 时使用 60s 超时的默认客户端
func NewGatewayStrategy(endpoint, apiKey string, client *http.Client) *GatewayStrategy {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &GatewayStrategy{endpoint: endpoint, apiKey: apiKey, client: client}
}

// Name 实现 Strategy
func (s *GatewayStrategy) Name() string { return "gateway" }

// gatewayRequest 网关请求体
type gatewayRequest struct {
	Message       string `json:"message"`
	ChapterNumber int    `json:"chapterNumber"`
	ChapterTitle  string `json:"chapterTitle"`
}

// gatewayResponse 网关响应体，成功只有 response，失败只有 error/details
type gatewayResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
	Details  string `json:"details"`
}

// Reply 转发请求并区分限流 (429) 与额度耗尽 (402) 两类失败
func (s *GatewayStrategy) Reply(ctx context.Context, in ChatInput) (string, error) {
	body, err := json.Marshal(gatewayRequest{
		Message:       in.Message,
		ChapterNumber: in.ChapterNumber,
		ChapterTitle:  in.ChapterTitle,
	})
	if err != nil {
		return "", errors.ErrCompanionFailed.WithError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.ErrCompanionFailed.WithError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.New(errors.CodeUpstreamError, "chat gateway unreachable").WithError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.New(errors.CodeUpstreamError, "failed to read gateway response").WithError(err)
	}

	var parsed gatewayResponse
	// 非 JSON 响应体走兜底错误分支，不视为解析失败
	_ = json.Unmarshal(raw, &parsed)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", errors.ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", errors.ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		message := parsed.Error
		if message == "" {
			message = fmt.Sprintf("chat gateway returned status %d", resp.StatusCode)
		}
		return "", errors.New(errors.CodeUpstreamError, message).WithDetail(parsed.Details)
	}

	if parsed.Response == "" {
		return "", errors.ErrEmptyCompletion
	}
	return parsed.Response, nil
}
