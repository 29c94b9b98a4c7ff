package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hoangnv/visitgate-api/internal/application/ports"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

// Compile-time check that GeminiService implements AdvisoryService.
var _ ports.AdvisoryService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt fixes the advisor's role and output constraints. The reply
	// is guidance for the reviewing officer, in Vietnamese, under 100 words.
	systemPrompt = `Bạn là trợ lý trực ban của đơn vị, tư vấn cho cán bộ phê duyệt lịch thăm quân nhân.
Dựa trên lịch công tác đơn vị và yêu cầu thăm được cung cấp, hãy đưa ra lời khuyên ngắn gọn:
1. Có trùng lịch huấn luyện/trực chiến không?
2. Nếu trùng, gợi ý khung giờ khác phù hợp trong cùng tuần.
3. Lưu ý về kỷ luật (ví dụ: cần mang CCCD, không mang chất cấm).
Phản hồi bằng tiếng Việt, súc tích dưới 100 từ, không dùng markdown.`
)

// GeminiService is the advisory adapter calling the Google Gemini REST API.
// It uses only net/http: one plain-text generation call does not justify an
// SDK dependency.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService builds the adapter. model is usually "gemini-1.5-flash".
// An empty apiKey makes every call fail fast; the use case degrades to its
// fallback phrase, so a keyless deployment still works.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // network ceiling; callers also pass WithTimeout
		},
	}
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SuggestVisitAdvice calls Gemini with the request and the unit calendar and
// returns the suggestion text.
func (s *GeminiService) SuggestVisitAdvice(ctx context.Context, r *entity.VisitRequest, schedules []*entity.ScheduleEvent) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("advisory: GEMINI_API_KEY not configured")
	}

	var b strings.Builder
	b.WriteString("Lịch công tác đơn vị:\n")
	if len(schedules) == 0 {
		b.WriteString("(không có sự kiện nào)\n")
	}
	for _, ev := range schedules {
		fmt.Fprintf(&b, "- %s: %s (%s): %s\n", ev.Date, ev.Title, ev.Type, ev.Description)
	}
	fmt.Fprintf(&b, "\nYêu cầu thăm: %s thăm quân nhân %s (%s - %s) vào %s (%s).",
		r.VisitorName, r.SoldierName, r.SpecificUnit, r.ParentUnit, r.VisitDate, r.TimeSlot)

	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: b.String()}}},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 256,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("advisory: marshal request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("advisory: build HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("advisory: timeout or cancellation: %w", ctx.Err())
		}
		return "", fmt.Errorf("advisory: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("advisory: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("advisory: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("advisory: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("advisory: unmarshal Gemini response: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("advisory: Gemini returned an empty response")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
