package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hospital_feedback/configs"
)

// SuggestionService soạn bản nháp trả lời phản ánh cho quản trị viên.
// SuggestReply không bao giờ trả lỗi và không bao giờ trả chuỗi rỗng:
// mọi sự cố (thiếu API key, lỗi mạng, phản hồi rỗng/sai định dạng,
// hết thời gian chờ) đều rơi về nội dung trả lời mặc định có nhắc tên khoa.
type SuggestionService interface {
	SuggestReply(ctx context.Context, feedbackContent, department string) string
}

// geminiSuggestionService gọi API generateContent của Gemini qua HTTP.
type geminiSuggestionService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiSuggestionService tạo SuggestionService từ cấu hình ứng dụng.
func NewGeminiSuggestionService() SuggestionService {
	return &geminiSuggestionService{
		apiKey:  configs.AppConfig.GeminiAPIKey,
		model:   configs.AppConfig.GeminiModel,
		baseURL: configs.AppConfig.GeminiBaseURL,
		httpClient: &http.Client{
			Timeout: configs.AppConfig.GeminiTimeout,
		},
	}
}

// FallbackReply là nội dung trả lời mặc định khi không gọi được dịch vụ gợi ý.
// Cố định để quản trị viên luôn có sẵn một câu trả lời lịch sự nhắc tới khoa liên quan.
func FallbackReply(department string) string {
	return "Chúng tôi chân thành cảm ơn ý kiến đóng góp của quý khách. Bệnh viện đã ghi nhận phản ánh tại khoa " + department + " và đang tiến hành kiểm tra làm rõ."
}

// Cấu trúc request/response tối thiểu của API generateContent.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// SuggestReply gọi Gemini để soạn bản nháp trả lời bằng tiếng Việt.
func (s *geminiSuggestionService) SuggestReply(ctx context.Context, feedbackContent, department string) string {
	if s.apiKey == "" {
		return FallbackReply(department)
	}

	prompt := fmt.Sprintf(`Bạn là một quản lý chăm sóc khách hàng tại %s.
Hãy viết một câu trả lời chuyên nghiệp, thấu cảm và lịch sự cho phản ánh sau đây từ bệnh nhân.
Phản ánh thuộc khoa: %s.
Nội dung phản ánh: %q.
Câu trả lời cần:
1. Cảm ơn vì sự góp ý.
2. Xin lỗi nếu có trải nghiệm không tốt.
3. Khẳng định bệnh viện sẽ xác minh và chấn chỉnh (nếu cần).
4. Giữ phong thái y đức và chuyên nghiệp.
Trả lời bằng tiếng Việt.`, configs.HospitalName, department, feedbackContent)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature: 0.7,
			TopP:        0.8,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		log.Printf("Không tạo được request gợi ý trả lời: %v", err)
		return FallbackReply(department)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(s.baseURL, "/"), s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("Không tạo được request gợi ý trả lời: %v", err)
		return FallbackReply(department)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	startTime := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Gọi dịch vụ gợi ý trả lời thất bại sau %v: %v", time.Since(startTime), err)
		return FallbackReply(department)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Đóng body phản hồi gợi ý thất bại: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Đọc phản hồi gợi ý thất bại: %v", err)
		return FallbackReply(department)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Dịch vụ gợi ý trả về mã %d: %s", resp.StatusCode, string(body))
		return FallbackReply(department)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		log.Printf("Phản hồi gợi ý sai định dạng: %v", err)
		return FallbackReply(department)
	}

	text := extractText(&geminiResp)
	if text == "" {
		log.Printf("Dịch vụ gợi ý trả về nội dung rỗng, dùng nội dung mặc định.")
		return FallbackReply(department)
	}
	return text
}

// extractText ghép các đoạn văn bản trong candidate đầu tiên.
func extractText(resp *geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
