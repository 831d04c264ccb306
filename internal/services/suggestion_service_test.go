package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuggestionService(baseURL string) *geminiSuggestionService {
	return &geminiSuggestionService{
		apiKey:     "test-key",
		model:      "gemini-3-flash-preview",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestSuggestReplySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Kính gửi quý khách, bệnh viện xin ghi nhận phản ánh."}]}}]}`))
	}))
	defer server.Close()

	service := newTestSuggestionService(server.URL)
	text := service.SuggestReply(context.Background(), "Chờ quá lâu", "Khoa Nội")
	assert.Equal(t, "Kính gửi quý khách, bệnh viện xin ghi nhận phản ánh.", text)
}

func TestSuggestReplyJoinsParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Phần một. "},{"text":"Phần hai."}]}}]}`))
	}))
	defer server.Close()

	service := newTestSuggestionService(server.URL)
	text := service.SuggestReply(context.Background(), "Chờ quá lâu", "Khoa Nội")
	assert.Equal(t, "Phần một. Phần hai.", text)
}

// Mọi tình huống lỗi đều phải trả về nội dung mặc định có nhắc tên khoa,
// không bao giờ trả lỗi hay chuỗi rỗng.
func TestSuggestReplyFallbacks(t *testing.T) {
	fallback := FallbackReply("Khoa Nội")
	require.Contains(t, fallback, "Khoa Nội")

	t.Run("thiếu API key", func(t *testing.T) {
		service := newTestSuggestionService("http://127.0.0.1:0")
		service.apiKey = ""
		text := service.SuggestReply(context.Background(), "Chờ quá lâu", "Khoa Nội")
		assert.Equal(t, fallback, text)
	})

	t.Run("không kết nối được", func(t *testing.T) {
		// Server đóng ngay để mô phỏng lỗi mạng
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		service := newTestSuggestionService(server.URL)
		text := service.SuggestReply(context.Background(), "Chờ quá lâu", "Khoa Nội")
		assert.Equal(t, fallback, text)
	})

	t.Run("mã trạng thái lỗi", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		service := newTestSuggestionService(server.URL)
		text := service.SuggestReply(context.Background(), "Chờ quá lâu", "Khoa Nội")
		assert.Equal(t, fallback, text)
	})

	t.Run("body sai định dạng", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`không phải JSON`))
		}))
		defer server.Close()

		service := newTestSuggestionService(server.URL)
		text := service.SuggestReply(context.Background(), "Chờ quá lâu", "Khoa Nội")
		assert.Equal(t, fallback, text)
	})

	t.Run("nội dung rỗng", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		service := newTestSuggestionService(server.URL)
		text := service.SuggestReply(context.Background(), "Chờ quá lâu", "Khoa Nội")
		assert.Equal(t, fallback, text)
	})

	t.Run("hủy context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		service := newTestSuggestionService(server.URL)
		text := service.SuggestReply(ctx, "Chờ quá lâu", "Khoa Nội")
		assert.Equal(t, fallback, text)
	})
}
