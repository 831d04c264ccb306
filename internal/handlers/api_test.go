package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospital_feedback/configs"
	"github.com/hospital_feedback/internal/models"
	"github.com/hospital_feedback/internal/routes"
	"github.com/hospital_feedback/pkg/db"
)

var testRouter *gin.Engine

// TestMain dựng toàn bộ ứng dụng trên một CSDL SQLite tạm,
// các test gọi API qua router thật như một client HTTP.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(os.TempDir(), fmt.Sprintf("hospital_feedback_test_%d.db", time.Now().UnixNano()))
	os.Setenv("SQLITE_DB_PATH", dbPath)
	os.Unsetenv("GEMINI_API_KEY") // gợi ý trả lời trong test luôn dùng nội dung mặc định

	configs.LoadConfig()
	db.InitDB()

	testRouter = gin.New()
	routes.SetupRoutes(testRouter)

	code := m.Run()

	db.CloseDB()
	os.Remove(dbPath)
	os.Exit(code)
}

func performRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

// loginAsAdmin đăng nhập bằng tài khoản quản trị khởi tạo và trả về token.
func loginAsAdmin(t *testing.T) string {
	t.Helper()
	w := performRequest(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": configs.AppConfig.AdminUsername,
		"password": configs.AppConfig.AdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func submitFeedback(t *testing.T, payload gin.H) models.Feedback {
	t.Helper()
	w := performRequest(t, http.MethodPost, "/api/v1/feedbacks", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Feedback `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestLoginWrongPassword(t *testing.T) {
	w := performRequest(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": configs.AppConfig.AdminUsername,
		"password": "sai-mat-khau",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Tên đăng nhập hoặc mật khẩu không đúng")
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	// Sai tài khoản và sai mật khẩu phải trả về cùng một thông điệp
	wrongUser := performRequest(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "khong-ton-tai",
		"password": "sai-mat-khau",
	})
	wrongPassword := performRequest(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": configs.AppConfig.AdminUsername,
		"password": "sai-mat-khau",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), wrongUser.Body.String())
}

func TestListDepartments(t *testing.T) {
	w := performRequest(t, http.MethodGet, "/api/v1/departments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data, "Khoa Nội")
	assert.Len(t, resp.Data, 10)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	w := performRequest(t, http.MethodGet, "/api/v1/feedbacks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(t, http.MethodPost, "/api/v1/feedbacks/ABCDEF/reply", "", gin.H{"reply": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitFeedbackValidationOverHTTP(t *testing.T) {
	// Thiếu trường bắt buộc bị chặn ngay khi bind
	w := performRequest(t, http.MethodPost, "/api/v1/feedbacks", "", gin.H{
		"fullName": "Nguyễn Văn A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Quá 2 ảnh
	w = performRequest(t, http.MethodPost, "/api/v1/feedbacks", "", gin.H{
		"fullName":   "Nguyễn Văn A",
		"department": "Khoa Nội",
		"content":    "Chờ quá lâu",
		"images":     []string{"a", "b", "c"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Khoa không nằm trong danh sách cấu hình
	w = performRequest(t, http.MethodPost, "/api/v1/feedbacks", "", gin.H{
		"fullName":   "Nguyễn Văn A",
		"department": "Khoa Không Tồn Tại",
		"content":    "Chờ quá lâu",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackLifecycleOverHTTP(t *testing.T) {
	fb := submitFeedback(t, gin.H{
		"fullName":   "Nguyễn Văn A",
		"department": "Khoa Nội",
		"content":    "Chờ quá lâu",
	})
	assert.Len(t, fb.ID, 6)
	assert.Equal(t, models.FeedbackStatusPending, fb.Status)
	assert.Empty(t, fb.Images)

	token := loginAsAdmin(t)

	// Danh sách phản ánh chứa bản ghi vừa gửi
	w := performRequest(t, http.MethodGet, "/api/v1/feedbacks?status=PENDING", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fb.ID)

	// Lọc với trạng thái không hợp lệ bị từ chối
	w = performRequest(t, http.MethodGet, "/api/v1/feedbacks?status=KHAC", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Gợi ý trả lời: không cấu hình API key nên nhận nội dung mặc định có tên khoa
	w = performRequest(t, http.MethodPost, "/api/v1/feedbacks/"+fb.ID+"/suggestion", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Khoa Nội")

	// Phản hồi phản ánh
	w = performRequest(t, http.MethodPost, "/api/v1/feedbacks/"+fb.ID+"/reply", token, gin.H{
		"reply": "Xin cảm ơn, chúng tôi đã ghi nhận.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var replyResp struct {
		Data models.Feedback `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replyResp))
	assert.Equal(t, models.FeedbackStatusResolved, replyResp.Data.Status)
	require.NotNil(t, replyResp.Data.AdminReply)
	assert.Equal(t, "Xin cảm ơn, chúng tôi đã ghi nhận.", *replyResp.Data.AdminReply)
	require.NotNil(t, replyResp.Data.RepliedAt)
	assert.NotEmpty(t, *replyResp.Data.RepliedAt)

	// Chi tiết phản ánh sau khi phản hồi
	w = performRequest(t, http.MethodGet, "/api/v1/feedbacks/"+fb.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RESOLVED")
}

func TestReplyNotFoundOverHTTP(t *testing.T) {
	token := loginAsAdmin(t)
	w := performRequest(t, http.MethodPost, "/api/v1/feedbacks/ZZZZZZ/reply", token, gin.H{
		"reply": "Nội dung",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	token := loginAsAdmin(t)

	w := performRequest(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Token đã đăng xuất không dùng lại được
	w = performRequest(t, http.MethodGet, "/api/v1/feedbacks", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
