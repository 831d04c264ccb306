package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse định nghĩa cấu trúc phản hồi thành công chuẩn
type SuccessResponse struct {
	Status  string      `json:"status"`            // luôn là "success"
	Message string      `json:"message,omitempty"` // thông điệp thành công (tùy chọn)
	Data    interface{} `json:"data,omitempty"`    // dữ liệu trả về
}

// APIErrorResponse định nghĩa cấu trúc phản hồi lỗi chuẩn { "error": "...", "details": ... }
// details có thể là map[string]interface{} hoặc string
type APIErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON là hàm phụ trợ chung để gửi phản hồi JSON
func RespondJSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// RespondSuccess gửi một phản hồi JSON thành công chuẩn.
// status: mã HTTP (ví dụ http.StatusOK, http.StatusCreated)
// data: dữ liệu trả về, message: thông điệp (tùy chọn)
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	response := SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	if message == "" && data == nil { // giữ cấu trúc hợp lý khi không có gì để trả về
		response.Message = "Thao tác thành công"
	}
	RespondJSON(c, status, response)
}

// RespondAPIError gửi phản hồi lỗi theo định dạng chuẩn của API
func RespondAPIError(c *gin.Context, status int, errorMessage string, details interface{}) {
	response := APIErrorResponse{
		Error: errorMessage,
	}
	if details != nil {
		response.Details = details
	}
	c.AbortWithStatusJSON(status, response)
}

// RespondValidationError gửi phản hồi cho lỗi kiểm tra dữ liệu đầu vào.
// details thường là err.Error() hoặc thông tin lỗi có cấu trúc hơn
func RespondValidationError(c *gin.Context, details interface{}) {
	RespondAPIError(c, http.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ", details)
}

// RespondUnauthorizedError gửi lỗi chưa xác thực
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	errMsg := "Chưa đăng nhập hoặc phiên làm việc đã hết hạn"
	if len(message) > 0 && message[0] != "" {
		errMsg = message[0]
	}
	RespondAPIError(c, http.StatusUnauthorized, errMsg, nil)
}

// RespondNotFoundError gửi lỗi không tìm thấy tài nguyên
func RespondNotFoundError(c *gin.Context, resourceName string) {
	RespondAPIError(c, http.StatusNotFound, "Không tìm thấy "+resourceName, nil)
}

// RespondInternalServerError gửi lỗi máy chủ nội bộ.
// errDetails có thể là err.Error()
func RespondInternalServerError(c *gin.Context, message string, errDetails ...string) {
	var details interface{}
	if len(errDetails) > 0 {
		details = errDetails[0]
	}
	RespondAPIError(c, http.StatusInternalServerError, message, details)
}
