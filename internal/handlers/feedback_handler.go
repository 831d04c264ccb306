package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hospital_feedback/configs"
	"github.com/hospital_feedback/internal/services"
	"github.com/hospital_feedback/pkg/utils"
)

// FeedbackHandler đóng gói logic HTTP liên quan tới phản ánh
type FeedbackHandler struct {
	service     services.FeedbackService
	suggestions services.SuggestionService
}

// NewFeedbackHandler tạo một FeedbackHandler mới
func NewFeedbackHandler(service services.FeedbackService, suggestions services.SuggestionService) *FeedbackHandler {
	return &FeedbackHandler{service: service, suggestions: suggestions}
}

// SubmitFeedbackPayload là struct tạm để bind và kiểm tra request gửi phản ánh
type SubmitFeedbackPayload struct {
	FullName    string   `json:"fullName" binding:"required,max=255"`
	PhoneNumber string   `json:"phoneNumber" binding:"omitempty,max=20"`
	Department  string   `json:"department" binding:"required,max=100"`
	Content     string   `json:"content" binding:"required"`
	Date        string   `json:"date" binding:"omitempty,max=10"`
	Time        string   `json:"time" binding:"omitempty,max=8"`
	Images      []string `json:"images" binding:"omitempty,max=2"`
}

// ListFeedbacksQuery là struct bind query string của danh sách phản ánh
type ListFeedbacksQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING RESOLVED"`
	Search string `form:"search" binding:"omitempty,max=255"`
}

// ReplyFeedbackPayload là struct bind request phản hồi của quản trị viên
type ReplyFeedbackPayload struct {
	Reply string `json:"reply" binding:"required"`
}

// SubmitFeedback godoc
// @Summary Gửi phản ánh mới
// @Description Người dân gửi phản ánh/góp ý gắn với một khoa của bệnh viện, kèm tối đa 2 ảnh.
// @Tags Feedbacks
// @Accept json
// @Produce json
// @Param feedback body SubmitFeedbackPayload true "Nội dung phản ánh (ngày YYYY-MM-DD, giờ HH:MM, để trống sẽ lấy thời điểm gửi)"
// @Success 201 {object} utils.SuccessResponse{data=models.Feedback} "Phản ánh đã được tiếp nhận"
// @Failure 400 {object} utils.APIErrorResponse "Dữ liệu gửi lên không hợp lệ"
// @Failure 500 {object} utils.APIErrorResponse "Lỗi máy chủ nội bộ"
// @Router /feedbacks [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var payload SubmitFeedbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	feedback, err := h.service.SubmitFeedback(services.SubmitFeedbackInput{
		FullName:    payload.FullName,
		PhoneNumber: payload.PhoneNumber,
		Department:  payload.Department,
		Content:     payload.Content,
		Date:        payload.Date,
		Time:        payload.Time,
		Images:      payload.Images,
	})
	if err != nil {
		if isValidationError(err) {
			utils.RespondValidationError(c, err.Error())
		} else {
			utils.RespondInternalServerError(c, "Không tiếp nhận được phản ánh", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, feedback, "Đã tiếp nhận phản ánh, cảm ơn quý khách")
}

// isValidationError phân biệt lỗi kiểm tra dữ liệu với lỗi hệ thống.
func isValidationError(err error) bool {
	return errors.Is(err, services.ErrFullNameRequired) ||
		errors.Is(err, services.ErrContentRequired) ||
		errors.Is(err, services.ErrInvalidDepartment) ||
		errors.Is(err, services.ErrTooManyImages) ||
		errors.Is(err, utils.ErrInvalidPhoneNumberFormat) ||
		errors.Is(err, utils.ErrInvalidPhoneNumberPrefix) ||
		errors.Is(err, utils.ErrInvalidDateFormat) ||
		errors.Is(err, utils.ErrInvalidTimeFormat)
}

// ListDepartments godoc
// @Summary Danh sách khoa
// @Description Trả về danh sách khoa đã cấu hình để hiển thị trong form gửi phản ánh.
// @Tags Departments
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /departments [get]
func (h *FeedbackHandler) ListDepartments(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, configs.DepartmentList(), "")
}

// ListFeedbacks godoc
// @Summary Danh sách phản ánh (quản trị)
// @Description Liệt kê phản ánh mới nhất trước, lọc theo trạng thái và tìm kiếm không phân biệt dấu.
// @Tags Feedbacks
// @Produce json
// @Param status query string false "Trạng thái (PENDING hoặc RESOLVED, bỏ trống = tất cả)"
// @Param search query string false "Từ khóa tìm theo họ tên, nội dung, khoa hoặc mã tra cứu"
// @Success 200 {object} utils.SuccessResponse{data=FeedbackListResponse}
// @Failure 400 {object} utils.APIErrorResponse "Tham số lọc không hợp lệ"
// @Failure 401 {object} utils.APIErrorResponse "Chưa đăng nhập hoặc phiên làm việc đã hết hạn"
// @Failure 500 {object} utils.APIErrorResponse "Lỗi máy chủ nội bộ"
// @Router /feedbacks [get]
// @Security BearerAuth
func (h *FeedbackHandler) ListFeedbacks(c *gin.Context) {
	var query ListFeedbacksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	feedbacks, err := h.service.ListFeedbacks(query.Status, query.Search)
	if err != nil {
		utils.RespondInternalServerError(c, "Không tải được danh sách phản ánh", err.Error())
		return
	}

	pending := 0
	for _, fb := range feedbacks {
		if !fb.IsResolved() {
			pending++
		}
	}

	utils.RespondSuccess(c, http.StatusOK, FeedbackListResponse{
		Total:    len(feedbacks),
		Pending:  pending,
		Resolved: len(feedbacks) - pending,
		Items:    feedbacks,
	}, "")
}

// GetFeedback godoc
// @Summary Chi tiết một phản ánh (quản trị)
// @Tags Feedbacks
// @Produce json
// @Param id path string true "Mã tra cứu phản ánh"
// @Success 200 {object} utils.SuccessResponse{data=models.Feedback}
// @Failure 401 {object} utils.APIErrorResponse "Chưa đăng nhập hoặc phiên làm việc đã hết hạn"
// @Failure 404 {object} utils.APIErrorResponse "Không tìm thấy phản ánh"
// @Router /feedbacks/{id} [get]
// @Security BearerAuth
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	feedback, err := h.service.GetFeedback(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFeedbackNotFound) {
			utils.RespondNotFoundError(c, "phản ánh")
		} else {
			utils.RespondInternalServerError(c, "Không tải được phản ánh", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, feedback, "")
}

// ReplyFeedback godoc
// @Summary Phản hồi một phản ánh (quản trị)
// @Description Gắn phản hồi của quản trị viên và chuyển phản ánh sang trạng thái RESOLVED. Phản hồi lại sẽ ghi đè phản hồi cũ.
// @Tags Feedbacks
// @Accept json
// @Produce json
// @Param id path string true "Mã tra cứu phản ánh"
// @Param reply body ReplyFeedbackPayload true "Nội dung phản hồi"
// @Success 200 {object} utils.SuccessResponse{data=models.Feedback} "Phản ánh sau khi phản hồi"
// @Failure 400 {object} utils.APIErrorResponse "Nội dung phản hồi không hợp lệ"
// @Failure 401 {object} utils.APIErrorResponse "Chưa đăng nhập hoặc phiên làm việc đã hết hạn"
// @Failure 404 {object} utils.APIErrorResponse "Không tìm thấy phản ánh"
// @Router /feedbacks/{id}/reply [post]
// @Security BearerAuth
func (h *FeedbackHandler) ReplyFeedback(c *gin.Context) {
	var payload ReplyFeedbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	feedback, err := h.service.ReplyFeedback(c.Param("id"), payload.Reply)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFeedbackNotFound):
			utils.RespondNotFoundError(c, "phản ánh")
		case errors.Is(err, services.ErrEmptyReply):
			utils.RespondValidationError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Không lưu được phản hồi", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, feedback, "Đã gửi phản hồi thành công")
}

// SuggestReply godoc
// @Summary Gợi ý nội dung phản hồi (quản trị)
// @Description Nhờ dịch vụ AI soạn bản nháp trả lời. Luôn trả về 200 với một đoạn văn bản dùng được; khi dịch vụ AI lỗi sẽ trả nội dung mặc định có nhắc tên khoa.
// @Tags Feedbacks
// @Produce json
// @Param id path string true "Mã tra cứu phản ánh"
// @Success 200 {object} utils.SuccessResponse{data=SuggestionResponse}
// @Failure 401 {object} utils.APIErrorResponse "Chưa đăng nhập hoặc phiên làm việc đã hết hạn"
// @Failure 404 {object} utils.APIErrorResponse "Không tìm thấy phản ánh"
// @Router /feedbacks/{id}/suggestion [post]
// @Security BearerAuth
func (h *FeedbackHandler) SuggestReply(c *gin.Context) {
	feedback, err := h.service.GetFeedback(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFeedbackNotFound) {
			utils.RespondNotFoundError(c, "phản ánh")
		} else {
			utils.RespondInternalServerError(c, "Không tải được phản ánh", err.Error())
		}
		return
	}

	// Gọi đồng bộ trong handler này; request khác không bị chặn.
	// Hai yêu cầu gợi ý song song cho cùng phản ánh thì kết quả về sau thắng (phía client).
	text := h.suggestions.SuggestReply(c.Request.Context(), feedback.Content, feedback.Department)
	utils.RespondSuccess(c, http.StatusOK, SuggestionResponse{Text: text}, "")
}
