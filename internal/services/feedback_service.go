package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hospital_feedback/configs"
	"github.com/hospital_feedback/internal/models"
	"github.com/hospital_feedback/internal/repositories"
	"github.com/hospital_feedback/pkg/email"
	"github.com/hospital_feedback/pkg/utils"
)

// ErrFeedbackNotFound biểu thị không tìm thấy phản ánh theo mã tra cứu
var ErrFeedbackNotFound = errors.New("không tìm thấy phản ánh")

// ErrFullNameRequired biểu thị thiếu họ tên người gửi
var ErrFullNameRequired = errors.New("họ và tên không được để trống")

// ErrContentRequired biểu thị thiếu nội dung phản ánh
var ErrContentRequired = errors.New("nội dung phản ánh không được để trống")

// ErrInvalidDepartment biểu thị khoa không nằm trong danh sách cấu hình
var ErrInvalidDepartment = errors.New("khoa không hợp lệ")

// ErrTooManyImages biểu thị vượt quá số ảnh đính kèm cho phép
var ErrTooManyImages = errors.New("chỉ được đính kèm tối đa 2 ảnh")

// ErrEmptyReply biểu thị nội dung phản hồi rỗng
var ErrEmptyReply = errors.New("nội dung phản hồi không được để trống")

// repliedAtLayout theo kiểu hiển thị vi-VN: giờ trước, ngày sau, không đệm số 0.
const repliedAtLayout = "15:04:05 2/1/2006"

// maxCodeAttempts giới hạn số lần sinh lại mã tra cứu khi trùng.
const maxCodeAttempts = 5

// SubmitFeedbackInput là dữ liệu đầu vào đã bind từ form gửi phản ánh.
// Date/Time để trống sẽ được mặc định theo thời điểm gửi.
type SubmitFeedbackInput struct {
	FullName    string
	PhoneNumber string
	Department  string
	Content     string
	Date        string
	Time        string
	Images      []string
}

// FeedbackService định nghĩa interface nghiệp vụ phản ánh
type FeedbackService interface {
	SubmitFeedback(input SubmitFeedbackInput) (*models.Feedback, error)
	// ListFeedbacks lọc theo trạng thái (rỗng = tất cả) và tìm kiếm
	// không phân biệt dấu trên họ tên, nội dung, khoa và mã tra cứu.
	ListFeedbacks(status, search string) ([]models.Feedback, error)
	GetFeedback(id string) (*models.Feedback, error)
	ReplyFeedback(id, replyText string) (*models.Feedback, error)
}

// feedbackService là hiện thực của FeedbackService
type feedbackService struct {
	repo repositories.FeedbackRepository
}

// NewFeedbackService tạo một instance feedbackService mới
func NewFeedbackService(repo repositories.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

// SubmitFeedback kiểm tra dữ liệu, dựng bản ghi phản ánh mới và lưu lại.
// Mọi lỗi kiểm tra được trả về trước khi có bất kỳ thao tác lưu trữ nào.
func (s *feedbackService) SubmitFeedback(input SubmitFeedbackInput) (*models.Feedback, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, ErrFullNameRequired
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrContentRequired
	}

	if !configs.IsValidDepartment(input.Department) {
		return nil, ErrInvalidDepartment
	}

	if len(input.Images) > models.MaxFeedbackImages {
		return nil, ErrTooManyImages
	}

	var phoneNumber *string
	if trimmedPhone := strings.TrimSpace(input.PhoneNumber); trimmedPhone != "" {
		if err := utils.ValidatePhoneNumber(trimmedPhone); err != nil {
			return nil, err
		}
		phoneNumber = &trimmedPhone
	}

	now := time.Now()

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = now.Format("2006-01-02")
	} else {
		parsed, err := utils.ParseDate(date)
		if err != nil {
			return nil, err
		}
		date = parsed.Format("2006-01-02")
	}

	clock := strings.TrimSpace(input.Time)
	if clock == "" {
		clock = now.Format("15:04")
	} else {
		parsed, err := utils.ParseClockTime(clock)
		if err != nil {
			return nil, err
		}
		clock = parsed.Format("15:04")
	}

	id, err := s.newFeedbackCode()
	if err != nil {
		return nil, err
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	feedback := &models.Feedback{
		ID:          id,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		Department:  input.Department,
		Content:     content,
		Date:        date,
		Time:        clock,
		Images:      images,
		Status:      models.FeedbackStatusPending,
		CreatedAt:   now,
	}

	if err := s.repo.Create(feedback); err != nil {
		return nil, err
	}

	s.notifyNewFeedback(feedback)

	return feedback, nil
}

// newFeedbackCode sinh mã tra cứu và đối chiếu với kho dữ liệu,
// trùng thì sinh lại, tối đa maxCodeAttempts lần.
func (s *feedbackService) newFeedbackCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := utils.GenerateFeedbackCode(utils.FeedbackCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := s.repo.ExistsByID(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("không sinh được mã tra cứu sau %d lần thử", maxCodeAttempts)
}

// notifyNewFeedback gửi email báo phản ánh mới tới hộp thư tiếp nhận của bệnh viện.
// Chạy nền, không cấu hình thì bỏ qua, thất bại chỉ ghi log.
func (s *feedbackService) notifyNewFeedback(feedback *models.Feedback) {
	notifyEmail := configs.AppConfig.NotifyEmail
	if notifyEmail == "" {
		return
	}
	go func(fb models.Feedback) {
		if err := email.SendNewFeedbackNotification(notifyEmail, fb.ID, fb.FullName, fb.Department, fb.Content); err != nil {
			log.Printf("Gửi email thông báo phản ánh %s thất bại: %v", fb.ID, err)
		}
	}(*feedback)
}

// ListFeedbacks trả về danh sách phản ánh mới nhất trước, lọc theo trạng thái
// và từ khóa tìm kiếm (nếu có).
func (s *feedbackService) ListFeedbacks(status, search string) ([]models.Feedback, error) {
	feedbacks, err := s.repo.FindAll(status)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return feedbacks, nil
	}

	// Lọc tại tầng dịch vụ vì SQLite không so khớp được tiếng Việt không dấu
	filtered := make([]models.Feedback, 0, len(feedbacks))
	for _, fb := range feedbacks {
		if utils.ContainsFolded(fb.FullName, search) ||
			utils.ContainsFolded(fb.Content, search) ||
			utils.ContainsFolded(fb.Department, search) ||
			strings.EqualFold(fb.ID, search) {
			filtered = append(filtered, fb)
		}
	}
	return filtered, nil
}

// GetFeedback tìm một phản ánh theo mã tra cứu.
func (s *feedbackService) GetFeedback(id string) (*models.Feedback, error) {
	feedback, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return feedback, nil
}

// ReplyFeedback gắn phản hồi của quản trị viên vào phản ánh và chuyển
// trạng thái sang RESOLVED. Các trường do người dân cung cấp, mã tra cứu
// và thời điểm gửi không bị thay đổi. Phản hồi lại một phản ánh đã
// RESOLVED sẽ ghi đè nội dung và thời điểm phản hồi cũ.
func (s *feedbackService) ReplyFeedback(id, replyText string) (*models.Feedback, error) {
	reply := strings.TrimSpace(replyText)
	if reply == "" {
		return nil, ErrEmptyReply
	}

	feedback, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	repliedAt := time.Now().Format(repliedAtLayout)
	feedback.AdminReply = &reply
	feedback.RepliedAt = &repliedAt
	feedback.Status = models.FeedbackStatusResolved

	if err := s.repo.Update(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
