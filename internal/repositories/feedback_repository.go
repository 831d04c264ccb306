package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hospital_feedback/internal/models"
)

// ErrRecordNotFound biểu thị bản ghi không tồn tại, dùng lại lỗi của gorm.
var ErrRecordNotFound = gorm.ErrRecordNotFound

// FeedbackRepository định nghĩa interface thao tác dữ liệu phản ánh.
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	FindByID(id string) (*models.Feedback, error)
	// FindAll trả về danh sách phản ánh, mới nhất trước.
	// status rỗng nghĩa là không lọc theo trạng thái.
	FindAll(status string) ([]models.Feedback, error)
	Update(feedback *models.Feedback) error
	ExistsByID(id string) (bool, error)
	CountByStatus(status string) (int64, error)
}

// gormFeedbackRepository là hiện thực GORM của FeedbackRepository
type gormFeedbackRepository struct {
	db *gorm.DB
}

// NewGormFeedbackRepository tạo một instance gormFeedbackRepository mới
func NewGormFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &gormFeedbackRepository{db: db}
}

// Create ghi một phản ánh mới vào cơ sở dữ liệu.
func (r *gormFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// FindByID tìm phản ánh theo mã tra cứu.
func (r *gormFeedbackRepository) FindByID(id string) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.First(&feedback, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

// FindAll truy vấn danh sách phản ánh theo trạng thái (nếu có),
// sắp xếp theo thời điểm gửi giảm dần; mã tra cứu làm khóa phụ để
// thứ tự ổn định khi hai phản ánh gửi cùng thời điểm.
func (r *gormFeedbackRepository) FindAll(status string) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	query := r.db.Order("created_at DESC, id ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Update lưu toàn bộ bản ghi phản ánh (thay thế theo mã tra cứu).
func (r *gormFeedbackRepository) Update(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}

// ExistsByID kiểm tra mã tra cứu đã được sử dụng hay chưa.
// Dùng khi sinh mã mới để tránh trùng lặp.
func (r *gormFeedbackRepository) ExistsByID(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Feedback{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByStatus đếm số phản ánh theo trạng thái; status rỗng thì đếm tất cả.
func (r *gormFeedbackRepository) CountByStatus(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Feedback{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
