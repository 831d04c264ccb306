package models

import (
	"time"
)

// Trạng thái xử lý của một phản ánh.
const (
	FeedbackStatusPending  = "PENDING"  // Đã tiếp nhận, chưa có phản hồi
	FeedbackStatusResolved = "RESOLVED" // Đã được quản trị viên phản hồi
)

// MaxFeedbackImages giới hạn số ảnh đính kèm mỗi phản ánh.
const MaxFeedbackImages = 2

// Feedback tương ứng với bảng feedbacks: một phản ánh/góp ý của người dân gửi tới bệnh viện.
// Các trường do người dân cung cấp là bất biến sau khi tạo; chỉ AdminReply,
// RepliedAt và Status thay đổi khi quản trị viên phản hồi.
type Feedback struct {
	ID          string    `json:"id" gorm:"primaryKey;size:12"` // Mã tra cứu ngắn, sinh ngẫu nhiên
	FullName    string    `json:"fullName" gorm:"column:full_name;not null;size:255"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" gorm:"column:phone_number;size:20"`
	Department  string    `json:"department" gorm:"column:department;not null;size:100;index"`
	Content     string    `json:"content" gorm:"column:content;not null;type:text"`
	Date        string    `json:"date" gorm:"column:date;size:10"` // Ngày xảy ra sự việc (YYYY-MM-DD), chỉ để hiển thị
	Time        string    `json:"time" gorm:"column:time;size:8"`  // Giờ xảy ra sự việc (HH:MM), chỉ để hiển thị
	Images      []string  `json:"images" gorm:"column:images;serializer:json"`
	Status      string    `json:"status" gorm:"column:status;not null;default:'PENDING';size:20;index"`
	AdminReply  *string   `json:"adminReply,omitempty" gorm:"column:admin_reply;type:text"`
	RepliedAt   *string   `json:"repliedAt,omitempty" gorm:"column:replied_at;size:30"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime;index"`
}

// TableName chỉ định tên bảng cho struct Feedback
func (Feedback) TableName() string {
	return "feedbacks"
}

// IsResolved cho biết phản ánh đã có phản hồi của quản trị viên hay chưa.
func (f *Feedback) IsResolved() bool {
	return f.Status == FeedbackStatusResolved
}
