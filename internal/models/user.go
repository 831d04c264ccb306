package models

import (
	"time"

	"gorm.io/gorm"
)

// User tương ứng với bảng users — tài khoản quản trị của hệ thống phản ánh.
type User struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string         `json:"username" gorm:"column:username;unique;not null;size:255"`
	PasswordHash string         `json:"-" gorm:"column:password_hash;not null;size:255"` // Hash mật khẩu không trả về qua JSON
	Role         string         `json:"role" gorm:"column:role;not null;default:'admin';size:50"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index" swaggertype:"string" format:"date-time"`
}

// TableName chỉ định tên bảng cho struct User
func (User) TableName() string {
	return "users"
}
