package db

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hospital_feedback/configs"
	"github.com/hospital_feedback/internal/models"
)

var gormDB *gorm.DB

const (
	defaultDbPathEnv = "SQLITE_DB_PATH"
	defaultDbFile    = "data/hospital_feedback.db"
)

// InitDB khởi tạo kết nối cơ sở dữ liệu qua GORM.
// Đường dẫn file lấy từ biến môi trường SQLITE_DB_PATH, chưa đặt thì dùng
// mặc định "data/hospital_feedback.db".
func InitDB() {
	dbPath := os.Getenv(defaultDbPathEnv)
	if dbPath == "" {
		dbPath = defaultDbFile
		log.Printf("Environment variable %s not set, using default database path: %s", defaultDbPathEnv, dbPath)
	} else {
		log.Printf("Using database path from environment variable %s: %s", defaultDbPathEnv, dbPath)
	}

	// Đảm bảo thư mục chứa file cơ sở dữ liệu tồn tại
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		log.Printf("Database directory %s does not exist, creating it...", dbDir)
		if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
			log.Fatalf("Failed to create database directory %s: %v", dbDir, mkErr)
		}
	}

	// Cấu hình mức log của GORM
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var err error
	gormDB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})

	if err != nil {
		log.Fatalf("Failed to connect to database %s: %v", dbPath, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB from GORM: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("Successfully connected to database using GORM: %s", dbPath)

	// Tự động migrate cấu trúc bảng
	err = gormDB.AutoMigrate(
		&models.User{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate database tables: %v", err)
	}
	log.Println("Database tables migrated successfully.")

	seedAdminUser()
}

// seedAdminUser tạo tài khoản quản trị lần đầu nếu chưa tồn tại.
// Tên đăng nhập/mật khẩu lấy từ cấu hình (ADMIN_USERNAME / ADMIN_PASSWORD).
func seedAdminUser() {
	username := configs.AppConfig.AdminUsername
	if username == "" {
		log.Println("Bỏ qua khởi tạo tài khoản quản trị: chưa nạp cấu hình.")
		return
	}

	var existing models.User
	err := gormDB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return // tài khoản đã có
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(configs.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         "admin",
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Đã khởi tạo tài khoản quản trị %q.", username)
}

// GetDB trả về instance cơ sở dữ liệu GORM
func GetDB() *gorm.DB {
	if gormDB == nil {
		log.Fatal("Database not initialized. Call InitDB first.")
	}
	return gormDB
}

// CloseDB đóng kết nối cơ sở dữ liệu (gọi khi ứng dụng thoát)
func CloseDB() {
	if gormDB != nil {
		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Printf("Error getting underlying sql.DB for closing: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
		log.Println("Database connection closed.")
	}
}
