package configs

import (
	"log"
	"os"
	"sync"
	"time"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret       string
	ServerPort      string
	AdminUsername   string
	AdminPassword   string
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	GeminiTimeout   time.Duration
	NotifyEmail     string
	FrontendBaseURL string
}

// HospitalName xuất hiện trong prompt gợi ý trả lời và email thông báo.
const HospitalName = "BỆNH VIỆN ĐA KHOA NINH THUẬN"

const (
	defaultJWTSecret  = "hospital"       // Default JWT secret, used if env var is not set.
	envJWTSecretKey   = "JWT_SECRET_KEY" // Environment variable name for the JWT secret.
	defaultServerPort = "8080"           // Default server port.
	envServerPortKey  = "SERVER_PORT"    // Environment variable name for the server port.

	// Tài khoản quản trị khởi tạo lần đầu. Mặc định chỉ dùng cho môi trường dev,
	// production bắt buộc đặt ADMIN_PASSWORD trước khi chạy lần đầu.
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	envAdminUsernameKey  = "ADMIN_USERNAME"
	envAdminPasswordKey  = "ADMIN_PASSWORD"

	envGeminiAPIKey      = "GEMINI_API_KEY"
	defaultGeminiModel   = "gemini-3-flash-preview"
	envGeminiModelKey    = "GEMINI_MODEL"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	envGeminiBaseURLKey  = "GEMINI_BASE_URL"
	defaultGeminiTimeout = 15 * time.Second
	envGeminiTimeoutKey  = "GEMINI_TIMEOUT"

	envNotifyEmailKey      = "FEEDBACK_NOTIFY_EMAIL"
	defaultFrontendBaseURL = "http://localhost:3000" // URL frontend mặc định, dùng cho link trong email
	envFrontendBaseURLKey  = "FRONTEND_BASE_URL"
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("Cảnh báo: biến môi trường %s chưa được đặt. Đang dùng JWT secret mặc định, hãy đặt biến này trong môi trường production.", envJWTSecretKey)
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("Thông tin: biến môi trường %s chưa được đặt. Đang dùng cổng mặc định %s.", envServerPortKey, defaultServerPort)
		}

		adminUsername := os.Getenv(envAdminUsernameKey)
		if adminUsername == "" {
			adminUsername = defaultAdminUsername
		}
		adminPassword := os.Getenv(envAdminPasswordKey)
		if adminPassword == "" {
			adminPassword = defaultAdminPassword
			log.Printf("Cảnh báo: biến môi trường %s chưa được đặt. Tài khoản quản trị khởi tạo sẽ dùng mật khẩu mặc định (chỉ dành cho dev).", envAdminPasswordKey)
		}

		geminiAPIKey := os.Getenv(envGeminiAPIKey)
		if geminiAPIKey == "" {
			log.Printf("Thông tin: biến môi trường %s chưa được đặt. Chức năng gợi ý trả lời sẽ luôn dùng nội dung trả lời mặc định.", envGeminiAPIKey)
		}
		geminiModel := os.Getenv(envGeminiModelKey)
		if geminiModel == "" {
			geminiModel = defaultGeminiModel
		}
		geminiBaseURL := os.Getenv(envGeminiBaseURLKey)
		if geminiBaseURL == "" {
			geminiBaseURL = defaultGeminiBaseURL
		}
		geminiTimeout := defaultGeminiTimeout
		if v := os.Getenv(envGeminiTimeoutKey); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				geminiTimeout = d
			} else {
				log.Printf("Cảnh báo: giá trị %s không hợp lệ (%q), dùng mặc định %s.", envGeminiTimeoutKey, v, defaultGeminiTimeout)
			}
		}

		frontendBaseURL := os.Getenv(envFrontendBaseURLKey)
		if frontendBaseURL == "" {
			frontendBaseURL = defaultFrontendBaseURL
		}

		AppConfig = Configuration{
			JWTSecret:       jwtSecret,
			ServerPort:      serverPort,
			AdminUsername:   adminUsername,
			AdminPassword:   adminPassword,
			GeminiAPIKey:    geminiAPIKey,
			GeminiModel:     geminiModel,
			GeminiBaseURL:   geminiBaseURL,
			GeminiTimeout:   geminiTimeout,
			NotifyEmail:     os.Getenv(envNotifyEmailKey),
			FrontendBaseURL: frontendBaseURL,
		}

		log.Println("Đã nạp cấu hình ứng dụng.")
	})
}
