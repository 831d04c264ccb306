package email

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"

	"github.com/hospital_feedback/configs"
	"github.com/hospital_feedback/pkg/utils"
)

// SMTPConfig holds the SMTP server configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// LoadSMTPConfigFromEnv loads SMTP configuration from environment variables
func LoadSMTPConfigFromEnv() (*SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	sender := os.Getenv("SMTP_SENDER_EMAIL")

	if host == "" || portStr == "" || sender == "" {
		return nil, fmt.Errorf("SMTP_HOST, SMTP_PORT, and SMTP_SENDER_EMAIL must be set")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	return &SMTPConfig{
		Host:     host,
		Port:     port,
		Username: username, // Username can be empty for some SMTP servers
		Password: password, // Password can be empty for some SMTP servers
		Sender:   sender,
	}, nil
}

// SendNewFeedbackNotification gửi email báo có phản ánh mới tới hộp thư
// tiếp nhận của bệnh viện, kèm link mở màn hình quản trị.
func SendNewFeedbackNotification(toEmail, code, fullName, department, content string) error {
	if !utils.ValidateEmailFormat(toEmail) || strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("invalid notification recipient: %q", toEmail)
	}

	config, err := LoadSMTPConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load SMTP config: %w", err)
	}

	subject := fmt.Sprintf("[%s] Phản ánh mới %s - %s", configs.HospitalName, code, department)
	body := fmt.Sprintf(`
<html>
<body>
    <p>Hệ thống vừa tiếp nhận một phản ánh mới.</p>
    <p>Mã tra cứu: <b>%s</b></p>
    <p>Người gửi: %s</p>
    <p>Khoa: %s</p>
    <p>Nội dung:</p>
    <blockquote>%s</blockquote>
    <p>Vui lòng đăng nhập màn hình quản trị để xử lý: <a href="%s">%s</a></p>
</body>
</html>`, code, fullName, department, content, configs.AppConfig.FrontendBaseURL, configs.AppConfig.FrontendBaseURL)

	msg := strings.Join([]string{
		"From: " + config.Sender,
		"To: " + toEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	if err := smtp.SendMail(addr, auth, config.Sender, []string{toEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}
