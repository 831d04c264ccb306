package configs

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/hospital_feedback/pkg/utils"
)

// defaultDepartments là danh sách khoa mặc định của bệnh viện.
// Đây là dữ liệu cấu hình, không phải logic nghiệp vụ: có thể thay thế toàn bộ
// danh sách qua biến môi trường FEEDBACK_DEPARTMENTS (các khoa cách nhau bằng dấu phẩy).
var defaultDepartments = []string{
	"Khoa Yêu cầu",
	"Khoa Khám bệnh",
	"Khoa Cấp cứu",
	"Khoa Nội",
	"Khoa Ngoại",
	"Khoa Sản",
	"Khoa Nhi",
	"Khoa Hồi sức tích cực",
	"Khoa Xét nghiệm",
	"Khoa Chẩn đoán hình ảnh",
}

const envDepartmentsKey = "FEEDBACK_DEPARTMENTS"

var (
	departments     []string
	departmentsOnce sync.Once
)

// DepartmentList trả về danh sách khoa đã cấu hình.
// Kết quả là bản sao, bên gọi có thể tự do sắp xếp hoặc sửa đổi.
func DepartmentList() []string {
	departmentsOnce.Do(loadDepartments)
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}

// IsValidDepartment kiểm tra một giá trị khoa có nằm trong danh sách cấu hình hay không.
func IsValidDepartment(department string) bool {
	departmentsOnce.Do(loadDepartments)
	return utils.ContainsString(departments, department)
}

func loadDepartments() {
	raw := os.Getenv(envDepartmentsKey)
	if raw == "" {
		departments = defaultDepartments
		return
	}

	var parsed []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parsed = append(parsed, trimmed)
		}
	}
	if len(parsed) == 0 {
		log.Printf("Cảnh báo: %s không chứa khoa hợp lệ nào, dùng danh sách mặc định.", envDepartmentsKey)
		departments = defaultDepartments
		return
	}
	departments = parsed
}
