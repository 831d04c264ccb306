package utils

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidPhoneNumberFormat = errors.New("số điện thoại không hợp lệ, phải gồm 10 chữ số")
	ErrInvalidPhoneNumberPrefix = errors.New("số điện thoại không hợp lệ, phải bắt đầu bằng số 0")
	ErrInvalidDateFormat        = errors.New("định dạng ngày không hợp lệ, dùng YYYY-MM-DD hoặc tương tự")
	ErrInvalidTimeFormat        = errors.New("định dạng giờ không hợp lệ, dùng HH:MM")
)

// IsNumeric kiểm tra chuỗi chỉ gồm chữ số hay không
func IsNumeric(s string) bool {
	if s == "" {
		return false // chuỗi rỗng không được coi là số
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidatePhoneNumber kiểm tra định dạng số điện thoại di động Việt Nam.
// Hợp lệ: 10 chữ số, bắt đầu bằng 0. Trả về nil nếu hợp lệ.
func ValidatePhoneNumber(phone string) error {
	trimmedPhone := strings.TrimSpace(phone)
	if len(trimmedPhone) != 10 {
		return ErrInvalidPhoneNumberFormat
	}
	if !IsNumeric(trimmedPhone) {
		return ErrInvalidPhoneNumberFormat
	}
	if !strings.HasPrefix(trimmedPhone, "0") {
		return ErrInvalidPhoneNumberPrefix
	}
	return nil
}

// ValidateEmailFormat kiểm tra định dạng email một cách đơn giản.
// Chuỗi rỗng được chấp nhận, để nghiệp vụ quyết định có bắt buộc hay không.
func ValidateEmailFormat(email string) bool {
	trimmedEmail := strings.TrimSpace(email)
	if trimmedEmail == "" {
		return true
	}
	at := strings.Index(trimmedEmail, "@")
	if at <= 0 || at == len(trimmedEmail)-1 {
		return false
	}
	domain := trimmedEmail[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// ParseDate phân tích chuỗi ngày, hỗ trợ các định dạng thường gặp.
// Hỗ trợ YYYY-MM-DD, YYYY/MM/DD, YYYY-M-D và các biến thể.
func ParseDate(dateStr string) (time.Time, error) {
	trimmedDateStr := strings.TrimSpace(dateStr)
	if trimmedDateStr == "" {
		return time.Time{}, ErrInvalidDateFormat // chuỗi ngày rỗng coi như không hợp lệ
	}

	normalizedDateStr := strings.ReplaceAll(trimmedDateStr, "/", "-")

	// Bao gồm cả trường hợp có và không có số 0 đệm
	dateLayouts := []string{
		"2006-01-02", // YYYY-MM-DD
		"2006-1-2",   // YYYY-M-D
		"2006-01-2",  // YYYY-MM-D
		"2006-1-02",  // YYYY-M-DD
	}

	for _, layout := range dateLayouts {
		if parsedDate, err := time.Parse(layout, normalizedDateStr); err == nil {
			return parsedDate, nil
		}
	}
	// Đã thử hết các định dạng mà vẫn thất bại
	return time.Time{}, ErrInvalidDateFormat
}

// ParseClockTime phân tích chuỗi giờ trong ngày (HH:MM hoặc HH:MM:SS).
func ParseClockTime(timeStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(timeStr)
	if trimmed == "" {
		return time.Time{}, ErrInvalidTimeFormat
	}

	timeLayouts := []string{
		"15:04",
		"15:04:05",
		"3:04",
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidTimeFormat
}
