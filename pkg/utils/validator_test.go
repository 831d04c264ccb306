package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, ValidatePhoneNumber("0912345678"))
	assert.NoError(t, ValidatePhoneNumber(" 0912345678 ")) // khoảng trắng thừa được cắt

	assert.ErrorIs(t, ValidatePhoneNumber("091234567"), ErrInvalidPhoneNumberFormat)   // thiếu số
	assert.ErrorIs(t, ValidatePhoneNumber("09123456789"), ErrInvalidPhoneNumberFormat) // thừa số
	assert.ErrorIs(t, ValidatePhoneNumber("09x2345678"), ErrInvalidPhoneNumberFormat)  // lẫn chữ
	assert.ErrorIs(t, ValidatePhoneNumber("1912345678"), ErrInvalidPhoneNumberPrefix)  // không bắt đầu bằng 0
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2026-08-31", "2026/08/31", "2026-8-31", "2026/8/31"} {
		parsed, err := ParseDate(in)
		require.NoError(t, err, "ParseDate(%q)", in)
		assert.Equal(t, "2026-08-31", parsed.Format("2006-01-02"))
	}

	for _, in := range []string{"", "31-08-2026", "hôm qua", "2026-13-01"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "ParseDate(%q)", in)
	}
}

func TestParseClockTime(t *testing.T) {
	parsed, err := ParseClockTime("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", parsed.Format("15:04"))

	parsed, err = ParseClockTime("14:30:45")
	require.NoError(t, err)
	assert.Equal(t, "14:30", parsed.Format("15:04"))

	for _, in := range []string{"", "25:00", "trưa"} {
		_, err := ParseClockTime(in)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "ParseClockTime(%q)", in)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	assert.True(t, ValidateEmailFormat("tiepnhan@bvninhthuan.vn"))
	assert.True(t, ValidateEmailFormat("")) // chuỗi rỗng do nghiệp vụ quyết định
	assert.False(t, ValidateEmailFormat("khong-phai-email"))
	assert.False(t, ValidateEmailFormat("a@"))
	assert.False(t, ValidateEmailFormat("@b.vn"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123456789"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
}

func TestContainsString(t *testing.T) {
	list := []string{"Khoa Nội", "Khoa Ngoại"}
	assert.True(t, ContainsString(list, "Khoa Nội"))
	assert.False(t, ContainsString(list, "Khoa Nhi"))
	assert.False(t, ContainsString(nil, "Khoa Nội"))
}
