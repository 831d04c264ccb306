package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldDiacritics(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Nguyễn Văn A", "nguyen van a"},
		{"Khoa Nội", "khoa noi"},
		{"Khoa Chẩn đoán hình ảnh", "khoa chan doan hinh anh"},
		{"Đặng Thị Hồng", "dang thi hong"},
		{"Chờ quá lâu", "cho qua lau"},
		{"abc123", "abc123"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FoldDiacritics(tc.in), "FoldDiacritics(%q)", tc.in)
	}
}

func TestContainsFolded(t *testing.T) {
	assert.True(t, ContainsFolded("Nguyễn Văn A", "nguyen"))
	assert.True(t, ContainsFolded("Khoa Nội", "NOI"))
	assert.True(t, ContainsFolded("Chờ quá lâu ở quầy thuốc", "quay thuoc"))
	assert.False(t, ContainsFolded("Khoa Nội", "ngoai"))
}
