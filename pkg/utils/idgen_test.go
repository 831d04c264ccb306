package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFeedbackCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateFeedbackCode(FeedbackCodeLength)
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
		seen[code] = true
	}
	// 200 mã 6 ký tự trên bảng 36 ký tự mà trùng nhau nhiều là bất thường
	assert.Greater(t, len(seen), 190)
}

func TestGenerateFeedbackCodeCustomLength(t *testing.T) {
	code, err := GenerateFeedbackCode(10)
	require.NoError(t, err)
	assert.Len(t, code, 10)
}

func TestGenerateFeedbackCodeInvalidLength(t *testing.T) {
	_, err := GenerateFeedbackCode(0)
	assert.Error(t, err)

	_, err = GenerateFeedbackCode(-3)
	assert.Error(t, err)
}
