package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// feedbackCodeAlphabet là tập ký tự của mã tra cứu: chữ hoa và chữ số,
// dễ đọc cho người dân khi tra cứu qua điện thoại.
const feedbackCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FeedbackCodeLength là độ dài chuẩn của mã tra cứu phản ánh.
const FeedbackCodeLength = 6

// GenerateFeedbackCode sinh mã tra cứu ngẫu nhiên với độ dài cho trước,
// dùng crypto/rand để không đoán trước được mã của phản ánh khác.
func GenerateFeedbackCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("độ dài mã không hợp lệ: %d", length)
	}

	max := big.NewInt(int64(len(feedbackCodeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("không sinh được mã ngẫu nhiên: %w", err)
		}
		code[i] = feedbackCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
