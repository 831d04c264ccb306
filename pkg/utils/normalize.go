package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics chuyển chuỗi tiếng Việt về dạng không dấu, chữ thường,
// phục vụ tìm kiếm không phân biệt dấu ("Nguyễn" khớp với "nguyen").
func FoldDiacritics(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Không gập dấu được thì vẫn so sánh chữ thường
		return strings.ToLower(s)
	}
	// Chữ đ không thuộc lớp dấu kết hợp nên phải thay riêng
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "D")
	return strings.ToLower(folded)
}

// ContainsFolded kiểm tra needle có xuất hiện trong haystack hay không,
// không phân biệt hoa thường và dấu tiếng Việt.
func ContainsFolded(haystack, needle string) bool {
	return strings.Contains(FoldDiacritics(haystack), FoldDiacritics(needle))
}
