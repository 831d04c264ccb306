package utils

// ContainsString kiểm tra một chuỗi có nằm trong danh sách hay không.
func ContainsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
