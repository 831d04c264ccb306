package handlers

import "github.com/hospital_feedback/internal/models"

// FeedbackListResponse là cấu trúc trả về của danh sách phản ánh,
// kèm số liệu tổng hợp cho màn hình tiếp nhận.
type FeedbackListResponse struct {
	Total    int               `json:"total"`
	Pending  int               `json:"pending"`
	Resolved int               `json:"resolved"`
	Items    []models.Feedback `json:"items"`
}

// SuggestionResponse là cấu trúc trả về của API gợi ý nội dung phản hồi.
type SuggestionResponse struct {
	Text string `json:"text"`
}
