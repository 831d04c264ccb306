package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hospital_feedback/internal/auth"
	"github.com/hospital_feedback/internal/handlers"
	"github.com/hospital_feedback/internal/repositories"
	"github.com/hospital_feedback/internal/services"
	"github.com/hospital_feedback/pkg/db"
)

// SetupFeedbackRoutes đăng ký các route phản ánh.
// Gửi phản ánh và tra danh sách khoa là công khai; tiếp nhận, phản hồi
// và gợi ý trả lời yêu cầu JWT của quản trị viên.
func SetupFeedbackRoutes(router *gin.RouterGroup) {
	feedbackRepo := repositories.NewGormFeedbackRepository(db.GetDB())
	feedbackService := services.NewFeedbackService(feedbackRepo)
	suggestionService := services.NewGeminiSuggestionService()
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, suggestionService)

	apiV1 := router.Group("/v1")
	{
		// Route công khai cho người dân
		apiV1.POST("/feedbacks", feedbackHandler.SubmitFeedback)
		apiV1.GET("/departments", feedbackHandler.ListDepartments)

		// Route quản trị, cần JWT
		adminGroup := apiV1.Group("/feedbacks")
		adminGroup.Use(auth.JWTMiddleware())
		{
			adminGroup.GET("", feedbackHandler.ListFeedbacks)
			adminGroup.GET("/:id", feedbackHandler.GetFeedback)
			adminGroup.POST("/:id/reply", feedbackHandler.ReplyFeedback)
			adminGroup.POST("/:id/suggestion", feedbackHandler.SuggestReply)
		}
	}
}
