package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hospital_feedback/docs" // tài liệu swagger sinh bởi swag
)

// SetupRoutes khởi tạo toàn bộ route của ứng dụng
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	SetupAuthRoutes(api)     // route xác thực quản trị viên
	SetupFeedbackRoutes(api) // route phản ánh (công khai và quản trị)

	// Swagger UI tại /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
