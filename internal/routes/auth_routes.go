package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hospital_feedback/internal/auth"
	"github.com/hospital_feedback/internal/handlers"
)

// SetupAuthRoutes đăng ký các route liên quan tới xác thực
func SetupAuthRoutes(router *gin.RouterGroup) {
	apiV1 := router.Group("/v1")
	{
		// Route xác thực công khai (đăng nhập)
		publicAuthGroup := apiV1.Group("/auth")
		{
			// POST /api/v1/auth/login
			publicAuthGroup.POST("/login", handlers.Login)
		}

		// Route xác thực cần JWT (đăng xuất)
		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware())
		{
			// POST /api/v1/auth/logout
			protectedAuthGroup.POST("/logout", handlers.LogoutHandler)
		}
	}
}
