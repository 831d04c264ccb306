package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/hospital_feedback/configs"
	"github.com/hospital_feedback/internal/routes"
	"github.com/hospital_feedback/pkg/db"
)

// @title Hệ thống Phản ánh Bệnh viện Đa khoa Ninh Thuận API
// @version 1.0
// @description API tiếp nhận phản ánh của người dân và quy trình phản hồi của quản trị viên.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Nạp cấu hình trước, khởi tạo CSDL cần tới tài khoản quản trị trong cấu hình
	configs.LoadConfig()

	db.InitDB()
	defer db.CloseDB() // Đảm bảo đóng kết nối khi main thoát

	router := gin.Default()

	// Đăng ký toàn bộ route của API
	routes.SetupRoutes(router)

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
