package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hospital_feedback/configs"
	"github.com/hospital_feedback/internal/auth"
	"github.com/hospital_feedback/internal/models"
	"github.com/hospital_feedback/pkg/db"
	"github.com/hospital_feedback/pkg/utils"
)

// Thông điệp 401 dùng chung cho cả sai tên đăng nhập lẫn sai mật khẩu,
// không để lộ tài khoản nào tồn tại.
const invalidCredentialsMessage = "Tên đăng nhập hoặc mật khẩu không đúng"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login godoc
// @Summary Đăng nhập quản trị
// @Description Kiểm tra thông tin đăng nhập của quản trị viên và trả về JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "Thông tin đăng nhập"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse} "Đăng nhập thành công, trả về Token và thông tin người dùng"
// @Failure 400 {object} utils.APIErrorResponse "Dữ liệu gửi lên không hợp lệ"
// @Failure 401 {object} utils.APIErrorResponse "Tên đăng nhập hoặc mật khẩu không đúng"
// @Failure 500 {object} utils.APIErrorResponse "Không tạo được Token"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	var user models.User
	if err := db.GetDB().Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.RespondUnauthorizedError(c, invalidCredentialsMessage)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondUnauthorizedError(c, invalidCredentialsMessage)
		return
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &auth.Claims{
		UserID:   uint(user.ID),
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "hospital_feedback",
			Audience:  jwt.ClaimStrings{"admin"},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(configs.AppConfig.JWTSecret))
	if err != nil {
		utils.RespondInternalServerError(c, "Không tạo được Token", err.Error())
		return
	}

	loginResp := LoginResponse{
		Token: tokenString,
		User: UserInfo{
			Username: user.Username,
			Role:     user.Role,
		},
	}
	utils.RespondSuccess(c, http.StatusOK, loginResp, "Đăng nhập thành công")
}

// LogoutHandler godoc
// @Summary Đăng xuất
// @Description Đăng xuất quản trị viên hiện tại bằng cách vô hiệu hóa token đang dùng.
// @Tags auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Success 200 {object} utils.SuccessResponse "Đăng xuất thành công"
// @Failure 400 {object} utils.APIErrorResponse "Thiếu JTI hoặc EXP trong ngữ cảnh request"
// @Router /auth/logout [post]
func LogoutHandler(c *gin.Context) {
	jtiVal, jtiExists := c.Get("jti")
	expVal, expExists := c.Get("exp")

	if !jtiExists || !expExists {
		utils.RespondAPIError(c, http.StatusBadRequest, "Lỗi ngữ cảnh đăng xuất: thiếu JTI hoặc EXP", nil)
		return
	}

	jti, okJTI := jtiVal.(string)
	exp, okEXP := expVal.(time.Time)

	if !okJTI || jti == "" {
		utils.RespondAPIError(c, http.StatusBadRequest, "Lỗi ngữ cảnh đăng xuất: JTI không hợp lệ", nil)
		return
	}
	if !okEXP {
		utils.RespondAPIError(c, http.StatusBadRequest, "Lỗi ngữ cảnh đăng xuất: EXP không hợp lệ", nil)
		return
	}

	auth.AddToDenylist(jti, exp)
	utils.RespondSuccess(c, http.StatusOK, nil, "Đăng xuất thành công")
}
