package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juliasydor/despesas-pessoais/internal/api/response"
	"github.com/juliasydor/despesas-pessoais/internal/service"
)

// AuthController 处理用户认证
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ==========================================
// Handlers
// ==========================================

// SignUp 用户注册
// @Summary 用户注册
// @Description 创建新用户，密码加密存储，成功后直接返回 Token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "注册参数"
// @Success 200 {object} controller.TokenResponse
// @Failure 400 {object} response.ErrorBody "参数错误"
// @Failure 401 {object} response.ErrorBody "邮箱已被注册"
// @Router /auth/sign-up [post]
func (ctrl *AuthController) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	accessToken, err := ctrl.authService.SignUp(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		// 注意：重复邮箱按约定返回 401 而不是 409
		if errors.Is(err, service.ErrEmailTaken) {
			slog.Warn("sign-up rejected", "email", req.Email)
			response.Error(c, http.StatusUnauthorized, "email already exists")
			return
		}
		slog.Error("sign-up failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "sign up failed")
		return
	}

	slog.Info("user signed up", "email", req.Email)
	c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken})
}

// SignIn 用户登录
// @Summary 用户登录
// @Description 校验账号密码，颁发 JWT Token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "登录参数"
// @Success 200 {object} controller.TokenResponse
// @Failure 401 {object} response.ErrorBody "账号或密码错误"
// @Router /auth/sign-in [post]
func (ctrl *AuthController) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	accessToken, err := ctrl.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 为了防止暴力破解，提示信息模糊化
			slog.Warn("sign-in failed", "email", req.Email)
			response.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("sign-in failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "sign in failed")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken})
}
