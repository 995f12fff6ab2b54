package handler

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register 用户注册
// @Summary 用户注册
// @Description 使用邮箱、用户名和密码注册新用户
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} response.Response "注册成功"
// @Failure 400 {object} response.ErrorResponse "参数错误"
// @Failure 409 {object} response.ErrorResponse "邮箱或用户名已存在"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.authService.Register(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, "注册成功", info)
}

// Login 用户登录
// @Summary 用户登录
// @Description 使用邮箱和密码登录，返回 JWT Token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 401 {object} response.ErrorResponse "邮箱或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "登录成功", data)
}

// Me 获取当前登录用户信息
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未认证"
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrUsernameExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredential):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Auth handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
