package handler

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/imagestore"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile 获取用户资料
// @Summary 获取用户资料
// @Description 获取指定用户的公开资料，登录后附带是否已订阅
// @Tags 用户
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{user_id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	var viewerID *int64
	if id, ok := middleware.GetCurrentUserID(c); ok {
		viewerID = &id
	}

	info, err := h.userService.GetProfile(userID, viewerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// SetAvatar 设置当前用户头像
// @Summary 设置头像
// @Description 上传 base64 编码的头像图片
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AvatarUpdateRequest true "头像数据"
// @Success 200 {object} response.Response{data=dto.UserInfo} "设置成功"
// @Failure 400 {object} response.ErrorResponse "无效的图片数据"
// @Router /users/me/avatar [put]
func (h *UserHandler) SetAvatar(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.AvatarUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.userService.SetAvatar(userID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "头像设置成功", info)
}

// DeleteAvatar 删除当前用户头像
// @Summary 删除头像
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "删除成功"
// @Failure 400 {object} response.ErrorResponse "未设置头像"
// @Router /users/me/avatar [delete]
func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.userService.DeleteAvatar(userID); err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "头像删除成功", nil)
}

// ListUsers 用户列表（管理员）
// @Summary 用户列表
// @Description 带筛选条件的用户分页列表，仅管理员可用
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Param username query string false "用户名模糊匹配"
// @Param user_role query string false "角色筛选"
// @Success 200 {object} response.Response{data=dto.UserListData} "获取成功"
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	var username, userRole *string
	if v := c.Query("username"); v != "" {
		username = &v
	}
	if v := c.Query("user_role"); v != "" {
		userRole = &v
	}

	data, err := h.userService.ListUsers(page, limit, username, userRole)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// DeleteUser 删除用户（管理员）
// @Summary 删除用户
// @Description 删除指定用户及其全部菜谱和关系，仅管理员可用
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "用户ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /admin/users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.userService.DeleteUser(userID); err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "用户删除成功", nil)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNoAvatar),
		errors.Is(err, imagestore.ErrEmptyImage),
		errors.Is(err, imagestore.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("User handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
