package handler

import (
	"errors"

	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Subscribe 订阅用户
// @Summary 订阅用户
// @Description 订阅指定用户，不能订阅自己，重复订阅返回冲突
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "目标用户ID"
// @Success 201 {object} response.Response{data=dto.UserInfo} "订阅成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Failure 409 {object} response.ErrorResponse "不能订阅自己或已订阅"
// @Router /users/{user_id}/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.subscriptionService.Subscribe(userID, targetID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.Created(c, "订阅成功", info)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "目标用户ID"
// @Success 200 {object} response.Response "取消订阅成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在或尚未订阅"
// @Failure 409 {object} response.ErrorResponse "不能取消订阅自己"
// @Router /users/{user_id}/subscribe [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.subscriptionService.Unsubscribe(userID, targetID); err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "取消订阅成功", nil)
}

// List 订阅列表
// @Summary 订阅列表
// @Description 当前用户订阅的全部用户，按订阅先后排序
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.SubscriptionListData} "获取成功"
// @Router /users/subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	userID, _ := middleware.GetCurrentUserID(c)

	data, err := h.subscriptionService.GetSubscriptions(userID, page, limit)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotSubscribed):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSelfSubscription),
		errors.Is(err, service.ErrAlreadySubscribed):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Subscription handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
