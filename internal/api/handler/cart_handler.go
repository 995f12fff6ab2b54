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

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Add 加入购物车
// @Summary 加入购物车
// @Tags 购物车
// @Produce json
// @Security BearerAuth
// @Param recipe_id path int true "菜谱ID"
// @Success 201 {object} response.Response{data=dto.PairInfo} "加入成功"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Failure 409 {object} response.ErrorResponse "已在购物车"
// @Router /recipes/{recipe_id}/shopping_cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.cartService.Add(userID, recipeID)
	if err != nil {
		handleCartError(c, err)
		return
	}

	response.Created(c, "加入购物车成功", info)
}

// Remove 移出购物车
// @Summary 移出购物车
// @Tags 购物车
// @Produce json
// @Security BearerAuth
// @Param recipe_id path int true "菜谱ID"
// @Success 200 {object} response.Response "移出成功"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在或不在购物车"
// @Router /recipes/{recipe_id}/shopping_cart [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.cartService.Remove(userID, recipeID); err != nil {
		handleCartError(c, err)
		return
	}

	response.OK(c, "移出购物车成功", nil)
}

func handleCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotInCart):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyInCart):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Cart handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
