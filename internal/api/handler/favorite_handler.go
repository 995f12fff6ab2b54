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

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add 收藏菜谱
// @Summary 收藏菜谱
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param recipe_id path int true "菜谱ID"
// @Success 201 {object} response.Response{data=dto.PairInfo} "收藏成功"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Failure 409 {object} response.ErrorResponse "已收藏"
// @Router /recipes/{recipe_id}/favorite [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.favoriteService.Add(userID, recipeID)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.Created(c, "收藏成功", info)
}

// Remove 取消收藏
// @Summary 取消收藏
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param recipe_id path int true "菜谱ID"
// @Success 200 {object} response.Response "取消收藏成功"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在或尚未收藏"
// @Router /recipes/{recipe_id}/favorite [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.favoriteService.Remove(userID, recipeID); err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.OK(c, "取消收藏成功", nil)
}

func handleFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotFavorited):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyFavorited):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Favorite handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
