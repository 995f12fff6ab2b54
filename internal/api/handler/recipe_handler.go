package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/imagestore"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	recipeService       *service.RecipeService
	shoppingListService *service.ShoppingListService
}

func NewRecipeHandler(recipeService *service.RecipeService, shoppingListService *service.ShoppingListService) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		shoppingListService: shoppingListService,
	}
}

// Create 创建菜谱
// @Summary 创建菜谱
// @Description 创建菜谱，图片为 base64 编码，食材集合不能为空且不能重复
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecipeCreateRequest true "菜谱信息"
// @Success 201 {object} response.Response{data=dto.RecipeInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "参数或食材集合错误"
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.recipeService.Create(userID, &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Created(c, "创建成功", info)
}

// List 菜谱列表
// @Summary 菜谱列表
// @Description 分页查询菜谱，可按作者、是否已收藏、是否在购物车筛选
// @Tags 菜谱
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Param author query int false "作者ID"
// @Param is_favorited query int false "仅已收藏（需登录）"
// @Param is_in_shopping_cart query int false "仅购物车内（需登录）"
// @Success 200 {object} response.Response{data=dto.RecipeListData} "获取成功"
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	var authorID *int64
	if v := c.Query("author"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "无效的作者ID")
			return
		}
		authorID = &id
	}

	favoritedOnly := c.Query("is_favorited") == "1"
	inCartOnly := c.Query("is_in_shopping_cart") == "1"

	var viewerID *int64
	if id, ok := middleware.GetCurrentUserID(c); ok {
		viewerID = &id
	}

	data, err := h.recipeService.List(page, limit, authorID, favoritedOnly, inCartOnly, viewerID)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// Get 菜谱详情
// @Summary 菜谱详情
// @Tags 菜谱
// @Produce json
// @Param recipe_id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.RecipeInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{recipe_id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	var viewerID *int64
	if id, ok := middleware.GetCurrentUserID(c); ok {
		viewerID = &id
	}

	info, err := h.recipeService.GetDetail(recipeID, viewerID)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// Update 更新菜谱
// @Summary 更新菜谱
// @Description 更新菜谱（仅作者本人），提交食材集合时整体替换
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe_id path int true "菜谱ID"
// @Param request body dto.RecipeUpdateRequest true "更新字段"
// @Success 200 {object} response.Response{data=dto.RecipeInfo} "更新成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{recipe_id} [patch]
func (h *RecipeHandler) Update(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	var req dto.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.recipeService.Update(recipeID, userID, &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "更新成功", info)
}

// Delete 删除菜谱
// @Summary 删除菜谱
// @Tags 菜谱
// @Produce json
// @Security BearerAuth
// @Param recipe_id path int true "菜谱ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{recipe_id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.recipeService.Delete(recipeID, userID); err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "删除成功", nil)
}

// DownloadShoppingList 下载购物清单
// @Summary 下载购物清单
// @Description 汇总购物车内全部菜谱的食材（同名同单位求和）并以文本附件返回
// @Tags 购物车
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "购物清单文本"
// @Router /recipes/download_shopping_cart [get]
func (h *RecipeHandler) DownloadShoppingList(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	text, err := h.shoppingListService.BuildShoppingList(userID)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="Shopping_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// ShortLink 菜谱短链接跳转
// @Summary 菜谱短链接
// @Description 跳转到菜谱详情页
// @Tags 菜谱
// @Param recipe_id path int true "菜谱ID"
// @Success 302 {string} string "重定向"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /s/{recipe_id} [get]
func (h *RecipeHandler) ShortLink(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	if err := h.recipeService.Exists(recipeID); err != nil {
		handleRecipeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/recipes/%d", recipeID))
}

func handleRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrRecipeNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNoIngredients),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrDuplicateIngredient),
		errors.Is(err, service.ErrUnknownIngredient),
		errors.Is(err, service.ErrNoFieldsToUpdate),
		errors.Is(err, imagestore.ErrEmptyImage),
		errors.Is(err, imagestore.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Recipe handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
