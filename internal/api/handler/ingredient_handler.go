package handler

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
}

func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// List 食材目录
// @Summary 食材目录
// @Description 返回全部食材，可按名称前缀过滤（不区分大小写），不分页
// @Tags 食材
// @Produce json
// @Param name query string false "名称前缀"
// @Success 200 {object} response.Response{data=[]dto.IngredientInfo} "获取成功"
// @Router /ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	items, err := h.ingredientService.List(c.Query("name"))
	if err != nil {
		handleIngredientError(c, err)
		return
	}

	response.OK(c, "获取成功", items)
}

// Get 获取单个食材
// @Summary 获取食材
// @Tags 食材
// @Produce json
// @Param ingredient_id path int true "食材ID"
// @Success 200 {object} response.Response{data=dto.IngredientInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "食材不存在"
// @Router /ingredients/{ingredient_id} [get]
func (h *IngredientHandler) Get(c *gin.Context) {
	ingredientID, ok := parseIDParam(c, "ingredient_id")
	if !ok {
		response.BadRequest(c, "无效的食材ID")
		return
	}

	info, err := h.ingredientService.GetByID(ingredientID)
	if err != nil {
		handleIngredientError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// Create 创建食材（管理员）
// @Summary 创建食材
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IngredientCreateRequest true "食材信息"
// @Success 201 {object} response.Response{data=dto.IngredientInfo} "创建成功"
// @Failure 409 {object} response.ErrorResponse "食材已存在"
// @Router /admin/ingredients [post]
func (h *IngredientHandler) Create(c *gin.Context) {
	var req dto.IngredientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.ingredientService.Create(&req)
	if err != nil {
		handleIngredientError(c, err)
		return
	}

	response.Created(c, "创建成功", info)
}

// Update 更新食材（管理员）
// @Summary 更新食材
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ingredient_id path int true "食材ID"
// @Param request body dto.IngredientUpdateRequest true "更新字段"
// @Success 200 {object} response.Response{data=dto.IngredientInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "食材不存在"
// @Router /admin/ingredients/{ingredient_id} [put]
func (h *IngredientHandler) Update(c *gin.Context) {
	ingredientID, ok := parseIDParam(c, "ingredient_id")
	if !ok {
		response.BadRequest(c, "无效的食材ID")
		return
	}

	var req dto.IngredientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.ingredientService.Update(ingredientID, &req)
	if err != nil {
		handleIngredientError(c, err)
		return
	}

	response.OK(c, "更新成功", info)
}

// BulkLoad 批量导入食材（管理员）
// @Summary 批量导入食材
// @Description 批量导入食材目录，已存在的 (名称, 计量单位) 静默跳过
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []dto.IngredientCreateRequest true "食材列表"
// @Success 200 {object} response.Response "导入成功"
// @Router /admin/ingredients/bulk [post]
func (h *IngredientHandler) BulkLoad(c *gin.Context) {
	var items []dto.IngredientCreateRequest
	if err := c.ShouldBindJSON(&items); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	inserted, err := h.ingredientService.BulkLoad(items)
	if err != nil {
		handleIngredientError(c, err)
		return
	}

	response.OK(c, "导入成功", gin.H{
		"submitted": len(items),
		"inserted":  inserted,
	})
}

func handleIngredientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIngredientNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrIngredientExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Ingredient handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
