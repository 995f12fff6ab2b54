package handler

import (
	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search 搜索菜谱
// @Summary 搜索菜谱
// @Description 按关键词全文搜索菜谱（名称权重更高），ES 不可用时降级到数据库模糊匹配
// @Tags 搜索
// @Produce json
// @Param q query string false "搜索关键词"
// @Param author_id query int false "作者ID"
// @Param sort query string false "排序方式 relevance/time"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.SearchRecipeData} "搜索成功"
// @Router /search/recipes [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRecipeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	data, err := h.searchService.SearchRecipes(&req)
	if err != nil {
		logger.Error("Search handler error", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
		return
	}

	response.OK(c, "搜索成功", data)
}

// SyncAll 全量同步菜谱索引（管理员）
// @Summary 全量同步搜索索引
// @Description 将全部菜谱重新同步到搜索索引，仅管理员可用
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "同步完成"
// @Router /admin/search/sync [post]
func (h *SearchHandler) SyncAll(c *gin.Context) {
	success, failed, err := h.searchService.SyncAllRecipesToES()
	if err != nil {
		logger.Error("Sync recipes to ES failed", zap.Error(err))
		response.InternalError(c, "同步失败")
		return
	}

	response.OK(c, "同步完成", gin.H{
		"success": success,
		"failed":  failed,
	})
}
