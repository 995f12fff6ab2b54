package dto

import "time"

// IngredientAmount 菜谱提交中的一条 (食材, 用量)
// 用量与重复性校验在服务层完成，以便返回指明具体规则的错误
type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// RecipeCreateRequest 创建菜谱请求，图片为 base64 编码
type RecipeCreateRequest struct {
	Name        string             `json:"name" binding:"required,max=200"`
	Image       string             `json:"image" binding:"required"`
	Text        string             `json:"text" binding:"required"`
	CookingTime int                `json:"cooking_time" binding:"required,min=1"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// RecipeUpdateRequest 更新菜谱请求，nil 字段保持不变
// Ingredients 非 nil 时整体替换原食材集
type RecipeUpdateRequest struct {
	Name        *string            `json:"name" binding:"omitempty,max=200"`
	Image       *string            `json:"image"`
	Text        *string            `json:"text"`
	CookingTime *int               `json:"cooking_time" binding:"omitempty,min=1"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// AuthorBrief 菜谱作者简要信息
type AuthorBrief struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Avatar    *string `json:"avatar"`
}

// RecipeIngredientInfo 菜谱中的一条食材及用量
type RecipeIngredientInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeInfo 菜谱信息
type RecipeInfo struct {
	ID               int64                  `json:"id"`
	Author           *AuthorBrief           `json:"author,omitempty"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
	Ingredients      []RecipeIngredientInfo `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	CreatedAt        time.Time              `json:"created_at"`
}

// RecipeListData 菜谱列表数据
type RecipeListData struct {
	Recipes    []RecipeInfo `json:"recipes"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int64        `json:"total_pages"`
}
