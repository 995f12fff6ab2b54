package dto

// SearchRecipeRequest 菜谱搜索请求
type SearchRecipeRequest struct {
	Q        string `form:"q"`
	AuthorID *int64 `form:"author_id"`
	Sort     string `form:"sort"` // relevance（默认）/ time
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// SearchRecipeInfo 搜索结果中的菜谱信息
type SearchRecipeInfo struct {
	ID          int64               `json:"id"`
	AuthorID    int64               `json:"author_id"`
	AuthorName  string              `json:"author_name"`
	Name        string              `json:"name"`
	Text        string              `json:"text"`
	Image       string              `json:"image"`
	CookingTime int                 `json:"cooking_time"`
	Highlight   map[string][]string `json:"highlight,omitempty"`
}

// SearchRecipeData 菜谱搜索结果数据
type SearchRecipeData struct {
	Recipes    []SearchRecipeInfo `json:"recipes"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int64              `json:"total_pages"`
}
