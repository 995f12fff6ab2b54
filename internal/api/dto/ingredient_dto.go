package dto

// IngredientInfo 食材信息
type IngredientInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// IngredientCreateRequest 创建食材请求（管理员）
type IngredientCreateRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" binding:"required,max=50"`
}

// IngredientUpdateRequest 更新食材请求（管理员）
type IngredientUpdateRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=200"`
	MeasurementUnit *string `json:"measurement_unit" binding:"omitempty,max=50"`
}
