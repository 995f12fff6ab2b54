package model

// RecipeIngredient 菜谱-食材关联模型，携带每对 (菜谱, 食材) 的用量
// 同一菜谱内同一食材至多出现一次
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;comment:关联行标识" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;index:idx_recipe_ingredients_recipe_id;comment:菜谱ID" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;index:idx_recipe_ingredients_ingredient_id;comment:食材ID" json:"ingredient_id"`
	Amount       int   `gorm:"not null;comment:用量" json:"amount"`

	// 关联关系
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
