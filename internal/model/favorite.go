package model

import "time"

// Favorite 收藏模型，(用户, 菜谱) 唯一
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_recipe_favorite;index:idx_favorites_user_id;comment:收藏用户ID" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:uq_user_recipe_favorite;index:idx_favorites_recipe_id;comment:被收藏菜谱ID" json:"recipe_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
