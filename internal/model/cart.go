package model

import "time"

// CartItem 购物车条目模型，(用户, 菜谱) 唯一，标记菜谱待生成购物清单
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:购物车条目ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_recipe_cart;index:idx_cart_items_user_id;comment:用户ID" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:uq_user_recipe_cart;index:idx_cart_items_recipe_id;comment:菜谱ID" json:"recipe_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:加入时间" json:"created_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
