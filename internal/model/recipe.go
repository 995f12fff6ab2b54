package model

import "time"

// Recipe 菜谱模型
type Recipe struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:菜谱标识" json:"id"`
	AuthorID    int64     `gorm:"not null;index:idx_recipes_author_id;comment:作者ID" json:"author_id"`
	Name        string    `gorm:"size:200;not null;comment:菜谱名称" json:"name"`
	Image       string    `gorm:"size:500;not null;comment:成品图片地址" json:"image"`
	Text        string    `gorm:"type:text;not null;comment:制作说明" json:"text"`
	CookingTime int       `gorm:"not null;comment:烹饪时间（分钟）" json:"cooking_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_recipes_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系，菜谱独占其食材关联行，删除菜谱时级联删除
	Author      User               `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Favorites   []Favorite         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	CartItems   []CartItem         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"cart_items,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}
