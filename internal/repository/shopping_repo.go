package repository

import (
	"gorm.io/gorm"
)

// CartIngredientRow 购物车食材展开行：一行对应一个 (菜谱, 食材) 关联
// 汇总（按名称+单位分组求和）在服务层的内存折叠中完成
type CartIngredientRow struct {
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Amount          int    `gorm:"column:amount"`
}

type ShoppingRepository struct {
	db *gorm.DB
}

func NewShoppingRepository(db *gorm.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

// CartIngredientRows 一次联表取出用户购物车内全部菜谱的食材行
func (r *ShoppingRepository) CartIngredientRows(userID int64) ([]CartIngredientRow, error) {
	var rows []CartIngredientRow
	err := r.db.Raw(`
		SELECT i.name, i.measurement_unit, ri.amount
		FROM cart_items ci
		INNER JOIN recipe_ingredients ri ON ri.recipe_id = ci.recipe_id
		INNER JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ci.user_id = ?
	`, userID).Scan(&rows).Error
	return rows, err
}

// CartRecipeNames 用户购物车内的菜谱名称，按加入购物车的顺序
func (r *ShoppingRepository) CartRecipeNames(userID int64) ([]string, error) {
	var names []string
	err := r.db.Raw(`
		SELECT rcp.name
		FROM cart_items ci
		INNER JOIN recipes rcp ON rcp.id = ci.recipe_id
		WHERE ci.user_id = ?
		ORDER BY ci.id
	`, userID).Scan(&names).Error
	return names, err
}
