package model

// Ingredient 食材模型，(名称, 计量单位) 全局唯一，作为只读参考数据
type Ingredient struct {
	ID              int64  `gorm:"primaryKey;autoIncrement;comment:食材标识" json:"id"`
	Name            string `gorm:"size:200;not null;uniqueIndex:uq_ingredient_name_unit,priority:1;index:idx_ingredients_name;comment:食材名称" json:"name"`
	MeasurementUnit string `gorm:"size:50;not null;uniqueIndex:uq_ingredient_name_unit,priority:2;comment:计量单位" json:"measurement_unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
