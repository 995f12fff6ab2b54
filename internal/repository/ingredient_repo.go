package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List 获取全部食材（按名称排序，目录集合不分页）
func (r *IngredientRepository) List() ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	err := r.db.Order("name").Find(&ingredients).Error
	return ingredients, err
}

// GetByID 根据 ID 获取食材
func (r *IngredientRepository) GetByID(id int64) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	err := r.db.Where("id = ?", id).First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs 批量查询食材
func (r *IngredientRepository) GetByIDs(ids []int64) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []model.Ingredient
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// Create 创建食材，(名称, 计量单位) 重复时返回 gorm.ErrDuplicatedKey
func (r *IngredientRepository) Create(ingredient *model.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// Update 更新食材字段
func (r *IngredientRepository) Update(id int64, updates map[string]interface{}) (*model.Ingredient, error) {
	result := r.db.Model(&model.Ingredient{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// BulkCreate 批量导入食材，已存在的 (名称, 计量单位) 跳过
// 返回实际插入的行数
func (r *IngredientRepository) BulkCreate(ingredients []model.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ingredients)
	return result.RowsAffected, result.Error
}
