package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// GetByID 根据 ID 获取菜谱（含作者和食材关联）
func (r *RecipeRepository) GetByID(id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.Preload("Author").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Exists 检查菜谱是否存在
func (r *RecipeRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Recipe{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetByIDAndAuthor 根据菜谱 ID + 作者 ID 查询（权限校验用）
func (r *RecipeRepository) GetByIDAndAuthor(recipeID, authorID int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.Where("id = ? AND author_id = ?", recipeID, authorID).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateWithIngredients 创建菜谱并安装其食材关联集，整体在一个事务内
func (r *RecipeRepository) CreateWithIngredients(recipe *model.Recipe, links []model.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range links {
			links[i].RecipeID = recipe.ID
		}
		return tx.Create(&links).Error
	})
}

// UpdateWithIngredients 更新菜谱字段并整体替换其食材关联集
// links 非 nil 时丢弃旧关联行、安装新集合，与字段更新同一事务，不存在部分生效
func (r *RecipeRepository) UpdateWithIngredients(id int64, updates map[string]interface{}, links []model.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Model(&model.Recipe{}).Where("id = ?", id).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if links != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredient{}).Error; err != nil {
				return err
			}
			for i := range links {
				links[i].RecipeID = id
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete 删除菜谱，食材关联/收藏/购物车条目经外键级联一并删除
func (r *RecipeRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&model.Recipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRecipes 分页查询菜谱（含作者），可选按作者/收藏者/购物车归属筛选，search 为名称模糊匹配
func (r *RecipeRepository) ListRecipes(skip, limit int, authorID, favoritedBy, inCartOf *int64, search *string) ([]model.Recipe, int64, error) {
	query := r.db.Model(&model.Recipe{})

	if authorID != nil {
		query = query.Where("recipes.author_id = ?", *authorID)
	}
	if search != nil && *search != "" {
		query = query.Where("recipes.name ILIKE ?", "%"+*search+"%")
	}
	if favoritedBy != nil {
		query = query.Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", *favoritedBy)
	}
	if inCartOf != nil {
		query = query.Joins("JOIN cart_items ON cart_items.recipe_id = recipes.id").
			Where("cart_items.user_id = ?", *inCartOf)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := query.Preload("Author").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC").
		Offset(skip).Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// GetByIDsWithAuthor 批量查询菜谱（含作者，搜索结果回表用）
func (r *RecipeRepository) GetByIDsWithAuthor(ids []int64) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []model.Recipe
	err := r.db.Preload("Author").Where("id IN ?", ids).Find(&recipes).Error
	return recipes, err
}

// ListAllWithAuthor 全量查询菜谱（含作者，ES 批量同步用）
func (r *RecipeRepository) ListAllWithAuthor(skip, limit int) ([]model.Recipe, int64, error) {
	var total int64
	if err := r.db.Model(&model.Recipe{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := r.db.Preload("Author").Order("id").Offset(skip).Limit(limit).Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}
