package service

import "foodgram-go/internal/model"

// 服务层依赖的存储接口，*repository 下的具体仓储即其实现
// 收窄为接口以便在不连数据库的情况下覆盖冲突与缺失路径

// pairStore 配对关系存储（订阅/收藏/购物车），配对已存在时 Create 返回 gorm.ErrDuplicatedKey
type pairStore[T any] interface {
	Exists(actorID, targetID int64) (bool, error)
	Create(actorID, targetID int64) (*T, error)
	Delete(actorID, targetID int64) (bool, error)
	ListTargetIDs(actorID int64, skip, limit int) ([]int64, error)
	CountByActor(actorID int64) (int64, error)
	BatchCheck(actorID int64, targetIDs []int64) (map[int64]bool, error)
}

// recipeStore 菜谱存储
type recipeStore interface {
	GetByID(id int64) (*model.Recipe, error)
	Exists(id int64) (bool, error)
	GetByIDAndAuthor(recipeID, authorID int64) (*model.Recipe, error)
	CreateWithIngredients(recipe *model.Recipe, links []model.RecipeIngredient) error
	UpdateWithIngredients(id int64, updates map[string]interface{}, links []model.RecipeIngredient) error
	Delete(id int64) error
	ListRecipes(skip, limit int, authorID, favoritedBy, inCartOf *int64, search *string) ([]model.Recipe, int64, error)
}

// recipeChecker 菜谱存在性检查，收藏/购物车服务只需要这一个能力
type recipeChecker interface {
	Exists(recipeID int64) (bool, error)
}

// ingredientCatalog 食材目录查询
type ingredientCatalog interface {
	GetByIDs(ids []int64) ([]model.Ingredient, error)
}

// userGetter 用户查询，订阅服务用
type userGetter interface {
	GetByID(id int64) (*model.User, error)
	GetByIDs(ids []int64) ([]model.User, error)
}
