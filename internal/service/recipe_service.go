package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/config"
	"foodgram-go/internal/imagestore"
	infraKafka "foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/model"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound      = errors.New("菜谱不存在")
	ErrRecipeNoPermission  = errors.New("没有权限操作该菜谱")
	ErrNoFieldsToUpdate    = errors.New("没有需要更新的字段")
	ErrNoIngredients       = errors.New("菜谱至少需要一种食材")
	ErrInvalidAmount       = errors.New("食材用量必须为正整数")
	ErrDuplicateIngredient = errors.New("菜谱中存在重复的食材")
	ErrUnknownIngredient   = errors.New("引用了不存在的食材")
)

type RecipeService struct {
	recipeRepo     recipeStore
	ingredientRepo ingredientCatalog
	favoriteRepo   pairStore[model.Favorite]
	cartRepo       pairStore[model.CartItem]

	uploadImage func(ctx context.Context, bucket, objectPrefix, encoded string) (string, error)
	removeImage func(ctx context.Context, bucket, imageURL string) error
}

func NewRecipeService(
	recipeRepo recipeStore,
	ingredientRepo ingredientCatalog,
	favoriteRepo pairStore[model.Favorite],
	cartRepo pairStore[model.CartItem],
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		favoriteRepo:   favoriteRepo,
		cartRepo:       cartRepo,
		uploadImage:    imagestore.Upload,
		removeImage:    imagestore.Remove,
	}
}

// validateIngredientLinks 校验提交的 (食材, 用量) 集合并装配关联行
// known 为目录中实际存在的食材 ID 集合；重复性按解析后的食材 ID 判定
func validateIngredientLinks(items []dto.IngredientAmount, known map[int64]bool) ([]model.RecipeIngredient, error) {
	if len(items) == 0 {
		return nil, ErrNoIngredients
	}

	seen := make(map[int64]bool, len(items))
	links := make([]model.RecipeIngredient, 0, len(items))

	for _, item := range items {
		if item.Amount < 1 {
			return nil, ErrInvalidAmount
		}
		if !known[item.ID] {
			return nil, ErrUnknownIngredient
		}
		if seen[item.ID] {
			return nil, ErrDuplicateIngredient
		}
		seen[item.ID] = true

		links = append(links, model.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}

	return links, nil
}

// resolveIngredientLinks 按目录解析提交的食材集合
func (s *RecipeService) resolveIngredientLinks(items []dto.IngredientAmount) ([]model.RecipeIngredient, error) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	known := make(map[int64]bool, len(ingredients))
	for _, ing := range ingredients {
		known[ing.ID] = true
	}

	return validateIngredientLinks(items, known)
}

// Create 创建菜谱：校验食材集合、上传 base64 图片、事务内落库、投递索引事件
func (s *RecipeService) Create(authorID int64, req *dto.RecipeCreateRequest) (*dto.RecipeInfo, error) {
	links, err := s.resolveIngredientLinks(req.Ingredients)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objectPrefix := fmt.Sprintf("%d/recipe", authorID)
	imageURL, err := s.uploadImage(ctx, imagestore.RecipeImageBucket, objectPrefix, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       imageURL,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if err := s.recipeRepo.CreateWithIngredients(recipe, links); err != nil {
		logger.Error("Create recipe failed, removing uploaded image",
			zap.Int64("author_id", authorID), zap.Error(err))
		_ = s.removeImage(ctx, imagestore.RecipeImageBucket, imageURL)
		return nil, err
	}

	s.publishIndexEvent(recipe.ID, infraKafka.RecipeActionIndex)

	return s.GetDetail(recipe.ID, &authorID)
}

// Update 更新菜谱（仅作者本人），Ingredients 非 nil 时整体替换原食材集
func (s *RecipeService) Update(recipeID, currentUserID int64, req *dto.RecipeUpdateRequest) (*dto.RecipeInfo, error) {
	if err := s.checkOwnership(recipeID, currentUserID); err != nil {
		return nil, err
	}

	var links []model.RecipeIngredient
	if req.Ingredients != nil {
		var err error
		links, err = s.resolveIngredientLinks(req.Ingredients)
		if err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}
	var newImageURL string
	if req.Image != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		objectPrefix := fmt.Sprintf("%d/recipe", currentUserID)
		imageURL, err := s.uploadImage(ctx, imagestore.RecipeImageBucket, objectPrefix, *req.Image)
		if err != nil {
			return nil, err
		}
		newImageURL = imageURL
		updates["image"] = imageURL
	}

	if len(updates) == 0 && links == nil {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.recipeRepo.UpdateWithIngredients(recipeID, updates, links); err != nil {
		if newImageURL != "" {
			logger.Error("Update recipe failed, removing uploaded image",
				zap.Int64("recipe_id", recipeID), zap.Error(err))
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			_ = s.removeImage(cleanupCtx, imagestore.RecipeImageBucket, newImageURL)
			cancel()
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	s.publishIndexEvent(recipeID, infraKafka.RecipeActionIndex)

	return s.GetDetail(recipeID, &currentUserID)
}

// Delete 删除菜谱（仅作者本人），关联行经外键级联一并删除
func (s *RecipeService) Delete(recipeID, currentUserID int64) error {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}

	recipe, err := s.recipeRepo.GetByIDAndAuthor(recipeID, currentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNoPermission
		}
		return err
	}

	if err := s.recipeRepo.Delete(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	s.publishIndexEvent(recipeID, infraKafka.RecipeActionDelete)

	// 图片对象清理失败不影响删除结果
	if recipe.Image != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.removeImage(ctx, imagestore.RecipeImageBucket, recipe.Image); err != nil {
			logger.Warn("Remove recipe image failed", zap.Int64("recipe_id", recipeID), zap.Error(err))
		}
	}

	return nil
}

// GetDetail 获取菜谱详情，viewerID 非 nil 时附带收藏/购物车标记
func (s *RecipeService) GetDetail(recipeID int64, viewerID *int64) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	isFavorited, isInCart := false, false
	if viewerID != nil {
		if isFavorited, err = s.favoriteRepo.Exists(*viewerID, recipeID); err != nil {
			return nil, err
		}
		if isInCart, err = s.cartRepo.Exists(*viewerID, recipeID); err != nil {
			return nil, err
		}
	}

	return toRecipeInfo(recipe, isFavorited, isInCart), nil
}

// Exists 检查菜谱是否存在（短链接跳转用）
func (s *RecipeService) Exists(recipeID int64) error {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}
	return nil
}

// List 分页查询菜谱，可按作者/收藏/购物车筛选
// favorited/inCart 筛选需要登录态，viewerID 为 nil 时忽略这两个筛选
func (s *RecipeService) List(page, limit int, authorID *int64, favoritedOnly, inCartOnly bool, viewerID *int64) (*dto.RecipeListData, error) {
	var favoritedBy, inCartOf *int64
	if viewerID != nil {
		if favoritedOnly {
			favoritedBy = viewerID
		}
		if inCartOnly {
			inCartOf = viewerID
		}
	}

	skip := (page - 1) * limit
	recipes, total, err := s.recipeRepo.ListRecipes(skip, limit, authorID, favoritedBy, inCartOf, nil)
	if err != nil {
		return nil, err
	}

	favoritedSet := map[int64]bool{}
	cartSet := map[int64]bool{}
	if viewerID != nil && len(recipes) > 0 {
		ids := make([]int64, 0, len(recipes))
		for i := range recipes {
			ids = append(ids, recipes[i].ID)
		}
		if favoritedSet, err = s.favoriteRepo.BatchCheck(*viewerID, ids); err != nil {
			return nil, err
		}
		if cartSet, err = s.cartRepo.BatchCheck(*viewerID, ids); err != nil {
			return nil, err
		}
	}

	items := make([]dto.RecipeInfo, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		items = append(items, *toRecipeInfo(r, favoritedSet[r.ID], cartSet[r.ID]))
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &dto.RecipeListData{
		Recipes:    items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// checkOwnership 校验菜谱归属：菜谱不存在返回 ErrRecipeNotFound，非作者返回 ErrRecipeNoPermission
func (s *RecipeService) checkOwnership(recipeID, currentUserID int64) error {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}

	if _, err := s.recipeRepo.GetByIDAndAuthor(recipeID, currentUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNoPermission
		}
		return err
	}
	return nil
}

// publishIndexEvent 投递菜谱索引事件，失败只记日志不影响主流程
func (s *RecipeService) publishIndexEvent(recipeID int64, action string) {
	topic := config.GetKafka().Topics["recipe_index"]
	if topic == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := &infraKafka.RecipeIndexEvent{RecipeID: recipeID, Action: action}
	if err := infraKafka.SendRecipeIndexEvent(ctx, topic, event); err != nil {
		logger.Error("Send recipe index event failed",
			zap.Int64("recipe_id", recipeID), zap.String("action", action), zap.Error(err))
	}
}

// toRecipeInfo 将 model.Recipe 转换为 dto.RecipeInfo
func toRecipeInfo(recipe *model.Recipe, isFavorited, isInCart bool) *dto.RecipeInfo {
	ingredients := make([]dto.RecipeIngredientInfo, 0, len(recipe.Ingredients))
	for _, link := range recipe.Ingredients {
		ingredients = append(ingredients, dto.RecipeIngredientInfo{
			ID:              link.IngredientID,
			Name:            link.Ingredient.Name,
			MeasurementUnit: link.Ingredient.MeasurementUnit,
			Amount:          link.Amount,
		})
	}

	info := &dto.RecipeInfo{
		ID:               recipe.ID,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		CreatedAt:        recipe.CreatedAt,
	}

	if recipe.Author.ID != 0 {
		info.Author = &dto.AuthorBrief{
			ID:        recipe.Author.ID,
			Username:  recipe.Author.UserName,
			FirstName: recipe.Author.FirstName,
			LastName:  recipe.Author.LastName,
			Avatar:    recipe.Author.Avatar,
		}
	}

	return info
}
