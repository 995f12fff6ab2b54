package service

import (
	"context"
	"errors"
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestValidateIngredientLinks(t *testing.T) {
	known := map[int64]bool{1: true, 2: true, 3: true}

	t.Run("正常装配", func(t *testing.T) {
		items := []dto.IngredientAmount{
			{ID: 1, Amount: 100},
			{ID: 3, Amount: 2},
		}

		links, err := validateIngredientLinks(items, known)
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, int64(1), links[0].IngredientID)
		assert.Equal(t, 100, links[0].Amount)
		assert.Equal(t, int64(3), links[1].IngredientID)
		assert.Equal(t, 2, links[1].Amount)
	})

	t.Run("空集合", func(t *testing.T) {
		_, err := validateIngredientLinks(nil, known)
		assert.ErrorIs(t, err, ErrNoIngredients)

		_, err = validateIngredientLinks([]dto.IngredientAmount{}, known)
		assert.ErrorIs(t, err, ErrNoIngredients)
	})

	t.Run("用量为零", func(t *testing.T) {
		items := []dto.IngredientAmount{{ID: 1, Amount: 0}}
		_, err := validateIngredientLinks(items, known)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("用量为负", func(t *testing.T) {
		items := []dto.IngredientAmount{{ID: 1, Amount: -5}}
		_, err := validateIngredientLinks(items, known)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("引用不存在的食材", func(t *testing.T) {
		items := []dto.IngredientAmount{{ID: 99, Amount: 10}}
		_, err := validateIngredientLinks(items, known)
		assert.ErrorIs(t, err, ErrUnknownIngredient)
	})

	t.Run("重复食材", func(t *testing.T) {
		items := []dto.IngredientAmount{
			{ID: 2, Amount: 10},
			{ID: 2, Amount: 20},
		}
		_, err := validateIngredientLinks(items, known)
		assert.ErrorIs(t, err, ErrDuplicateIngredient)
	})

	t.Run("用量校验先于存在性校验", func(t *testing.T) {
		items := []dto.IngredientAmount{{ID: 99, Amount: 0}}
		_, err := validateIngredientLinks(items, known)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

// fakeRecipeStore 内存菜谱存储，可注入落库错误
type fakeRecipeStore struct {
	recipes   map[int64]*model.Recipe
	createErr error
	updateErr error
}

func (f *fakeRecipeStore) GetByID(id int64) (*model.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeStore) Exists(id int64) (bool, error) {
	_, ok := f.recipes[id]
	return ok, nil
}

func (f *fakeRecipeStore) GetByIDAndAuthor(recipeID, authorID int64) (*model.Recipe, error) {
	recipe, ok := f.recipes[recipeID]
	if !ok || recipe.AuthorID != authorID {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeStore) CreateWithIngredients(recipe *model.Recipe, links []model.RecipeIngredient) error {
	if f.createErr != nil {
		return f.createErr
	}
	recipe.ID = int64(len(f.recipes) + 1)
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeStore) UpdateWithIngredients(id int64, updates map[string]interface{}, links []model.RecipeIngredient) error {
	return f.updateErr
}

func (f *fakeRecipeStore) Delete(id int64) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeStore) ListRecipes(skip, limit int, authorID, favoritedBy, inCartOf *int64, search *string) ([]model.Recipe, int64, error) {
	return nil, 0, nil
}

type fakeIngredientCatalog struct {
	ingredients []model.Ingredient
}

func (f *fakeIngredientCatalog) GetByIDs(ids []int64) ([]model.Ingredient, error) {
	return f.ingredients, nil
}

func newRecipeServiceWithFakes(repo *fakeRecipeStore) (*RecipeService, *[]string) {
	s := NewRecipeService(repo, &fakeIngredientCatalog{
		ingredients: []model.Ingredient{{ID: 1, Name: "мука", MeasurementUnit: "г"}},
	}, nil, nil)

	removed := &[]string{}
	s.uploadImage = func(ctx context.Context, bucket, objectPrefix, encoded string) (string, error) {
		return "http://minio:9000/recipe-images/7/recipe-1.jpg", nil
	}
	s.removeImage = func(ctx context.Context, bucket, imageURL string) error {
		*removed = append(*removed, imageURL)
		return nil
	}
	return s, removed
}

func TestRecipeCreate_RemovesImageOnStoreError(t *testing.T) {
	repo := &fakeRecipeStore{recipes: map[int64]*model.Recipe{}, createErr: errors.New("落库失败")}
	s, removed := newRecipeServiceWithFakes(repo)

	_, err := s.Create(7, &dto.RecipeCreateRequest{
		Name:        "Блины",
		Image:       "data:image/jpeg;base64,Zm9v",
		Text:        "Смешать и жарить",
		CookingTime: 20,
		Ingredients: []dto.IngredientAmount{{ID: 1, Amount: 300}},
	})

	require.Error(t, err)
	assert.Equal(t, []string{"http://minio:9000/recipe-images/7/recipe-1.jpg"}, *removed)
	assert.Empty(t, repo.recipes)
}

func TestRecipeUpdate_RemovesImageOnStoreError(t *testing.T) {
	repo := &fakeRecipeStore{
		recipes:   map[int64]*model.Recipe{1: {ID: 1, AuthorID: 7, Name: "Блины"}},
		updateErr: errors.New("落库失败"),
	}
	s, removed := newRecipeServiceWithFakes(repo)

	image := "data:image/jpeg;base64,Zm9v"
	_, err := s.Update(1, 7, &dto.RecipeUpdateRequest{Image: &image})

	require.Error(t, err)
	assert.Equal(t, []string{"http://minio:9000/recipe-images/7/recipe-1.jpg"}, *removed)
}

func TestRecipeUpdate_NoCleanupWithoutNewImage(t *testing.T) {
	repo := &fakeRecipeStore{
		recipes:   map[int64]*model.Recipe{1: {ID: 1, AuthorID: 7, Name: "Блины"}},
		updateErr: errors.New("落库失败"),
	}
	s, removed := newRecipeServiceWithFakes(repo)

	name := "Блины на кефире"
	_, err := s.Update(1, 7, &dto.RecipeUpdateRequest{Name: &name})

	require.Error(t, err)
	assert.Empty(t, *removed)
}
