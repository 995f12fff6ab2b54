package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorited = errors.New("您已经收藏过该菜谱了")
	ErrNotFavorited     = errors.New("您尚未收藏该菜谱")
)

type FavoriteService struct {
	favoriteRepo pairStore[model.Favorite]
	recipeRepo   recipeChecker
}

func NewFavoriteService(favoriteRepo pairStore[model.Favorite], recipeRepo recipeChecker) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
	}
}

// Add 收藏菜谱
func (s *FavoriteService) Add(currentUserID, recipeID int64) (*dto.PairInfo, error) {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecipeNotFound
	}

	row, err := s.favoriteRepo.Create(currentUserID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	return &dto.PairInfo{
		ID:        row.ID,
		ActorID:   row.UserID,
		TargetID:  row.RecipeID,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Remove 取消收藏
func (s *FavoriteService) Remove(currentUserID, recipeID int64) error {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}

	deleted, err := s.favoriteRepo.Delete(currentUserID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFavorited
	}
	return nil
}
