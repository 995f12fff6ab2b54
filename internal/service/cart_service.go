package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

var (
	ErrAlreadyInCart = errors.New("该菜谱已在购物车中")
	ErrNotInCart     = errors.New("该菜谱不在购物车中")
)

type CartService struct {
	cartRepo   pairStore[model.CartItem]
	recipeRepo recipeChecker
}

func NewCartService(cartRepo pairStore[model.CartItem], recipeRepo recipeChecker) *CartService {
	return &CartService{
		cartRepo:   cartRepo,
		recipeRepo: recipeRepo,
	}
}

// Add 将菜谱加入购物车
func (s *CartService) Add(currentUserID, recipeID int64) (*dto.PairInfo, error) {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecipeNotFound
	}

	row, err := s.cartRepo.Create(currentUserID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInCart
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

// Remove 将菜谱移出购物车
func (s *CartService) Remove(currentUserID, recipeID int64) error {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}

	deleted, err := s.cartRepo.Delete(currentUserID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotInCart
	}
	return nil
}
