package repository

import (
	"fmt"

	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

// PairRepository 泛型配对关系仓储，订阅/收藏/购物车三种 (行为人, 目标) 关系共用
// 唯一性由各模型上的复合唯一索引保证，并发竞争的败者收到 gorm.ErrDuplicatedKey
type PairRepository[T any] struct {
	db        *gorm.DB
	actorCol  string
	targetCol string
	newRow    func(actorID, targetID int64) *T
}

func NewPairRepository[T any](db *gorm.DB, actorCol, targetCol string, newRow func(actorID, targetID int64) *T) *PairRepository[T] {
	return &PairRepository[T]{db: db, actorCol: actorCol, targetCol: targetCol, newRow: newRow}
}

// pairCond 返回 (行为人, 目标) 的 where 条件
func (r *PairRepository[T]) pairCond() string {
	return fmt.Sprintf("%s = ? AND %s = ?", r.actorCol, r.targetCol)
}

// Exists 检查配对是否存在
func (r *PairRepository[T]) Exists(actorID, targetID int64) (bool, error) {
	var count int64
	err := r.db.Model(new(T)).
		Where(r.pairCond(), actorID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Create 创建配对行，配对已存在时返回 gorm.ErrDuplicatedKey
func (r *PairRepository[T]) Create(actorID, targetID int64) (*T, error) {
	row := r.newRow(actorID, targetID)
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete 删除配对行，返回是否确有行被删除
func (r *PairRepository[T]) Delete(actorID, targetID int64) (bool, error) {
	result := r.db.Where(r.pairCond(), actorID, targetID).Delete(new(T))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListTargetIDs 获取行为人的目标 ID 列表（按创建顺序，分页）
func (r *PairRepository[T]) ListTargetIDs(actorID int64, skip, limit int) ([]int64, error) {
	var targetIDs []int64
	err := r.db.Model(new(T)).
		Where(fmt.Sprintf("%s = ?", r.actorCol), actorID).
		Order("id").
		Offset(skip).Limit(limit).
		Pluck(r.targetCol, &targetIDs).Error
	return targetIDs, err
}

// CountByActor 统计行为人的配对数
func (r *PairRepository[T]) CountByActor(actorID int64) (int64, error) {
	var count int64
	err := r.db.Model(new(T)).
		Where(fmt.Sprintf("%s = ?", r.actorCol), actorID).
		Count(&count).Error
	return count, err
}

// BatchCheck 批量检查行为人对多个目标的配对状态
func (r *PairRepository[T]) BatchCheck(actorID int64, targetIDs []int64) (map[int64]bool, error) {
	if len(targetIDs) == 0 {
		return map[int64]bool{}, nil
	}

	var pairedIDs []int64
	err := r.db.Model(new(T)).
		Where(fmt.Sprintf("%s = ? AND %s IN ?", r.actorCol, r.targetCol), actorID, targetIDs).
		Pluck(r.targetCol, &pairedIDs).Error
	if err != nil {
		return nil, err
	}

	pairedSet := make(map[int64]bool, len(pairedIDs))
	for _, id := range pairedIDs {
		pairedSet[id] = true
	}

	result := make(map[int64]bool, len(targetIDs))
	for _, id := range targetIDs {
		result[id] = pairedSet[id]
	}
	return result, nil
}

// NewSubscriptionRepository 订阅关系仓储（用户 → 用户）
func NewSubscriptionRepository(db *gorm.DB) *PairRepository[model.Subscription] {
	return NewPairRepository(db, "follower_id", "follow_id", func(actorID, targetID int64) *model.Subscription {
		return &model.Subscription{FollowerID: actorID, FollowID: targetID}
	})
}

// NewFavoriteRepository 收藏关系仓储（用户 → 菜谱）
func NewFavoriteRepository(db *gorm.DB) *PairRepository[model.Favorite] {
	return NewPairRepository(db, "user_id", "recipe_id", func(actorID, targetID int64) *model.Favorite {
		return &model.Favorite{UserID: actorID, RecipeID: targetID}
	})
}

// NewCartRepository 购物车条目仓储（用户 → 菜谱）
func NewCartRepository(db *gorm.DB) *PairRepository[model.CartItem] {
	return NewPairRepository(db, "user_id", "recipe_id", func(actorID, targetID int64) *model.CartItem {
		return &model.CartItem{UserID: actorID, RecipeID: targetID}
	})
}
