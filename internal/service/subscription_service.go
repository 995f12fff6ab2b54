package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

var (
	ErrSelfSubscription  = errors.New("不能订阅自己")
	ErrAlreadySubscribed = errors.New("您已经订阅过该用户了")
	ErrNotSubscribed     = errors.New("您尚未订阅该用户")
)

type SubscriptionService struct {
	subscriptionRepo pairStore[model.Subscription]
	userRepo         userGetter
}

func NewSubscriptionService(subscriptionRepo pairStore[model.Subscription], userRepo userGetter) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// Subscribe 订阅用户，自订阅在访问存储之前即被拒绝
func (s *SubscriptionService) Subscribe(currentUserID, targetUserID int64) (*dto.UserInfo, error) {
	if currentUserID == targetUserID {
		return nil, ErrSelfSubscription
	}

	target, err := s.userRepo.GetByID(targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.subscriptionRepo.Create(currentUserID, targetUserID); err != nil {
		// 并发重复订阅的败者由唯一索引拦下，与先查后插的重复一并归为已订阅
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	return toUserInfo(target, true), nil
}

// Unsubscribe 取消订阅
func (s *SubscriptionService) Unsubscribe(currentUserID, targetUserID int64) error {
	if currentUserID == targetUserID {
		return ErrSelfSubscription
	}

	if _, err := s.userRepo.GetByID(targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	deleted, err := s.subscriptionRepo.Delete(currentUserID, targetUserID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotSubscribed
	}
	return nil
}

// GetSubscriptions 获取当前用户的订阅列表（按订阅先后排序）
func (s *SubscriptionService) GetSubscriptions(currentUserID int64, page, limit int) (*dto.SubscriptionListData, error) {
	skip := (page - 1) * limit
	followIDs, err := s.subscriptionRepo.ListTargetIDs(currentUserID, skip, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.subscriptionRepo.CountByActor(currentUserID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetByIDs(followIDs)
	if err != nil {
		return nil, err
	}

	// GetByIDs 不保证顺序，按订阅先后重排
	byID := make(map[int64]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	items := make([]dto.UserInfo, 0, len(followIDs))
	for _, id := range followIDs {
		if user, ok := byID[id]; ok {
			items = append(items, *toUserInfo(user, true))
		}
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &dto.SubscriptionListData{
		Users:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
