package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/imagestore"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNoAvatar = errors.New("用户未设置头像")

type UserService struct {
	userRepo         *repository.UserRepository
	subscriptionRepo *repository.PairRepository[model.Subscription]
}

func NewUserService(userRepo *repository.UserRepository, subscriptionRepo *repository.PairRepository[model.Subscription]) *UserService {
	return &UserService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// GetProfile 获取用户资料，viewerID 非 nil 时附带是否已订阅该用户
func (s *UserService) GetProfile(userID int64, viewerID *int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isSubscribed := false
	if viewerID != nil && *viewerID != userID {
		isSubscribed, err = s.subscriptionRepo.Exists(*viewerID, userID)
		if err != nil {
			return nil, err
		}
	}

	return toUserInfo(user, isSubscribed), nil
}

// SetAvatar 设置当前用户头像，图片为 base64 编码，存入 MinIO 后保存公开 URL
func (s *UserService) SetAvatar(userID int64, req *dto.AvatarUpdateRequest) (*dto.UserInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objectPrefix := fmt.Sprintf("%d/avatar", userID)
	avatarURL, err := imagestore.Upload(ctx, imagestore.AvatarBucket, objectPrefix, req.Avatar)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Update(userID, map[string]interface{}{"avatar": avatarURL})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user, false), nil
}

// DeleteAvatar 删除当前用户头像
func (s *UserService) DeleteAvatar(userID int64) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.Avatar == nil || *user.Avatar == "" {
		return ErrNoAvatar
	}

	if _, err := s.userRepo.Update(userID, map[string]interface{}{"avatar": nil}); err != nil {
		return err
	}

	// 对象清理失败不影响头像删除结果
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := imagestore.Remove(ctx, imagestore.AvatarBucket, *user.Avatar); err != nil {
		logger.Warn("Remove avatar object failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	return nil
}

// ListUsers 带筛选条件的用户分页列表（管理员）
func (s *UserService) ListUsers(page, limit int, username, userRole *string) (*dto.UserListData, error) {
	skip := (page - 1) * limit
	users, total, err := s.userRepo.ListWithFilters(skip, limit, username, userRole)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, *toUserInfo(&users[i], false))
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &dto.UserListData{
		Users:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// DeleteUser 删除用户（管理员），其菜谱与配对关系经外键级联一并删除
func (s *UserService) DeleteUser(userID int64) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
