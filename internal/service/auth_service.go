package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/config"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUsernameExists    = errors.New("用户名已存在")
	ErrEmailExists       = errors.New("该邮箱已注册")
	ErrInvalidCredential = errors.New("邮箱或密码错误")
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 用户注册，邮箱与用户名均须唯一
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.UserInfo, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	exists, err = s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserRole:  "user",
	}

	if err := s.userRepo.Create(user); err != nil {
		// 并发注册同邮箱/用户名时，败者由唯一索引拦下
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return toUserInfo(user, false), nil
}

// Login 用户登录（按邮箱），返回 token 数据
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	expireSeconds := int(config.GetJWT().ExpireHours) * 3600

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: expireSeconds,
		User:      *toUserInfo(user, false),
	}, nil
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user, false), nil
}

func toUserInfo(user *model.User, isSubscribed bool) *dto.UserInfo {
	return &dto.UserInfo{
		ID:           user.ID,
		Username:     user.UserName,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Avatar:       user.Avatar,
		IsSubscribed: isSubscribed,
		UserRole:     user.UserRole,
	}
}
