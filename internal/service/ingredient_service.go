package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"foodgram-go/internal/api/dto"
	infraRedis "foodgram-go/internal/infra/redis"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrIngredientNotFound = errors.New("食材不存在")
	ErrIngredientExists   = errors.New("该食材（名称+计量单位）已存在")
)

const (
	ingredientCatalogCacheKey = "ingredient:catalog"
	ingredientCatalogCacheTTL = 10 * time.Minute
)

type IngredientService struct {
	ingredientRepo *repository.IngredientRepository
}

func NewIngredientService(ingredientRepo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// List 按名称前缀过滤食材目录，前缀为空时返回全部
// 目录整体缓存在 Redis，前缀匹配在内存完成（不区分大小写）
func (s *IngredientService) List(namePrefix string) ([]dto.IngredientInfo, error) {
	catalog, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	items := make([]dto.IngredientInfo, 0, len(catalog))
	for _, ing := range catalog {
		if namePrefix != "" && !hasPrefixFold(ing.Name, namePrefix) {
			continue
		}
		items = append(items, dto.IngredientInfo{
			ID:              ing.ID,
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
		})
	}
	return items, nil
}

// GetByID 获取单个食材
func (s *IngredientService) GetByID(id int64) (*dto.IngredientInfo, error) {
	ingredient, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &dto.IngredientInfo{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}, nil
}

// Create 创建食材（管理员）
func (s *IngredientService) Create(req *dto.IngredientCreateRequest) (*dto.IngredientInfo, error) {
	ingredient := &model.Ingredient{
		Name:            req.Name,
		MeasurementUnit: req.MeasurementUnit,
	}
	if err := s.ingredientRepo.Create(ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrIngredientExists
		}
		return nil, err
	}

	s.invalidateCatalog()

	return &dto.IngredientInfo{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}, nil
}

// Update 更新食材（管理员）
func (s *IngredientService) Update(id int64, req *dto.IngredientUpdateRequest) (*dto.IngredientInfo, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.MeasurementUnit != nil {
		updates["measurement_unit"] = *req.MeasurementUnit
	}
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	ingredient, err := s.ingredientRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrIngredientExists
		}
		return nil, err
	}

	s.invalidateCatalog()

	return &dto.IngredientInfo{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}, nil
}

// BulkLoad 批量导入食材目录，已存在的 (名称, 计量单位) 静默跳过
// 返回实际插入的行数
func (s *IngredientService) BulkLoad(items []dto.IngredientCreateRequest) (int64, error) {
	ingredients := make([]model.Ingredient, 0, len(items))
	for _, item := range items {
		ingredients = append(ingredients, model.Ingredient{
			Name:            item.Name,
			MeasurementUnit: item.MeasurementUnit,
		})
	}

	inserted, err := s.ingredientRepo.BulkCreate(ingredients)
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.invalidateCatalog()
	}
	return inserted, nil
}

// loadCatalog 读取完整食材目录，优先走 Redis 缓存
func (s *IngredientService) loadCatalog() ([]model.Ingredient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cached, err := infraRedis.Get().Get(ctx, ingredientCatalogCacheKey).Bytes()
	if err == nil {
		var catalog []model.Ingredient
		if jsonErr := json.Unmarshal(cached, &catalog); jsonErr == nil {
			return catalog, nil
		}
		// 缓存内容损坏时回源并重建
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("Read ingredient catalog cache failed", zap.Error(err))
	}

	catalog, err := s.ingredientRepo.List()
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(catalog); jsonErr == nil {
		if setErr := infraRedis.Get().Set(ctx, ingredientCatalogCacheKey, data, ingredientCatalogCacheTTL).Err(); setErr != nil {
			logger.Warn("Write ingredient catalog cache failed", zap.Error(setErr))
		}
	}

	return catalog, nil
}

// invalidateCatalog 目录变更后使缓存失效
func (s *IngredientService) invalidateCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := infraRedis.Get().Del(ctx, ingredientCatalogCacheKey).Err(); err != nil {
		logger.Warn("Invalidate ingredient catalog cache failed", zap.Error(err))
	}
}

// hasPrefixFold 判断 s 是否以 prefix 开头，不区分大小写（按 Unicode 规则）
func hasPrefixFold(s, prefix string) bool {
	if utf8.RuneCountInString(s) < utf8.RuneCountInString(prefix) {
		return false
	}
	runes := []rune(s)
	head := string(runes[:utf8.RuneCountInString(prefix)])
	return strings.EqualFold(head, prefix)
}
