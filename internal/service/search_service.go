package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/config"
	infraES "foodgram-go/internal/infra/elasticsearch"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	recipeRepo *repository.RecipeRepository
}

func NewSearchService(recipeRepo *repository.RecipeRepository) *SearchService {
	return &SearchService{recipeRepo: recipeRepo}
}

// SearchRecipes 搜索菜谱（ES 优先，失败则降级到 DB 名称模糊匹配）
func (s *SearchService) SearchRecipes(req *dto.SearchRecipeRequest) (*dto.SearchRecipeData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	data, err := s.searchFromES(req)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		return s.searchFromDB(req)
	}
	return data, nil
}

func (s *SearchService) searchFromES(req *dto.SearchRecipeRequest) (*dto.SearchRecipeData, error) {
	cfg := config.GetElasticsearch()
	indexName := cfg.Index["recipes"]
	if indexName == "" {
		indexName = "recipes"
	}

	query := s.buildESQuery(req)
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, indexName, bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
				Highlight map[string][]string `json:"highlight"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	recipeIDs := make([]int64, 0, len(esResp.Hits.Hits))
	highlights := make(map[int64]map[string][]string)
	for _, h := range esResp.Hits.Hits {
		recipeIDs = append(recipeIDs, h.Source.ID)
		if len(h.Highlight) > 0 {
			highlights[h.Source.ID] = h.Highlight
		}
	}

	total := esResp.Hits.Total.Value
	if len(recipeIDs) == 0 {
		return s.buildSearchData(nil, highlights, total, req.Page, req.Limit), nil
	}

	recipes, err := s.recipeRepo.GetByIDsWithAuthor(recipeIDs)
	if err != nil {
		return nil, err
	}

	recipeMap := make(map[int64]*model.Recipe)
	for i := range recipes {
		recipeMap[recipes[i].ID] = &recipes[i]
	}

	// 回表结果按 ES 相关度顺序重排
	ordered := make([]model.Recipe, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		if r, ok := recipeMap[id]; ok {
			ordered = append(ordered, *r)
		}
	}

	return s.buildSearchData(ordered, highlights, total, req.Page, req.Limit), nil
}

func (s *SearchService) buildESQuery(req *dto.SearchRecipeRequest) map[string]interface{} {
	boolQ := map[string]interface{}{
		"filter": []interface{}{},
		"must":   []interface{}{},
	}

	if strings.TrimSpace(req.Q) != "" {
		q := strings.TrimSpace(req.Q)
		boolQ["must"] = append(boolQ["must"].([]interface{}),
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":    q,
					"fields":   []string{"name^3", "text^1"},
					"type":     "best_fields",
					"operator": "or",
				},
			},
		)
	}

	if req.AuthorID != nil {
		boolQ["filter"] = append(boolQ["filter"].([]interface{}),
			map[string]interface{}{"term": map[string]interface{}{"author_id": *req.AuthorID}})
	}

	sortConfig := []interface{}{}
	switch req.Sort {
	case "time":
		sortConfig = append(sortConfig, map[string]interface{}{"created_at": map[string]string{"order": "desc"}})
	default:
		sortConfig = append(sortConfig, map[string]interface{}{"_score": map[string]string{"order": "desc"}})
		sortConfig = append(sortConfig, map[string]interface{}{"created_at": map[string]string{"order": "desc"}})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": boolQ,
		},
		"_source": []string{"id"},
		"from":    (req.Page - 1) * req.Limit,
		"size":    req.Limit,
		"sort":    sortConfig,
	}

	if strings.TrimSpace(req.Q) != "" {
		query["highlight"] = map[string]interface{}{
			"fields": map[string]interface{}{
				"name": map[string]interface{}{},
				"text": map[string]interface{}{},
			},
			"pre_tags":  []string{"<em>"},
			"post_tags": []string{"</em>"},
		}
	}

	return query
}

func (s *SearchService) buildSearchData(recipes []model.Recipe, highlights map[int64]map[string][]string, total int64, page, limit int) *dto.SearchRecipeData {
	items := make([]dto.SearchRecipeInfo, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		authorName := ""
		if r.Author.ID != 0 {
			authorName = r.Author.UserName
		}
		items = append(items, dto.SearchRecipeInfo{
			ID:          r.ID,
			AuthorID:    r.AuthorID,
			AuthorName:  authorName,
			Name:        r.Name,
			Text:        r.Text,
			Image:       r.Image,
			CookingTime: r.CookingTime,
			Highlight:   highlights[r.ID],
		})
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &dto.SearchRecipeData{
		Recipes:    items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func (s *SearchService) searchFromDB(req *dto.SearchRecipeRequest) (*dto.SearchRecipeData, error) {
	skip := (req.Page - 1) * req.Limit

	var search *string
	if q := strings.TrimSpace(req.Q); q != "" {
		search = &q
	}

	recipes, total, err := s.recipeRepo.ListRecipes(skip, req.Limit, req.AuthorID, nil, nil, search)
	if err != nil {
		return nil, err
	}

	return s.buildSearchData(recipes, nil, total, req.Page, req.Limit), nil
}

// SyncRecipeToES 同步单个菜谱到 ES（索引事件消费时调用）
func (s *SearchService) SyncRecipeToES(recipeID int64) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return err
	}

	authorName := ""
	if recipe.Author.ID != 0 {
		authorName = recipe.Author.UserName
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return infraES.SyncRecipe(ctx, recipe, authorName)
}

// SyncAllRecipesToES 全量同步菜谱到 ES
func (s *SearchService) SyncAllRecipesToES() (success, failed int, err error) {
	recipes, _, err := s.recipeRepo.ListAllWithAuthor(0, 10000)
	if err != nil {
		return 0, 0, err
	}

	if len(recipes) == 0 {
		return 0, 0, nil
	}

	authorNames := make(map[int64]string)
	for i := range recipes {
		if recipes[i].Author.ID != 0 {
			authorNames[recipes[i].AuthorID] = recipes[i].Author.UserName
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	return infraES.BulkSyncRecipes(ctx, recipes, authorNames)
}
