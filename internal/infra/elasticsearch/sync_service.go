package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodgram-go/internal/model"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// ESRecipeDoc ES 菜谱文档结构
type ESRecipeDoc struct {
	ID          int64  `json:"id"`
	AuthorID    int64  `json:"author_id"`
	AuthorName  string `json:"author_name"`
	Name        string `json:"name"`
	Text        string `json:"text"`
	CookingTime int    `json:"cooking_time"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func recipeToESDoc(r *model.Recipe, authorName string) *ESRecipeDoc {
	return &ESRecipeDoc{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		AuthorName:  authorName,
		Name:        r.Name,
		Text:        r.Text,
		CookingTime: r.CookingTime,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

// SyncRecipe 同步单个菜谱到 ES
func SyncRecipe(ctx context.Context, r *model.Recipe, authorName string) error {
	indexName := recipesIndexName()

	doc := recipeToESDoc(r, authorName)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, indexName, fmt.Sprintf("%d", r.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Recipe synced to ES", zap.Int64("recipe_id", r.ID))
	return nil
}

// DeleteRecipe 从 ES 删除菜谱
func DeleteRecipe(ctx context.Context, recipeID int64) error {
	indexName := recipesIndexName()

	resp, err := Delete(ctx, indexName, fmt.Sprintf("%d", recipeID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkSyncRecipes 批量同步菜谱到 ES
func BulkSyncRecipes(ctx context.Context, recipes []model.Recipe, authorNames map[int64]string) (success, failed int, err error) {
	indexName := recipesIndexName()

	var buf strings.Builder
	for _, r := range recipes {
		authorName := authorNames[r.AuthorID]
		doc := recipeToESDoc(&r, authorName)
		docBody, _ := json.Marshal(doc)

		buf.WriteString(fmt.Sprintf(`{"index":{"_index":"%s","_id":"%d"}}`, indexName, r.ID))
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, 0, nil
	}

	resp, err := Bulk(ctx, strings.NewReader(buf.String()))
	if err != nil {
		return 0, len(recipes), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(recipes), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(recipes), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}
