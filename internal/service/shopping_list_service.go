package service

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"foodgram-go/internal/repository"
)

// AggregatedItem 购物清单中的一条汇总项
type AggregatedItem struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

type ShoppingListService struct {
	shoppingRepo *repository.ShoppingRepository
	userRepo     *repository.UserRepository
}

func NewShoppingListService(shoppingRepo *repository.ShoppingRepository, userRepo *repository.UserRepository) *ShoppingListService {
	return &ShoppingListService{
		shoppingRepo: shoppingRepo,
		userRepo:     userRepo,
	}
}

// BuildShoppingList 生成用户购物车的购物清单文本
func (s *ShoppingListService) BuildShoppingList(userID int64) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}

	rows, err := s.shoppingRepo.CartIngredientRows(userID)
	if err != nil {
		return "", err
	}

	recipeNames, err := s.shoppingRepo.CartRecipeNames(userID)
	if err != nil {
		return "", err
	}

	items := aggregateCartRows(rows)
	return renderShoppingList(user.UserName, items, recipeNames, time.Now()), nil
}

// aggregateCartRows 按 (名称, 计量单位) 分组求和，并按名称排序
func aggregateCartRows(rows []repository.CartIngredientRow) []AggregatedItem {
	type key struct {
		name string
		unit string
	}

	sums := make(map[key]int, len(rows))
	for _, row := range rows {
		sums[key{row.Name, row.MeasurementUnit}] += row.Amount
	}

	items := make([]AggregatedItem, 0, len(sums))
	for k, amount := range sums {
		items = append(items, AggregatedItem{
			Name:            k.name,
			MeasurementUnit: k.unit,
			Amount:          amount,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})

	return items
}

// renderShoppingList 渲染购物清单文本
// 格式固定：标题行带用户名和生成时间，食材项为 "N.  名称(首字母大写) 数量单位"，
// 菜谱项为 "N 名称"，各行以 \n 连接，无末尾换行
func renderShoppingList(userName string, items []AggregatedItem, recipeNames []string, now time.Time) string {
	lines := make([]string, 0, len(items)+len(recipeNames)+3)

	lines = append(lines, fmt.Sprintf("Список покупок пользователя %s на %s", userName, now.Format("2006-01-02 15:04:05")))
	lines = append(lines, "Продукты")

	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d.  %s %d%s",
			i+1, capitalizeFirst(item.Name), item.Amount, item.MeasurementUnit))
	}

	lines = append(lines, "Рецепты")
	for i, name := range recipeNames {
		lines = append(lines, fmt.Sprintf("%d %s", i+1, name))
	}

	return strings.Join(lines, "\n")
}

// capitalizeFirst 首字符大写，其余一律小写
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
