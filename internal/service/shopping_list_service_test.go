package service

import (
	"strings"
	"testing"
	"time"

	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCartRows(t *testing.T) {
	rows := []repository.CartIngredientRow{
		{Name: "сахар", MeasurementUnit: "г", Amount: 100},
		{Name: "мука", MeasurementUnit: "г", Amount: 200},
		{Name: "сахар", MeasurementUnit: "г", Amount: 50},
		{Name: "молоко", MeasurementUnit: "мл", Amount: 300},
	}

	items := aggregateCartRows(rows)

	require.Len(t, items, 3)

	// 按名称排序
	assert.Equal(t, "молоко", items[0].Name)
	assert.Equal(t, "мука", items[1].Name)
	assert.Equal(t, "сахар", items[2].Name)

	// 同名同单位跨菜谱求和
	assert.Equal(t, 150, items[2].Amount)
	assert.Equal(t, "г", items[2].MeasurementUnit)
	assert.Equal(t, 200, items[1].Amount)
	assert.Equal(t, 300, items[0].Amount)
}

func TestAggregateCartRows_SameNameDifferentUnit(t *testing.T) {
	rows := []repository.CartIngredientRow{
		{Name: "мука", MeasurementUnit: "г", Amount: 200},
		{Name: "мука", MeasurementUnit: "стакан", Amount: 2},
	}

	items := aggregateCartRows(rows)

	// 单位不同不合并
	require.Len(t, items, 2)
	assert.Equal(t, "г", items[0].MeasurementUnit)
	assert.Equal(t, 200, items[0].Amount)
	assert.Equal(t, "стакан", items[1].MeasurementUnit)
	assert.Equal(t, 2, items[1].Amount)
}

func TestAggregateCartRows_Empty(t *testing.T) {
	items := aggregateCartRows(nil)
	assert.Empty(t, items)
}

func TestRenderShoppingList(t *testing.T) {
	items := []AggregatedItem{
		{Name: "молоко", MeasurementUnit: "мл", Amount: 300},
		{Name: "сахар", MeasurementUnit: "г", Amount: 150},
	}
	recipeNames := []string{"Блины", "Сырники"}
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	got := renderShoppingList("chef_anna", items, recipeNames, now)

	expected := strings.Join([]string{
		"Список покупок пользователя chef_anna на 2024-05-01 12:30:00",
		"Продукты",
		"1.  Молоко 300мл",
		"2.  Сахар 150г",
		"Рецепты",
		"1 Блины",
		"2 Сырники",
	}, "\n")

	assert.Equal(t, expected, got)
}

func TestRenderShoppingList_EmptyCart(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	got := renderShoppingList("chef_anna", nil, nil, now)

	// 空购物车仍给出标题和两个分组标签
	expected := strings.Join([]string{
		"Список покупок пользователя chef_anna на 2024-05-01 12:30:00",
		"Продукты",
		"Рецепты",
	}, "\n")
	assert.Equal(t, expected, got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"кириллица", "мука", "Мука"},
		{"уже заглавная", "Мука", "Мука"},
		{"латиница", "sugar", "Sugar"},
		{"пустая строка", "", ""},
		{"несколько слов", "яйцо куриное", "Яйцо куриное"},
		{"капс приводится к строчным", "САХАР", "Сахар"},
		{"смешанный регистр", "МоЛоКо ЦеЛьНоЕ", "Молоко цельное"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capitalizeFirst(tt.in))
		})
	}
}
