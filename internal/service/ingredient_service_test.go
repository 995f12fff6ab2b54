package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		prefix string
		want   bool
	}{
		{"кириллица совпадает", "молоко", "мо", true},
		{"кириллица без учёта регистра", "Молоко", "мо", true},
		{"кириллица не совпадает", "мука", "мо", false},
		{"латиница без учёта регистра", "Sugar", "su", true},
		{"префикс длиннее строки", "мо", "молоко", false},
		{"точное совпадение", "соль", "соль", true},
		{"пустой префикс", "соль", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasPrefixFold(tt.s, tt.prefix))
		})
	}
}
