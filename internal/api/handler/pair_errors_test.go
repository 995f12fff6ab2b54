package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foodgram-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// 配对关系错误到 HTTP 状态码的映射：重复添加与自订阅归 409，配对不存在归 404
func TestPairErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		handle   func(c *gin.Context, err error)
		err      error
		wantCode int
	}{
		{"移出不在购物车的菜谱返回404", handleCartError, service.ErrNotInCart, http.StatusNotFound},
		{"重复加入购物车返回409", handleCartError, service.ErrAlreadyInCart, http.StatusConflict},
		{"取消未收藏的菜谱返回404", handleFavoriteError, service.ErrNotFavorited, http.StatusNotFound},
		{"重复收藏返回409", handleFavoriteError, service.ErrAlreadyFavorited, http.StatusConflict},
		{"取消未订阅的用户返回404", handleSubscriptionError, service.ErrNotSubscribed, http.StatusNotFound},
		{"重复订阅返回409", handleSubscriptionError, service.ErrAlreadySubscribed, http.StatusConflict},
		{"订阅自己返回409", handleSubscriptionError, service.ErrSelfSubscription, http.StatusConflict},
		{"菜谱不存在返回404", handleCartError, service.ErrRecipeNotFound, http.StatusNotFound},
		{"用户不存在返回404", handleSubscriptionError, service.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.handle(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
