package router

import (
	"foodgram-go/internal/api/handler"
	"foodgram-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	ingredientHandler *handler.IngredientHandler,
	recipeHandler *handler.RecipeHandler,
	favoriteHandler *handler.FavoriteHandler,
	cartHandler *handler.CartHandler,
	searchHandler *handler.SearchHandler,
	adminMiddleware gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		// 公开接口（携带 Token 时附带订阅标记）
		users.GET("/:user_id", middleware.AuthOptional(), userHandler.GetProfile)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.GET("/me", authHandler.Me)
			usersAuth.PUT("/me/avatar", userHandler.SetAvatar)
			usersAuth.DELETE("/me/avatar", userHandler.DeleteAvatar)

			usersAuth.GET("/subscriptions", subscriptionHandler.List)
			usersAuth.POST("/:user_id/subscribe", subscriptionHandler.Subscribe)
			usersAuth.DELETE("/:user_id/subscribe", subscriptionHandler.Unsubscribe)
		}
	}

	// --- 食材目录模块 ---
	ingredients := v1.Group("/ingredients")
	{
		ingredients.GET("", ingredientHandler.List)
		ingredients.GET("/:ingredient_id", ingredientHandler.Get)
	}

	// --- 菜谱模块 ---
	recipes := v1.Group("/recipes")
	{
		// 公开接口（携带 Token 时附带收藏/购物车标记）
		recipes.GET("", middleware.AuthOptional(), recipeHandler.List)
		recipes.GET("/:recipe_id", middleware.AuthOptional(), recipeHandler.Get)

		recipesAuth := recipes.Group("", middleware.AuthRequired())
		{
			recipesAuth.POST("", recipeHandler.Create)
			recipesAuth.PATCH("/:recipe_id", recipeHandler.Update)
			recipesAuth.DELETE("/:recipe_id", recipeHandler.Delete)

			recipesAuth.GET("/download_shopping_cart", recipeHandler.DownloadShoppingList)

			recipesAuth.POST("/:recipe_id/favorite", favoriteHandler.Add)
			recipesAuth.DELETE("/:recipe_id/favorite", favoriteHandler.Remove)
			recipesAuth.POST("/:recipe_id/shopping_cart", cartHandler.Add)
			recipesAuth.DELETE("/:recipe_id/shopping_cart", cartHandler.Remove)
		}
	}

	// --- 搜索模块 ---
	search := v1.Group("/search")
	{
		search.GET("/recipes", searchHandler.Search)
	}

	// --- 短链接 ---
	r.GET("/s/:recipe_id", recipeHandler.ShortLink)

	// --- 管理员模块 ---
	admin := v1.Group("/admin", middleware.AuthRequired(), adminMiddleware)
	{
		admin.GET("/users", userHandler.ListUsers)
		admin.DELETE("/users/:user_id", userHandler.DeleteUser)

		admin.POST("/ingredients", ingredientHandler.Create)
		admin.PUT("/ingredients/:ingredient_id", ingredientHandler.Update)
		admin.POST("/ingredients/bulk", ingredientHandler.BulkLoad)

		admin.POST("/search/sync", searchHandler.SyncAll)
	}
}
