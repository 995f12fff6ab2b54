package main

import (
	"fmt"
	"net/http"
	"time"

	"foodgram-go/internal/api/handler"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/router"
	"foodgram-go/internal/config"
	"foodgram-go/internal/infra/database"
	infraES "foodgram-go/internal/infra/elasticsearch"
	infraKafka "foodgram-go/internal/infra/kafka"
	infraMinio "foodgram-go/internal/infra/minio"
	infraRedis "foodgram-go/internal/infra/redis"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	_ "foodgram-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Foodgram-Go API
// @version 1.0
// @description 菜谱分享平台 API 服务

// @contact.name API Support
// @contact.email support@foodgram.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Subscription{},
		&model.Favorite{},
		&model.CartItem{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis（食材目录缓存）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO（菜谱图片和头像存储）
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者（菜谱索引事件）
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewCartRepository(db)
	shoppingRepo := repository.NewShoppingRepository(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, subscriptionRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, ingredientRepo, favoriteRepo, cartRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, recipeRepo)
	cartService := service.NewCartService(cartRepo, recipeRepo)
	shoppingListService := service.NewShoppingListService(shoppingRepo, userRepo)
	searchService := service.NewSearchService(recipeRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService, shoppingListService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	cartHandler := handler.NewCartHandler(cartService)
	searchHandler := handler.NewSearchHandler(searchService)

	// 管理员中间件（需要查数据库获取角色）
	adminMiddleware := middleware.AdminRequired(func(userID int64) (string, error) {
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return "", err
		}
		return user.UserRole, nil
	})

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, userHandler, subscriptionHandler, ingredientHandler, recipeHandler, favoriteHandler, cartHandler, searchHandler, adminMiddleware)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
	)

	// 启动HTTP服务器
	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Info("Root endpoint accessed", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
