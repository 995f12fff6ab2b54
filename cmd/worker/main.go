package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram-go/internal/config"
	"foodgram-go/internal/infra/database"
	infraES "foodgram-go/internal/infra/elasticsearch"
	infraKafka "foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	recipeRepo := repository.NewRecipeRepository(database.Get())
	searchService := service.NewSearchService(recipeRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	indexTopic := cfg.Kafka.Topics["recipe_index"]
	groupID := "foodgram-go-index-worker"

	logger.Info("Recipe index worker started",
		zap.String("topic", indexTopic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	handler := func(event *infraKafka.RecipeIndexEvent) error {
		switch event.Action {
		case infraKafka.RecipeActionDelete:
			esCtx, esCancel := context.WithTimeout(ctx, 5*time.Second)
			defer esCancel()
			return infraES.DeleteRecipe(esCtx, event.RecipeID)
		case infraKafka.RecipeActionIndex:
			if err := searchService.SyncRecipeToES(event.RecipeID); err != nil {
				// 事件到达时菜谱可能已被删除，同步索引删除即可
				if errors.Is(err, gorm.ErrRecordNotFound) {
					esCtx, esCancel := context.WithTimeout(ctx, 5*time.Second)
					defer esCancel()
					return infraES.DeleteRecipe(esCtx, event.RecipeID)
				}
				return err
			}
			return nil
		default:
			logger.Warn("Unknown recipe index action", zap.String("action", event.Action))
			return nil
		}
	}

	infraKafka.StartRecipeEventConsumer(ctx, cfg.Kafka.Brokers, indexTopic, groupID, handler)
}
