package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"foodgram-go/internal/config"
	"foodgram-go/internal/infra/database"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// ingredientRecord 导入文件中的一条食材记录
type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	filePath := flag.String("file", "data/ingredients.json", "食材 JSON 文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
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

	if err := database.AutoMigrate(&model.Ingredient{}); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Fatal("Failed to read ingredients file", zap.String("path", *filePath), zap.Error(err))
	}

	var records []ingredientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Fatal("Failed to parse ingredients file", zap.Error(err))
	}

	ingredients := make([]model.Ingredient, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" || rec.MeasurementUnit == "" {
			logger.Warn("Skipping record with empty fields",
				zap.String("name", rec.Name), zap.String("unit", rec.MeasurementUnit))
			continue
		}
		ingredients = append(ingredients, model.Ingredient{
			Name:            rec.Name,
			MeasurementUnit: rec.MeasurementUnit,
		})
	}

	repo := repository.NewIngredientRepository(database.Get())
	inserted, err := repo.BulkCreate(ingredients)
	if err != nil {
		logger.Fatal("Failed to bulk insert ingredients", zap.Error(err))
	}

	logger.Info("Ingredients loaded",
		zap.Int("submitted", len(ingredients)),
		zap.Int64("inserted", inserted),
		zap.Int64("skipped", int64(len(ingredients))-inserted),
	)
}
