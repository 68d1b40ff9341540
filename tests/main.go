package main

import (
	"context"
	"log"
	"time"

	"yachtmatch/catalog"
	"yachtmatch/config"
	"yachtmatch/database"
	catalogRepo "yachtmatch/database/repository/catalog"
)

// Seeds the Mongo catalog collections from the JSON seed files, so the
// server can run with CATALOG_SOURCE=mongo.
func main() {
	config.LoadConfig()
	database.InitDB()

	yachts, err := catalog.LoadYachts(config.AppConfig.YachtSeedPath)
	if err != nil {
		log.Fatalf("Failed to load yacht seed: %v", err)
	}
	themes, err := catalog.LoadThemes(config.AppConfig.ThemeSeedPath)
	if err != nil {
		log.Fatalf("Failed to load theme seed: %v", err)
	}

	repo := catalogRepo.NewMongoCatalogRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.ReplaceYachts(ctx, yachts); err != nil {
		log.Fatalf("Failed to seed yacht catalog: %v", err)
	}
	if err := repo.ReplaceThemes(ctx, themes); err != nil {
		log.Fatalf("Failed to seed theme templates: %v", err)
	}

	log.Printf("Seeded %d yachts and %d themes", len(yachts), len(themes))
}
