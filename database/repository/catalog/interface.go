package catalogRepo

import (
	"context"

	"yachtmatch/database"
	"yachtmatch/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository serves the yacht fleet and theme templates from a
// persistent store. It is read at startup only; the in-memory catalog built
// from it is the copy every request uses.
type CatalogRepository interface {
	FetchYachts(ctx context.Context) ([]models.YachtRecord, error)
	FetchThemes(ctx context.Context) ([]models.ThemeRecord, error)
	ReplaceYachts(ctx context.Context, yachts []models.YachtRecord) error
	ReplaceThemes(ctx context.Context, themes []models.ThemeRecord) error
}

type mongoCatalogRepo struct {
	yachtColl *mongo.Collection
	themeColl *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("yachtmatch")
	return &mongoCatalogRepo{
		yachtColl: db.Collection("yacht_catalog"),
		themeColl: db.Collection("theme_templates"),
	}
}
