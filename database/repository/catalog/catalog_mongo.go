package catalogRepo

import (
	"context"

	"yachtmatch/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FetchYachts returns every fleet entry in the yacht catalog collection.
func (r *mongoCatalogRepo) FetchYachts(ctx context.Context) ([]models.YachtRecord, error) {
	cursor, err := r.yachtColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var yachts []models.YachtRecord
	if err := cursor.All(ctx, &yachts); err != nil {
		return nil, err
	}
	return yachts, nil
}

// FetchThemes returns every theme template in the collection.
func (r *mongoCatalogRepo) FetchThemes(ctx context.Context) ([]models.ThemeRecord, error) {
	cursor, err := r.themeColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var themes []models.ThemeRecord
	if err := cursor.All(ctx, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

// ReplaceYachts swaps the whole yacht catalog for the given records.
func (r *mongoCatalogRepo) ReplaceYachts(ctx context.Context, yachts []models.YachtRecord) error {
	if _, err := r.yachtColl.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, len(yachts))
	for i, y := range yachts {
		docs[i] = y
	}
	_, err := r.yachtColl.InsertMany(ctx, docs)
	return err
}

// ReplaceThemes swaps the whole theme catalog for the given records.
func (r *mongoCatalogRepo) ReplaceThemes(ctx context.Context, themes []models.ThemeRecord) error {
	if _, err := r.themeColl.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, len(themes))
	for i, t := range themes {
		docs[i] = t
	}
	_, err := r.themeColl.InsertMany(ctx, docs)
	return err
}
