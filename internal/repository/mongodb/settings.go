package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// GetSettings fetches the singleton business settings document. A missing
// document surfaces as ErrNotFound; callers fall back to defaults.
func (r *Repository) GetSettings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := r.collection(settingsColl).FindOne(ctx, bson.M{"_id": models.SettingsDocID}).Decode(&settings)
	if err != nil {
		if isNoDocuments(err) {
			return models.Settings{}, ErrNotFound
		}
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// SaveSettings merge-writes the singleton document: the incoming fields are
// merged over whatever is stored so an update carrying only one rate
// category never drops the others.
func (r *Repository) SaveSettings(ctx context.Context, incoming models.Settings) (models.Settings, error) {
	existing, err := r.GetSettings(ctx)
	if err != nil {
		if err != ErrNotFound {
			return models.Settings{}, err
		}
		existing = models.DefaultSettings()
	}

	merged := models.MergeSettings(existing, incoming)

	opts := options.Replace().SetUpsert(true)
	_, err = r.collection(settingsColl).ReplaceOne(ctx, bson.M{"_id": models.SettingsDocID}, merged, opts)
	if err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return merged, nil
}
