package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/linyuchen/phone-lottery-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingRepository implements the repositories.SettingRepository interface
type SettingRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *mongo.Database, timeout time.Duration) repositories.SettingRepository {
	return &SettingRepository{
		collection: db.Collection("settings"),
		timeout:    timeout,
	}
}

// FindByKey finds a campaign setting by key. Returns repositories.ErrNotFound
// when the key is not configured.
func (r *SettingRepository) FindByKey(ctx context.Context, key string) (*models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var setting models.Setting
	err := r.collection.FindOne(ctx, bson.M{"key": key}).Decode(&setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find setting %q: %w", key, err)
	}
	return &setting, nil
}

// UpsertByKey updates a setting by key, or creates it if it doesn't exist.
func (r *SettingRepository) UpsertByKey(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"key": key}
	update := bson.M{
		"$set": bson.M{
			"value":     value,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"key":       key,
			"createdAt": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}

// FindAll finds all campaign settings sorted by key
func (r *SettingRepository) FindAll(ctx context.Context) ([]*models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"key": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []*models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = []*models.Setting{}
	}
	return settings, nil
}
