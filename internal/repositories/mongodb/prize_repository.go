package mongodb

import (
	"context"
	"time"

	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/linyuchen/phone-lottery-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PrizeRepository implements the repositories.PrizeRepository interface
type PrizeRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewPrizeRepository creates a new PrizeRepository
func NewPrizeRepository(db *mongo.Database, timeout time.Duration) repositories.PrizeRepository {
	return &PrizeRepository{
		collection: db.Collection("prizes"),
		timeout:    timeout,
	}
}

// Create creates a new prize
func (r *PrizeRepository) Create(ctx context.Context, prize *models.Prize) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prize.CreatedAt = time.Now()
	prize.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, prize)
	if err != nil {
		return err
	}
	prize.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll finds all prizes in insertion order. Order matters: the weighted
// draw consumes rates in sequence and the all-zero-rate fallback picks the
// first listed prize.
func (r *PrizeRepository) FindAll(ctx context.Context) ([]*models.Prize, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prizes []*models.Prize
	if err := cursor.All(ctx, &prizes); err != nil {
		return nil, err
	}
	if prizes == nil {
		prizes = []*models.Prize{}
	}
	return prizes, nil
}

// DeleteByName deletes a prize by display name
func (r *PrizeRepository) DeleteByName(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
