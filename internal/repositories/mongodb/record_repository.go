package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/linyuchen/phone-lottery-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure RecordRepository implements the interface
var _ repositories.RecordRepository = (*RecordRepository)(nil)

// RecordRepository implements the repositories.RecordRepository interface
type RecordRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(db *mongo.Database, timeout time.Duration) *RecordRepository {
	return &RecordRepository{
		collection: db.Collection("records"),
		timeout:    timeout,
	}
}

// EnsureIndexes creates the unique (phone, drawDay) index that makes
// AppendUnique atomic across instances. Called once at startup.
func (r *RecordRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}, {Key: "drawDay", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_phone_draw_day"),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to create records index: %w", err)
	}
	return nil
}

// AppendUnique inserts a draw record. The unique index turns a concurrent
// double-submit into a duplicate-key error, reported as ErrDuplicateRecord
// so the caller can re-read the winning record instead of writing twice.
//
// The write runs under the store timeout only, detached from the inbound
// context: a client disconnect after the duplicate check must not abort a
// half-committed insert. Read paths stay request-bound.
func (r *RecordRepository) AppendUnique(ctx context.Context, record *models.DrawRecord) error {
	wctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(wctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateRecord
		}
		return err
	}
	record.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByPhone finds all draw records for a normalized phone number in
// insertion order (ascending by creation time).
func (r *RecordRepository) FindByPhone(ctx context.Context, phone string) ([]*models.DrawRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"phone": phone}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.DrawRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*models.DrawRecord{}
	}
	return records, nil
}

// FindByPhoneAndDay finds the record for a phone on a specific calendar day.
// Returns repositories.ErrNotFound when no record exists.
func (r *RecordRepository) FindByPhoneAndDay(ctx context.Context, phone, day string) (*models.DrawRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var record models.DrawRecord
	err := r.collection.FindOne(ctx, bson.M{"phone": phone, "drawDay": day}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAll finds all draw records in insertion order
func (r *RecordRepository) FindAll(ctx context.Context) ([]*models.DrawRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.DrawRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*models.DrawRecord{}
	}
	return records, nil
}
