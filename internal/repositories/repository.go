package repositories

import (
	"context"
	"errors"

	"github.com/linyuchen/phone-lottery-backend/internal/models"
)

// ErrDuplicateRecord is returned by AppendUnique when a record for the same
// (phone, drawDay) pair already exists. Callers map it to the "alreadyDrawn"
// response by re-reading the existing record; it is never retried.
var ErrDuplicateRecord = errors.New("draw record already exists for this phone and day")

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// SettingRepository defines the interface for campaign setting operations
type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*models.Setting, error)
	UpsertByKey(ctx context.Context, key, value string) error
	FindAll(ctx context.Context) ([]*models.Setting, error)
}

// PrizeRepository defines the interface for prize table operations
type PrizeRepository interface {
	Create(ctx context.Context, prize *models.Prize) error
	FindAll(ctx context.Context) ([]*models.Prize, error)
	DeleteByName(ctx context.Context, name string) error
}

// RecordRepository defines the interface for draw record operations
type RecordRepository interface {
	// AppendUnique inserts the record, enforcing the unique (phone, drawDay)
	// constraint at write time. Returns ErrDuplicateRecord on conflict.
	AppendUnique(ctx context.Context, record *models.DrawRecord) error
	FindByPhone(ctx context.Context, phone string) ([]*models.DrawRecord, error)
	FindByPhoneAndDay(ctx context.Context, phone, day string) (*models.DrawRecord, error)
	FindAll(ctx context.Context) ([]*models.DrawRecord, error)
}
