package services

import (
	"context"

	"github.com/linyuchen/phone-lottery-backend/internal/models"
)

// CampaignService defines the interface for campaign metadata operations
type CampaignService interface {
	// Title returns the campaign title, or the "(未設定)" placeholder when unset
	Title(ctx context.Context) (string, error)

	// Deadline returns the raw stored deadline string (not normalized), or
	// empty when unset
	Deadline(ctx context.Context) (string, error)

	// Description returns the activity description, or empty when unset
	Description(ctx context.Context) (string, error)

	// Prizes returns the prize table in insertion order
	Prizes(ctx context.Context) ([]models.PrizeView, error)

	// Settings returns all campaign settings (admin)
	Settings(ctx context.Context) ([]*models.Setting, error)

	// UpsertSetting creates or replaces a setting value (admin)
	UpsertSetting(ctx context.Context, key, value string) error

	// CreatePrize appends a prize to the table (admin)
	CreatePrize(ctx context.Context, name string, rate float64) error

	// DeletePrize removes a prize by name (admin)
	DeletePrize(ctx context.Context, name string) error
}

// DrawService defines the interface for the deduplication-and-draw core
type DrawService interface {
	// CheckDrawOnDeadline reports whether the phone already drew on the
	// campaign deadline day
	CheckDrawOnDeadline(ctx context.Context, phone string) (*models.DrawStatus, error)

	// RecordDraw persists a draw with a caller-supplied prize. Returns the
	// existing record's status when the phone already drew.
	RecordDraw(ctx context.Context, phone, prize string) (*models.DrawStatus, error)

	// Draw runs the full flow: duplicate check, weighted prize selection,
	// and exactly-once recording
	Draw(ctx context.Context, phone string) (*models.DrawResult, *models.DrawStatus, error)

	// QueryHistory returns all draw records for a phone, oldest first
	QueryHistory(ctx context.Context, phone string) ([]models.HistoryEntry, error)

	// Records returns every draw record (admin)
	Records(ctx context.Context) ([]*models.DrawRecord, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	// Login verifies operator credentials and returns a signed JWT
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
