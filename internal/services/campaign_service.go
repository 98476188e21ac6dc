package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/linyuchen/phone-lottery-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// TitlePlaceholder is returned when no campaign title has been configured.
const TitlePlaceholder = "(未設定)"

// Compile-time check to ensure CampaignServiceImpl implements CampaignService
var _ CampaignService = (*CampaignServiceImpl)(nil)

// CampaignServiceImpl serves campaign metadata from the settings and prize
// tables. Settings are maintained by operators through the admin endpoints
// and read-only everywhere else.
type CampaignServiceImpl struct {
	settingRepo repositories.SettingRepository
	prizeRepo   repositories.PrizeRepository
}

// NewCampaignService creates a new CampaignServiceImpl
func NewCampaignService(settingRepo repositories.SettingRepository, prizeRepo repositories.PrizeRepository) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		settingRepo: settingRepo,
		prizeRepo:   prizeRepo,
	}
}

// Title returns the campaign title, or the placeholder when unset.
func (s *CampaignServiceImpl) Title(ctx context.Context) (string, error) {
	return s.settingOr(ctx, models.SettingTitle, TitlePlaceholder)
}

// Deadline returns the deadline string exactly as stored; the client decides
// how to present it.
func (s *CampaignServiceImpl) Deadline(ctx context.Context) (string, error) {
	return s.settingOr(ctx, models.SettingDeadline, "")
}

// Description returns the activity description, or empty when unset.
func (s *CampaignServiceImpl) Description(ctx context.Context) (string, error) {
	return s.settingOr(ctx, models.SettingDescription, "")
}

func (s *CampaignServiceImpl) settingOr(ctx context.Context, key, fallback string) (string, error) {
	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fallback, nil
		}
		return "", fmt.Errorf("failed to fetch setting %q: %w", key, err)
	}
	return setting.Value, nil
}

// Prizes returns the prize table in insertion order.
func (s *CampaignServiceImpl) Prizes(ctx context.Context) ([]models.PrizeView, error) {
	prizes, err := s.prizeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prize table: %w", err)
	}
	views := make([]models.PrizeView, 0, len(prizes))
	for _, p := range prizes {
		views = append(views, models.PrizeView{Name: p.Name, Rate: p.Rate})
	}
	return views, nil
}

// Settings returns all settings for the admin view.
func (s *CampaignServiceImpl) Settings(ctx context.Context) ([]*models.Setting, error) {
	settings, err := s.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return settings, nil
}

// UpsertSetting creates or replaces a setting value.
func (s *CampaignServiceImpl) UpsertSetting(ctx context.Context, key, value string) error {
	if err := s.settingRepo.UpsertByKey(ctx, key, value); err != nil {
		return err
	}
	slog.Info("Setting updated", "key", key)
	return nil
}

// CreatePrize appends a prize to the table.
func (s *CampaignServiceImpl) CreatePrize(ctx context.Context, name string, rate float64) error {
	if rate < 0 {
		return errors.New("prize rate must be non-negative")
	}
	prize := &models.Prize{Name: name, Rate: rate}
	if err := s.prizeRepo.Create(ctx, prize); err != nil {
		return fmt.Errorf("failed to create prize: %w", err)
	}
	slog.Info("Prize created", "name", name, "rate", rate)
	return nil
}

// DeletePrize removes a prize by display name.
func (s *CampaignServiceImpl) DeletePrize(ctx context.Context, name string) error {
	if err := s.prizeRepo.DeleteByName(ctx, name); err != nil {
		return err
	}
	slog.Info("Prize deleted", "name", name)
	return nil
}
