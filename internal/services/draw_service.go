package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/linyuchen/phone-lottery-backend/internal/normalize"
	"github.com/linyuchen/phone-lottery-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// ErrNoPrizes is returned when a draw is requested but the prize table is
// empty. It is distinct from storage failures so handlers can report it
// without masking upstream outages.
var ErrNoPrizes = errors.New("no prizes configured")

// drawTimeLayout is the format draw times are recorded in. It must stay
// parseable by normalize.ParseDay.
const drawTimeLayout = "2006/1/2 15:04:05"

const dayLayout = "2006-01-02"

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

// DrawServiceImpl implements the deduplication-and-draw core: duplicate
// check against the campaign deadline day, weighted prize selection, and
// exactly-once recording through the unique-append constraint.
type DrawServiceImpl struct {
	settingRepo repositories.SettingRepository
	prizeRepo   repositories.PrizeRepository
	recordRepo  repositories.RecordRepository
	loc         *time.Location

	// Injection points for tests. rand.Float64 is safe for concurrent use.
	now       func() time.Time
	randFloat func() float64
}

// NewDrawService creates a new DrawServiceImpl operating in the campaign
// timezone loc.
func NewDrawService(
	settingRepo repositories.SettingRepository,
	prizeRepo repositories.PrizeRepository,
	recordRepo repositories.RecordRepository,
	loc *time.Location,
) *DrawServiceImpl {
	return &DrawServiceImpl{
		settingRepo: settingRepo,
		prizeRepo:   prizeRepo,
		recordRepo:  recordRepo,
		loc:         loc,
		now:         time.Now,
		randFloat:   rand.Float64,
	}
}

// CheckDrawOnDeadline reports whether the phone already drew a prize on the
// campaign deadline day. A missing or unparseable deadline never blocks a
// draw: it reports no duplicate.
func (s *DrawServiceImpl) CheckDrawOnDeadline(ctx context.Context, phone string) (*models.DrawStatus, error) {
	return s.findDuplicate(ctx, normalize.Phone(phone))
}

// findDuplicate scans the phone's records for one whose draw day equals the
// deadline day. On a match it returns the stored strings verbatim so the
// client sees exactly what was recorded.
func (s *DrawServiceImpl) findDuplicate(ctx context.Context, phoneNorm string) (*models.DrawStatus, error) {
	setting, err := s.settingRepo.FindByKey(ctx, models.SettingDeadline)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.DrawStatus{Exists: false}, nil
		}
		return nil, fmt.Errorf("failed to fetch deadline setting: %w", err)
	}

	deadlineDay, ok := normalize.ParseDay(setting.Value, s.loc)
	if !ok {
		slog.Warn("Deadline setting is unparseable, treating as no deadline", "deadline", setting.Value)
		return &models.DrawStatus{Exists: false}, nil
	}

	records, err := s.recordRepo.FindByPhone(ctx, phoneNorm)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for duplicate check: %w", err)
	}

	for _, record := range records {
		// Rows written before phone normalization was introduced may still
		// carry leading zeros.
		if normalize.Phone(record.Phone) != phoneNorm {
			continue
		}
		recordDay, ok := normalize.ParseDay(record.DrawTime, s.loc)
		if !ok {
			slog.Warn("Skipping record with unparseable draw time", "drawTime", record.DrawTime)
			continue
		}
		if recordDay.Equal(deadlineDay) {
			return &models.DrawStatus{Exists: true, Time: record.DrawTime, Prize: record.Prize}, nil
		}
	}
	return &models.DrawStatus{Exists: false}, nil
}

// RecordDraw persists a draw with a caller-supplied prize name. The returned
// status has Exists=true when the phone already drew, carrying the earlier
// record's time and prize; Exists=false means a new record was written.
func (s *DrawServiceImpl) RecordDraw(ctx context.Context, phone, prize string) (*models.DrawStatus, error) {
	phoneNorm := normalize.Phone(phone)

	status, err := s.findDuplicate(ctx, phoneNorm)
	if err != nil {
		return nil, err
	}
	if status.Exists {
		return status, nil
	}

	_, status, err = s.appendRecord(ctx, phoneNorm, prize)
	return status, err
}

// Draw runs the primary flow: duplicate check, weighted selection from the
// prize table, and exactly-once recording. When the phone already drew, the
// returned status reports the existing record and no new draw happens.
func (s *DrawServiceImpl) Draw(ctx context.Context, phone string) (*models.DrawResult, *models.DrawStatus, error) {
	phoneNorm := normalize.Phone(phone)

	status, err := s.findDuplicate(ctx, phoneNorm)
	if err != nil {
		return nil, nil, err
	}
	if status.Exists {
		return nil, status, nil
	}

	prizes, err := s.prizeRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch prize table: %w", err)
	}
	prize, err := s.selectPrize(prizes)
	if err != nil {
		return nil, nil, err
	}

	record, status, err := s.appendRecord(ctx, phoneNorm, prize.Name)
	if err != nil {
		return nil, nil, err
	}
	if status.Exists {
		return nil, status, nil
	}
	slog.Info("Draw recorded", "phone", maskPhone(phoneNorm), "prize", record.Prize, "expireAt", record.ExpireAt)
	return &models.DrawResult{Prize: record.Prize, Time: record.DrawTime, Expire: record.ExpireAt}, status, nil
}

// appendRecord writes one draw record guarded by the unique (phone, drawDay)
// constraint. A conflict is not retried: the existing record is re-read and
// reported as already drawn, which is what makes concurrent double-submits
// collapse into a single persisted draw.
func (s *DrawServiceImpl) appendRecord(ctx context.Context, phoneNorm, prize string) (*models.DrawRecord, *models.DrawStatus, error) {
	now := s.now().In(s.loc)
	record := &models.DrawRecord{
		Phone:    phoneNorm,
		DrawTime: now.Format(drawTimeLayout),
		DrawDay:  now.Format(dayLayout),
		Prize:    prize,
		ExpireAt: now.AddDate(0, 0, s.redemptionDays(ctx)).Format(dayLayout),
	}

	err := s.recordRepo.AppendUnique(ctx, record)
	if err == nil {
		return record, &models.DrawStatus{Exists: false}, nil
	}
	if !errors.Is(err, repositories.ErrDuplicateRecord) {
		return nil, nil, fmt.Errorf("failed to append draw record: %w", err)
	}

	existing, err := s.recordRepo.FindByPhoneAndDay(ctx, phoneNorm, record.DrawDay)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to re-read record after append conflict: %w", err)
	}
	slog.Info("Append conflict resolved to existing record", "phone", maskPhone(phoneNorm), "drawDay", record.DrawDay)
	return existing, &models.DrawStatus{Exists: true, Time: existing.DrawTime, Prize: existing.Prize}, nil
}

// selectPrize picks one prize by weighted random sampling over the rates.
// When every rate is zero the first listed prize wins; that rule comes from
// the campaign requirements, not from the sampling itself.
func (s *DrawServiceImpl) selectPrize(prizes []*models.Prize) (*models.Prize, error) {
	if len(prizes) == 0 {
		return nil, ErrNoPrizes
	}

	var total float64
	for _, p := range prizes {
		total += p.Rate
	}
	if total <= 0 {
		return prizes[0], nil
	}

	r := s.randFloat() * total
	for _, p := range prizes {
		if r < p.Rate {
			return p, nil
		}
		r -= p.Rate
	}
	// Float accumulation can leave r a hair above the last band.
	return prizes[len(prizes)-1], nil
}

// redemptionDays resolves the redemption validity window. Absent or
// unparseable values fall back to 0 days.
func (s *DrawServiceImpl) redemptionDays(ctx context.Context) int {
	setting, err := s.settingRepo.FindByKey(ctx, models.SettingValidDays)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			slog.Warn("Failed to fetch validDays setting, using 0", "error", err)
		}
		return 0
	}
	days, err := strconv.Atoi(setting.Value)
	if err != nil || days < 0 {
		slog.Warn("validDays setting is unparseable, using 0", "validDays", setting.Value)
		return 0
	}
	return days
}

// QueryHistory returns every draw record for the phone, oldest first. Missing
// fields project to empty strings.
func (s *DrawServiceImpl) QueryHistory(ctx context.Context, phone string) ([]models.HistoryEntry, error) {
	records, err := s.recordRepo.FindByPhone(ctx, normalize.Phone(phone))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draw history: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, models.HistoryEntry{
			Time:    record.DrawTime,
			Phone:   record.Phone,
			Prize:   record.Prize,
			Expire:  record.ExpireAt,
			Claimed: record.ClaimedAt,
		})
	}
	return entries, nil
}

// Records returns every draw record for the admin view.
func (s *DrawServiceImpl) Records(ctx context.Context) ([]*models.DrawRecord, error) {
	records, err := s.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draw records: %w", err)
	}
	return records, nil
}

// maskPhone masks a phone number for logging (show first 3 and last 3 digits)
func maskPhone(phone string) string {
	if len(phone) > 6 {
		return phone[:3] + "******" + phone[len(phone)-3:]
	}
	return "******"
}
