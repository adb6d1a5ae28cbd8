package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mealdesk/internal/civildate"
	"mealdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvalidInput rejects a submission before any store access.
	ErrInvalidInput = errors.New("invalid guest or quantity")
	// ErrDuplicateMeal is the conflict outcome: the guest already has a
	// guest-category record for today's service date.
	ErrDuplicateMeal = errors.New("guest already received a meal today")
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// Record persists one guest-category attendance row for today's service
// date. At most one such row may exist per guest per day: a prior row
// returns ErrDuplicateMeal, and the partial unique index on
// meal_attendance turns a lost check-then-insert race into the same
// outcome.
func (s *MealService) Record(ctx context.Context, guestID string, quantity int) error {
	if guestID == "" || (quantity != 1 && quantity != 2) {
		return ErrInvalidInput
	}

	today := civildate.Today()

	var count int64
	err := s.db.WithContext(ctx).Model(&model.MealAttendance{}).
		Where("guest_id = ? AND served_on = ? AND meal_type = ?", guestID, today, model.MealTypeGuest).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check existing meal: %w", err)
	}
	if count > 0 {
		return ErrDuplicateMeal
	}

	att := model.MealAttendance{
		ID:         uuid.NewString(),
		GuestID:    &guestID,
		MealType:   model.MealTypeGuest,
		Quantity:   &quantity,
		ServedOn:   today,
		RecordedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateMeal
		}
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// TodayTotal sums the quantities of today's guest-category records.
// Rows without a quantity count as zero; no rows at all yields 0.
func (s *MealService) TodayTotal(ctx context.Context) (int, error) {
	var total int
	err := s.db.WithContext(ctx).Model(&model.MealAttendance{}).
		Where("served_on = ? AND meal_type = ?", civildate.Today(), model.MealTypeGuest).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum today's meals: %w", err)
	}
	return total, nil
}
