package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"mealdesk/internal/model"

	"gorm.io/gorm"
)

// searchLimit caps directory results; the desk UI only ever shows a
// short pick list.
const searchLimit = 10

// minQueryLen guards the store against overly broad scans on short
// fragments.
const minQueryLen = 2

type GuestService struct{ db *gorm.DB }

func NewGuestService(db *gorm.DB) *GuestService { return &GuestService{db: db} }

// Search returns up to searchLimit guests whose full name, preferred name
// or external ID contains the query, case-insensitively, ordered by full
// name. Queries shorter than minQueryLen return an empty list without
// touching the store.
func (s *GuestService) Search(ctx context.Context, query string) ([]model.Guest, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return []model.Guest{}, nil
	}

	needle := "%" + query + "%"
	guests := []model.Guest{}
	err := s.db.WithContext(ctx).
		Where("full_name ILIKE ? OR preferred_name ILIKE ? OR external_id ILIKE ?", needle, needle, needle).
		Order("full_name ASC").
		Limit(searchLimit).
		Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("search guests: %w", err)
	}
	return guests, nil
}
