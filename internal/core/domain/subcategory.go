package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubCategory belongs to exactly one Category and is only changed through it.
type SubCategory struct {
	id          uuid.UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   *time.Time
}

func newSubCategory(name, description string) (*SubCategory, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, invalidArgument("name", "subcategory name cannot be empty")
	}
	return &SubCategory{
		id:          uuid.New(),
		name:        n,
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now(),
	}, nil
}

func (s SubCategory) ID() uuid.UUID        { return s.id }
func (s SubCategory) Name() string         { return s.name }
func (s SubCategory) Description() string  { return s.description }
func (s SubCategory) IsActive() bool       { return s.isActive }
func (s SubCategory) CreatedAt() time.Time { return s.createdAt }

func (s SubCategory) UpdatedAt() (time.Time, bool) {
	if s.updatedAt == nil {
		return time.Time{}, false
	}
	return *s.updatedAt, true
}

// update expects name to be validated and trimmed by the parent.
func (s *SubCategory) update(name, description string, at time.Time) {
	s.name = name
	s.description = strings.TrimSpace(description)
	s.updatedAt = &at
}

func (s *SubCategory) deactivate(at time.Time) error {
	if !s.isActive {
		return invalidState(KindInvalidState, "subcategory is already deactivated")
	}
	s.isActive = false
	s.updatedAt = &at
	return nil
}

func (s *SubCategory) activate(at time.Time) error {
	if s.isActive {
		return invalidState(KindInvalidState, "subcategory is already active")
	}
	s.isActive = true
	s.updatedAt = &at
	return nil
}
