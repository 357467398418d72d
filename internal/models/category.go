package models

import "github.com/google/uuid"

// CategoryType is INCOME or EXPENSE.
type CategoryType string

// Category is a row of the categories table.
type Category struct {
	CategoryID   uuid.UUID    `db:"category_id"`
	UserID       uuid.UUID    `db:"user_id"`
	Name         string       `db:"name"`
	CategoryType CategoryType `db:"category_type"`
	Icon         string       `db:"icon"`
	Color        string       `db:"color"`
	IsActive     bool         `db:"is_active"`
	TimestampFields
	Version int64 `db:"version"`
}

// SubCategory is a row of the subcategories table, owned by exactly one category.
type SubCategory struct {
	SubCategoryID uuid.UUID `db:"subcategory_id"`
	CategoryID    uuid.UUID `db:"category_id"` // FK -> categories.category_id
	Position      int       `db:"position"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	IsActive      bool      `db:"is_active"`
	TimestampFields
}
