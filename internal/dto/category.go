package dto

import (
	"time"

	"github.com/SscSPs/walleto/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Type  domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Icon  string              `json:"icon"`  // Optional
	Color string              `json:"color"` // Optional
}

// UpdateCategoryRequest replaces the descriptive fields of a category.
type UpdateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// SubCategoryRequest is used to add or rename a subcategory.
type SubCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// SubCategoryResponse defines the data returned for a subcategory.
type SubCategoryResponse struct {
	SubCategoryID string     `json:"subCategoryID"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string                `json:"categoryID"`
	UserID        string                `json:"userID"`
	Name          string                `json:"name"`
	Type          domain.CategoryType   `json:"type"`
	Icon          string                `json:"icon"`
	Color         string                `json:"color"`
	IsActive      bool                  `json:"isActive"`
	SubCategories []SubCategoryResponse `json:"subCategories"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     *time.Time            `json:"updatedAt,omitempty"`
	Version       int64                 `json:"version"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToSubCategoryResponse(s domain.SubCategory) SubCategoryResponse {
	res := SubCategoryResponse{
		SubCategoryID: s.ID().String(),
		Name:          s.Name(),
		Description:   s.Description(),
		IsActive:      s.IsActive(),
		CreatedAt:     s.CreatedAt(),
	}
	if t, ok := s.UpdatedAt(); ok {
		res.UpdatedAt = &t
	}
	return res
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	subs := c.SubCategories()
	res := CategoryResponse{
		CategoryID:    c.ID().String(),
		UserID:        c.UserID().String(),
		Name:          c.Name(),
		Type:          c.Type(),
		Icon:          c.Icon(),
		Color:         c.Color(),
		IsActive:      c.IsActive(),
		SubCategories: make([]SubCategoryResponse, len(subs)),
		CreatedAt:     c.CreatedAt(),
		Version:       c.Version(),
	}
	for i, s := range subs {
		res.SubCategories[i] = ToSubCategoryResponse(s)
	}
	if t, ok := c.UpdatedAt(); ok {
		res.UpdatedAt = &t
	}
	return res
}

func ToListCategoryResponse(categories []*domain.Category) ListCategoriesResponse {
	res := ListCategoriesResponse{Categories: make([]CategoryResponse, len(categories))}
	for i, c := range categories {
		res.Categories[i] = ToCategoryResponse(c)
	}
	return res
}
