package repositories

import (
	"context"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/google/uuid"
)

// CategoryReader defines read operations for category aggregates
type CategoryReader interface {
	// FindCategoryByID loads the category with all of its subcategories.
	// Returns apperrors.ErrNotFound when no such category exists.
	FindCategoryByID(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)

	// ListCategoriesByUserID loads every category owned by userID ordered by name.
	ListCategoriesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)

	// ListCategoriesByUserIDAndType is ListCategoriesByUserID restricted to one type.
	ListCategoriesByUserIDAndType(ctx context.Context, userID uuid.UUID, categoryType domain.CategoryType) ([]*domain.Category, error)

	// CategoryExists reports whether userID already has a category with this name and type.
	// Names are compared ignoring case.
	CategoryExists(ctx context.Context, userID uuid.UUID, name string, categoryType domain.CategoryType) (bool, error)
}

// CategoryWriter defines write operations for category aggregates
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category *domain.Category) error

	// UpdateCategory persists changes to an existing category and its subcategories.
	// Returns apperrors.ErrConflict if the stored version moved on.
	UpdateCategory(ctx context.Context, category *domain.Category) error
}

// CategoryRepositoryFacade combines all category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
