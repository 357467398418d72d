package services

import (
	"context"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/google/uuid"
)

// CategoryReaderSvc defines read operations for categories.
type CategoryReaderSvc interface {
	GetCategoryByID(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error)

	// ListCategories retrieves the user's categories, optionally restricted to one type.
	ListCategories(ctx context.Context, params dto.ListCategoriesParams, userID uuid.UUID) ([]*domain.Category, error)
}

// CategoryWriterSvc defines operations on the category itself.
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID uuid.UUID) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, req dto.UpdateCategoryRequest, userID uuid.UUID) (*domain.Category, error)
	ActivateCategory(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error)

	// DeactivateCategory also deactivates every active subcategory.
	DeactivateCategory(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error)
}

// SubCategorySvc defines operations on the subcategories of a category.
type SubCategorySvc interface {
	AddSubCategory(ctx context.Context, categoryID uuid.UUID, req dto.SubCategoryRequest, userID uuid.UUID) (*domain.SubCategory, error)
	UpdateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, req dto.SubCategoryRequest, userID uuid.UUID) (*domain.SubCategory, error)
	ActivateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, userID uuid.UUID) (*domain.SubCategory, error)
	DeactivateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, userID uuid.UUID) (*domain.SubCategory, error)
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
	SubCategorySvc
}
