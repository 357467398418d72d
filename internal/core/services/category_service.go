package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/walleto/internal/core/ports/services"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	locks        *keyedLock
}

// CategoryServiceOption is a functional option for configuring the category service
type CategoryServiceOption func(*categoryService)

// WithCategoryDispatcher sets where domain events go after a successful save
func WithCategoryDispatcher(d portsevents.EventDispatcher) CategoryServiceOption {
	return func(s *categoryService) {
		s.Dispatcher = d
	}
}

// NewCategoryService creates a new category service with the provided options
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...CategoryServiceOption) portssvc.CategorySvcFacade {
	svc := &categoryService{
		categoryRepo: repo,
		locks:        newKeyedLock(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID uuid.UUID) (*domain.Category, error) {
	category, err := domain.NewCategory(userID, req.Name, req.Type, req.Icon, req.Color)
	if err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.CategoryExists(ctx, userID, category.Name(), category.Type())
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing category",
			slog.String("user_id", userID.String()))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("category '%s' of type %s already exists: %w", category.Name(), category.Type(), apperrors.ErrDuplicate)
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("category_id", category.ID().String()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	s.PublishEvents(ctx, category)

	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.ID().String()),
		slog.String("type", string(category.Type())))
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID",
				slog.String("category_id", categoryID.String()))
		}
		return nil, err
	}
	if category.UserID() != userID {
		s.LogDebug(ctx, "Category found but belongs to a different user",
			slog.String("category_id", categoryID.String()),
			slog.String("requested_by", userID.String()))
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams, userID uuid.UUID) ([]*domain.Category, error) {
	var (
		categories []*domain.Category
		err        error
	)
	if params.Type != "" {
		categoryType := domain.CategoryType(params.Type)
		if !categoryType.Valid() {
			return nil, &domain.Error{Kind: domain.KindInvalidArgument, Field: "type", Message: "unknown category type '" + params.Type + "'"}
		}
		categories, err = s.categoryRepo.ListCategoriesByUserIDAndType(ctx, userID, categoryType)
	} else {
		categories, err = s.categoryRepo.ListCategoriesByUserID(ctx, userID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories",
			slog.String("user_id", userID.String()),
			slog.String("type", params.Type))
		return nil, fmt.Errorf("failed to list categories for user %s: %w", userID, err)
	}
	if categories == nil {
		return []*domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req dto.UpdateCategoryRequest, userID uuid.UUID) (*domain.Category, error) {
	return s.mutate(ctx, categoryID, userID, "update_info", func(c *domain.Category) error {
		return c.UpdateInfo(req.Name, req.Icon, req.Color)
	})
}

func (s *categoryService) ActivateCategory(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error) {
	return s.mutate(ctx, categoryID, userID, "activate", (*domain.Category).Activate)
}

func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error) {
	return s.mutate(ctx, categoryID, userID, "deactivate", (*domain.Category).Deactivate)
}

func (s *categoryService) AddSubCategory(ctx context.Context, categoryID uuid.UUID, req dto.SubCategoryRequest, userID uuid.UUID) (*domain.SubCategory, error) {
	var sub domain.SubCategory
	_, err := s.mutate(ctx, categoryID, userID, "add_subcategory", func(c *domain.Category) error {
		var err error
		sub, err = c.AddSubCategory(req.Name, req.Description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *categoryService) UpdateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, req dto.SubCategoryRequest, userID uuid.UUID) (*domain.SubCategory, error) {
	return s.mutateSub(ctx, categoryID, subCategoryID, userID, "update_subcategory", func(c *domain.Category) error {
		return c.UpdateSubCategory(subCategoryID, req.Name, req.Description)
	})
}

func (s *categoryService) ActivateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, userID uuid.UUID) (*domain.SubCategory, error) {
	return s.mutateSub(ctx, categoryID, subCategoryID, userID, "activate_subcategory", func(c *domain.Category) error {
		return c.ActivateSubCategory(subCategoryID)
	})
}

func (s *categoryService) DeactivateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, userID uuid.UUID) (*domain.SubCategory, error) {
	return s.mutateSub(ctx, categoryID, subCategoryID, userID, "deactivate_subcategory", func(c *domain.Category) error {
		return c.DeactivateSubCategory(subCategoryID)
	})
}

func (s *categoryService) mutateSub(ctx context.Context, categoryID, subCategoryID, userID uuid.UUID, op string, fn func(*domain.Category) error) (*domain.SubCategory, error) {
	category, err := s.mutate(ctx, categoryID, userID, op, fn)
	if err != nil {
		return nil, err
	}
	sub, _ := category.SubCategory(subCategoryID)
	return &sub, nil
}

// mutate loads the caller's category, applies fn and persists the result.
func (s *categoryService) mutate(ctx context.Context, categoryID, userID uuid.UUID, op string, fn func(*domain.Category) error) (*domain.Category, error) {
	unlock := s.locks.Lock(categoryID)
	defer unlock()

	category, err := s.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	if err := fn(category); err != nil {
		s.LogDebug(ctx, "Category operation rejected",
			slog.String("operation", op),
			slog.String("category_id", categoryID.String()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to update category",
			slog.String("operation", op),
			slog.String("category_id", categoryID.String()))
		return nil, err
	}
	s.PublishEvents(ctx, category)

	s.LogInfo(ctx, "Category updated successfully",
		slog.String("operation", op),
		slog.String("category_id", categoryID.String()))
	return category, nil
}
