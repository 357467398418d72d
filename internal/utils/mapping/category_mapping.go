package mapping

import (
	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/models"
)

// ToModelCategory converts a category snapshot to its row.
func ToModelCategory(s domain.CategorySnapshot) models.Category {
	return models.Category{
		CategoryID:   s.ID,
		UserID:       s.UserID,
		Name:         s.Name,
		CategoryType: models.CategoryType(s.Type),
		Icon:         s.Icon,
		Color:        s.Color,
		IsActive:     s.IsActive,
		TimestampFields: models.TimestampFields{
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		},
		Version: s.Version,
	}
}

// ToModelSubCategories converts the subcategories of a snapshot to rows.
func ToModelSubCategories(s domain.CategorySnapshot) []models.SubCategory {
	rows := make([]models.SubCategory, len(s.SubCategories))
	for i, sc := range s.SubCategories {
		rows[i] = models.SubCategory{
			SubCategoryID: sc.ID,
			CategoryID:    s.ID,
			Position:      i,
			Name:          sc.Name,
			Description:   sc.Description,
			IsActive:      sc.IsActive,
			TimestampFields: models.TimestampFields{
				CreatedAt: sc.CreatedAt,
				UpdatedAt: sc.UpdatedAt,
			},
		}
	}
	return rows
}

// ToCategorySnapshot rebuilds a snapshot from the category row and its subcategory rows.
func ToCategorySnapshot(m models.Category, subs []models.SubCategory) domain.CategorySnapshot {
	s := domain.CategorySnapshot{
		ID:            m.CategoryID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          domain.CategoryType(m.CategoryType),
		Icon:          m.Icon,
		Color:         m.Color,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Version:       m.Version,
		SubCategories: make([]domain.SubCategorySnapshot, len(subs)),
	}
	for i, sc := range subs {
		s.SubCategories[i] = domain.SubCategorySnapshot{
			ID:          sc.SubCategoryID,
			Name:        sc.Name,
			Description: sc.Description,
			IsActive:    sc.IsActive,
			CreatedAt:   sc.CreatedAt,
			UpdatedAt:   sc.UpdatedAt,
		}
	}
	return s
}
