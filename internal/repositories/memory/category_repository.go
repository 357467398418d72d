package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]domain.CategorySnapshot
	log        *eventLog
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func newCategoryRepository(log *eventLog) *CategoryRepository {
	return &CategoryRepository{categories: make(map[uuid.UUID]domain.CategorySnapshot), log: log}
}

func (r *CategoryRepository) FindCategoryByID(_ context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	r.mu.RLock()
	snap, ok := r.categories[categoryID]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return domain.RestoreCategory(snap)
}

func (r *CategoryRepository) ListCategoriesByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	return r.list(func(s domain.CategorySnapshot) bool { return s.UserID == userID })
}

func (r *CategoryRepository) ListCategoriesByUserIDAndType(_ context.Context, userID uuid.UUID, categoryType domain.CategoryType) ([]*domain.Category, error) {
	return r.list(func(s domain.CategorySnapshot) bool { return s.UserID == userID && s.Type == categoryType })
}

func (r *CategoryRepository) list(match func(domain.CategorySnapshot) bool) ([]*domain.Category, error) {
	r.mu.RLock()
	var snaps []domain.CategorySnapshot
	for _, s := range r.categories {
		if match(s) {
			snaps = append(snaps, s)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(snaps, func(a, b domain.CategorySnapshot) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(string(a.Type), string(b.Type))
	})

	result := make([]*domain.Category, 0, len(snaps))
	for _, s := range snaps {
		c, err := domain.RestoreCategory(s)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *CategoryRepository) CategoryExists(_ context.Context, userID uuid.UUID, name string, categoryType domain.CategoryType) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nameTaken(userID, name, categoryType, uuid.Nil), nil
}

func (r *CategoryRepository) nameTaken(userID uuid.UUID, name string, categoryType domain.CategoryType, except uuid.UUID) bool {
	name = strings.TrimSpace(name)
	for _, s := range r.categories {
		if s.ID != except && s.UserID == userID && s.Type == categoryType && strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

func (r *CategoryRepository) SaveCategory(_ context.Context, category *domain.Category) error {
	snap := category.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[snap.ID]; ok {
		return fmt.Errorf("%w: category %s already exists", apperrors.ErrDuplicate, snap.ID)
	}
	if r.nameTaken(snap.UserID, snap.Name, snap.Type, uuid.Nil) {
		return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, snap.Name)
	}

	snap.Version = 1
	r.categories[snap.ID] = snap
	r.log.append(category.DomainEvents())
	category.SetVersion(snap.Version)
	return nil
}

func (r *CategoryRepository) UpdateCategory(_ context.Context, category *domain.Category) error {
	snap := category.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.categories[snap.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if stored.Version != snap.Version {
		return fmt.Errorf("%w: category %s was modified concurrently", apperrors.ErrConflict, snap.ID)
	}
	if r.nameTaken(snap.UserID, snap.Name, snap.Type, snap.ID) {
		return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, snap.Name)
	}

	snap.Version++
	r.categories[snap.ID] = snap
	r.log.append(category.DomainEvents())
	category.SetVersion(snap.Version)
	return nil
}
