package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	"github.com/SscSPs/walleto/internal/models"
	"github.com/SscSPs/walleto/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category aggregates.
func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryWithTx
var _ portsrepo.CategoryRepositoryWithTx = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, user_id, name, category_type, icon, color, is_active, created_at, updated_at, version`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.CategoryType,
		&m.Icon,
		&m.Color,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Version,
	)
	return m, err
}

// FindCategoryByID loads the category with its subcategories.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	subs, err := r.loadSubCategories(ctx, []uuid.UUID{categoryID})
	if err != nil {
		return nil, err
	}
	return restoreCategory(m, subs[categoryID])
}

// ListCategoriesByUserID loads every category of the user ordered by name.
func (r *PgxCategoryRepository) ListCategoriesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 ORDER BY lower(name), category_type;`
	return r.listCategories(ctx, query, userID)
}

// ListCategoriesByUserIDAndType loads the user's categories of one type ordered by name.
func (r *PgxCategoryRepository) ListCategoriesByUserIDAndType(ctx context.Context, userID uuid.UUID, categoryType domain.CategoryType) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 AND category_type = $2 ORDER BY lower(name);`
	return r.listCategories(ctx, query, userID, string(categoryType))
}

func (r *PgxCategoryRepository) listCategories(ctx context.Context, query string, args ...any) ([]*domain.Category, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	if len(categories) == 0 {
		return []*domain.Category{}, nil
	}

	ids := make([]uuid.UUID, len(categories))
	for i, m := range categories {
		ids[i] = m.CategoryID
	}
	subs, err := r.loadSubCategories(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Category, 0, len(categories))
	for _, m := range categories {
		c, err := restoreCategory(m, subs[m.CategoryID])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// CategoryExists reports whether the user has a category with this name and type, ignoring case.
func (r *PgxCategoryRepository) CategoryExists(ctx context.Context, userID uuid.UUID, name string, categoryType domain.CategoryType) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE user_id = $1 AND lower(name) = lower($2) AND category_type = $3);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, name, string(categoryType)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

// SaveCategory inserts a new category, its subcategories and its pending events.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	snap := category.Snapshot()
	m := mapping.ToModelCategory(snap)
	const version = 1

	err := withTx(ctx, r, func(tx pgx.Tx) error {
		query := `
			INSERT INTO categories (` + categoryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		_, err := tx.Exec(ctx, query,
			m.CategoryID,
			m.UserID,
			m.Name,
			m.CategoryType,
			m.Icon,
			m.Color,
			m.IsActive,
			m.CreatedAt,
			m.UpdatedAt,
			version,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, m.Name)
			}
			return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
		}

		batch := &pgx.Batch{}
		queueSubCategories(batch, mapping.ToModelSubCategories(snap))
		if err := appendEvents(batch, category.DomainEvents()); err != nil {
			return err
		}
		return sendBatch(ctx, tx, batch)
	})
	if err != nil {
		return err
	}
	category.SetVersion(version)
	return nil
}

// UpdateCategory writes the category row guarded by its version and upserts its subcategories.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	snap := category.Snapshot()
	m := mapping.ToModelCategory(snap)
	next := m.Version + 1

	err := withTx(ctx, r, func(tx pgx.Tx) error {
		query := `
			UPDATE categories
			SET name = $1, icon = $2, color = $3, is_active = $4, updated_at = $5, version = $6
			WHERE category_id = $7 AND version = $8;
		`
		tag, err := tx.Exec(ctx, query,
			m.Name,
			m.Icon,
			m.Color,
			m.IsActive,
			m.UpdatedAt,
			next,
			m.CategoryID,
			m.Version,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, m.Name)
			}
			return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: category %s was modified concurrently", apperrors.ErrConflict, m.CategoryID)
		}

		batch := &pgx.Batch{}
		queueSubCategories(batch, mapping.ToModelSubCategories(snap))
		if err := appendEvents(batch, category.DomainEvents()); err != nil {
			return err
		}
		if err := sendBatch(ctx, tx, batch); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: subcategory name already used in category %s", apperrors.ErrDuplicate, m.CategoryID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	category.SetVersion(next)
	return nil
}

func queueSubCategories(batch *pgx.Batch, subs []models.SubCategory) {
	for _, s := range subs {
		batch.Queue(`
			INSERT INTO subcategories (subcategory_id, category_id, position, name, description, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (subcategory_id) DO UPDATE
			SET name = EXCLUDED.name, description = EXCLUDED.description, is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at;`,
			s.SubCategoryID,
			s.CategoryID,
			s.Position,
			s.Name,
			s.Description,
			s.IsActive,
			s.CreatedAt,
			s.UpdatedAt,
		)
	}
}

// loadSubCategories returns the subcategories of each category in insertion order.
func (r *PgxCategoryRepository) loadSubCategories(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID][]models.SubCategory, error) {
	query := `
		SELECT subcategory_id, category_id, position, name, description, is_active, created_at, updated_at
		FROM subcategories
		WHERE category_id = ANY($1)
		ORDER BY category_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query subcategories: %w", err)
	}
	defer rows.Close()

	subs := make(map[uuid.UUID][]models.SubCategory, len(categoryIDs))
	for rows.Next() {
		var s models.SubCategory
		if err := rows.Scan(
			&s.SubCategoryID,
			&s.CategoryID,
			&s.Position,
			&s.Name,
			&s.Description,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subcategory row: %w", err)
		}
		subs[s.CategoryID] = append(subs[s.CategoryID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subcategory rows: %w", err)
	}
	return subs, nil
}

func restoreCategory(m models.Category, subs []models.SubCategory) (*domain.Category, error) {
	c, err := domain.RestoreCategory(mapping.ToCategorySnapshot(m, subs))
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("stored category %s is corrupt", m.CategoryID), err)
	}
	return c, nil
}
