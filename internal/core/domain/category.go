package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CategoryType says which kind of transaction a category classifies.
type CategoryType string

const (
	IncomeCategory  CategoryType = "INCOME"
	ExpenseCategory CategoryType = "EXPENSE"
)

func (t CategoryType) Valid() bool {
	return t == IncomeCategory || t == ExpenseCategory
}

// Accepts reports whether transactions of type tt may be filed under a category of type t.
func (t CategoryType) Accepts(tt TransactionType) bool {
	return string(t) == string(tt)
}

// Category is the aggregate owning a set of subcategories whose names are unique
// regardless of case.
type Category struct {
	aggregateRoot
	id            uuid.UUID
	userID        uuid.UUID
	name          string
	categoryType  CategoryType
	icon          string
	color         string
	isActive      bool
	subCategories []*SubCategory
	createdAt     time.Time
	updatedAt     *time.Time
}

var _ AggregateRoot = (*Category)(nil)

// NewCategory creates an active category. Icon and color are optional and may be empty.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, icon, color string) (*Category, error) {
	if userID == uuid.Nil {
		return nil, invalidArgument("userId", "user ID cannot be empty")
	}
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, invalidArgument("name", "category name cannot be empty")
	}
	if !categoryType.Valid() {
		return nil, invalidArgument("type", "unknown category type %q", string(categoryType))
	}

	c := &Category{
		id:           uuid.New(),
		userID:       userID,
		name:         n,
		categoryType: categoryType,
		icon:         strings.TrimSpace(icon),
		color:        strings.TrimSpace(color),
		isActive:     true,
		createdAt:    now(),
	}
	c.raise(CategoryCreated{eventMeta: newEventMeta(), CategoryID: c.id, UserID: userID, Name: n, Type: categoryType})
	return c, nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) UserID() uuid.UUID    { return c.userID }
func (c *Category) Name() string         { return c.name }
func (c *Category) Type() CategoryType   { return c.categoryType }
func (c *Category) Icon() string         { return c.icon }
func (c *Category) Color() string        { return c.color }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

func (c *Category) UpdatedAt() (time.Time, bool) {
	if c.updatedAt == nil {
		return time.Time{}, false
	}
	return *c.updatedAt, true
}

// SubCategories returns copies of all subcategories, active or not, in insertion order.
func (c *Category) SubCategories() []SubCategory {
	out := make([]SubCategory, len(c.subCategories))
	for i, s := range c.subCategories {
		out[i] = *s
	}
	return out
}

// ActiveSubCategories returns copies of the active subcategories only.
func (c *Category) ActiveSubCategories() []SubCategory {
	var out []SubCategory
	for _, s := range c.subCategories {
		if s.isActive {
			out = append(out, *s)
		}
	}
	return out
}

// SubCategory looks up a subcategory by id.
func (c *Category) SubCategory(id uuid.UUID) (SubCategory, bool) {
	s := c.findSubCategory(id)
	if s == nil {
		return SubCategory{}, false
	}
	return *s, true
}

func (c *Category) findSubCategory(id uuid.UUID) *SubCategory {
	for _, s := range c.subCategories {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (c *Category) mustFindSubCategory(id uuid.UUID) (*SubCategory, error) {
	s := c.findSubCategory(id)
	if s == nil {
		return nil, &Error{Kind: KindNotFound, Field: "subCategoryId", Message: "subcategory with ID '" + id.String() + "' not found"}
	}
	return s, nil
}

// nameTaken reports whether a sibling other than except already uses name, ignoring case.
func (c *Category) nameTaken(name string, except uuid.UUID) bool {
	for _, s := range c.subCategories {
		if s.id != except && strings.EqualFold(s.name, name) {
			return true
		}
	}
	return false
}

func (c *Category) touch(t time.Time) {
	c.updatedAt = &t
}

func (c *Category) UpdateInfo(name, icon, color string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return invalidArgument("name", "category name cannot be empty")
	}
	c.name = n
	c.icon = strings.TrimSpace(icon)
	c.color = strings.TrimSpace(color)
	c.touch(now())
	c.raise(CategoryUpdated{eventMeta: newEventMeta(), CategoryID: c.id, NewName: n})
	return nil
}

// AddSubCategory appends a new active subcategory and returns a copy of it.
// Inactive siblings still reserve their names.
func (c *Category) AddSubCategory(name, description string) (SubCategory, error) {
	if !c.isActive {
		return SubCategory{}, invalidState(KindInactiveParent, "cannot add subcategory to inactive category")
	}
	s, err := newSubCategory(name, description)
	if err != nil {
		return SubCategory{}, err
	}
	if c.nameTaken(s.name, uuid.Nil) {
		return SubCategory{}, &Error{Kind: KindDuplicateName, Field: "name", Message: "subcategory with name '" + s.name + "' already exists"}
	}

	c.subCategories = append(c.subCategories, s)
	c.touch(s.createdAt)
	c.raise(SubCategoryAdded{eventMeta: newEventMeta(), CategoryID: c.id, SubCategoryID: s.id, Name: s.name})
	return *s, nil
}

func (c *Category) UpdateSubCategory(id uuid.UUID, name, description string) error {
	s, err := c.mustFindSubCategory(id)
	if err != nil {
		return err
	}
	n := strings.TrimSpace(name)
	if n == "" {
		return invalidArgument("name", "subcategory name cannot be empty")
	}
	if c.nameTaken(n, id) {
		return &Error{Kind: KindDuplicateName, Field: "name", Message: "another subcategory with name '" + n + "' already exists"}
	}

	at := now()
	s.update(n, description, at)
	c.touch(at)
	c.raise(SubCategoryUpdated{eventMeta: newEventMeta(), CategoryID: c.id, SubCategoryID: id, NewName: n})
	return nil
}

func (c *Category) DeactivateSubCategory(id uuid.UUID) error {
	s, err := c.mustFindSubCategory(id)
	if err != nil {
		return err
	}
	at := now()
	if err := s.deactivate(at); err != nil {
		return err
	}
	c.touch(at)
	c.raise(SubCategoryDeactivated{eventMeta: newEventMeta(), CategoryID: c.id, SubCategoryID: id})
	return nil
}

func (c *Category) ActivateSubCategory(id uuid.UUID) error {
	s, err := c.mustFindSubCategory(id)
	if err != nil {
		return err
	}
	at := now()
	if err := s.activate(at); err != nil {
		return err
	}
	c.touch(at)
	c.raise(SubCategoryActivated{eventMeta: newEventMeta(), CategoryID: c.id, SubCategoryID: id})
	return nil
}

// Deactivate switches the category off together with every active subcategory.
// Only the CategoryDeactivated event is raised for the whole cascade.
func (c *Category) Deactivate() error {
	if !c.isActive {
		return invalidState(KindInvalidState, "category is already deactivated")
	}
	at := now()
	c.isActive = false
	for _, s := range c.subCategories {
		if s.isActive {
			_ = s.deactivate(at)
		}
	}
	c.touch(at)
	c.raise(CategoryDeactivated{eventMeta: newEventMeta(), CategoryID: c.id})
	return nil
}

// Activate switches the category back on. Subcategories keep whatever state they had,
// so ones switched off by Deactivate must be re-activated one by one.
func (c *Category) Activate() error {
	if c.isActive {
		return invalidState(KindInvalidState, "category is already active")
	}
	c.isActive = true
	c.touch(now())
	c.raise(CategoryActivated{eventMeta: newEventMeta(), CategoryID: c.id})
	return nil
}
