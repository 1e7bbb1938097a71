package items

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

// Store is the document store the repository persists items in.
// Lookups return a nil item when the id is unknown; update and delete
// report whether a record was touched.
type Store interface {
	ListItems(ctx context.Context, filter model.ItemFilter) ([]model.Item, error)
	InsertItem(ctx context.Context, item *model.Item) error
	GetItem(ctx context.Context, id string) (*model.Item, error)
	UpdateItem(ctx context.Context, item *model.Item) (bool, error)
	DeleteItem(ctx context.Context, id string) (bool, error)
}

// Repository applies creation defaults and translates store results into
// the item error taxonomy.
type Repository struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewRepository returns a repository backed by store.
func NewRepository(store Store) *Repository {
	return &Repository{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List returns matching items, newest first. Never nil.
func (r *Repository) List(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	items, err := r.store.ListItems(ctx, filter.Normalize())
	if err != nil {
		return nil, storeErr("listing items", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Create validates the draft and persists a new item owned by p.
func (r *Repository) Create(ctx context.Context, draft model.ItemDraft, p *model.Principal) (*model.Item, error) {
	if p == nil {
		return nil, ErrUnauthenticated
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	item := &model.Item{
		ID:          r.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Status:      draft.Status,
		Location:    draft.Location,
		Date:        draft.Date,
		Image:       draft.Image,
		ContactInfo: draft.ContactInfo,
		UserID:      p.ID,
		UserName:    p.Name,
		UserEmail:   p.Email,
		Verified:    false,
		CreatedAt:   r.now().UTC(),
	}
	if item.Image != nil && *item.Image == "" {
		item.Image = nil
	}
	if item.ContactInfo == "" {
		item.ContactInfo = p.Email
	}

	if err := r.store.InsertItem(ctx, item); err != nil {
		return nil, storeErr("creating item", err)
	}
	return item, nil
}

// GetByID returns the item or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	item, err := r.store.GetItem(ctx, id)
	if err != nil {
		return nil, storeErr("getting item", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Update merges patch onto current, stamps updatedAt and writes it back.
// current must have been loaded by GetByID; there is no concurrency token,
// so the last writer wins. An empty patch writes nothing and returns
// current unchanged.
func (r *Repository) Update(ctx context.Context, current *model.Item, patch model.ItemPatch) (*model.Item, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if patch.Empty() {
		unchanged := *current
		return &unchanged, nil
	}

	updated := *current
	patch.Apply(&updated)
	now := r.now().UTC()
	updated.UpdatedAt = &now

	ok, err := r.store.UpdateItem(ctx, &updated)
	if err != nil {
		return nil, storeErr("updating item", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &updated, nil
}

// Delete permanently removes the item.
func (r *Repository) Delete(ctx context.Context, id string) error {
	ok, err := r.store.DeleteItem(ctx, id)
	if err != nil {
		return storeErr("deleting item", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
