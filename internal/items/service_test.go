package items

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abdullah403/lost-and-found/internal/db"
	"github.com/Abdullah403/lost-and-found/internal/model"
	"github.com/Abdullah403/lost-and-found/internal/store"
)

var (
	owner    = &model.Principal{ID: "u-owner", Email: "owner@example.com", Name: "Owner", Role: model.RoleUser}
	stranger = &model.Principal{ID: "u-other", Email: "other@example.com", Name: "Other", Role: model.RoleUser}
	admin    = &model.Principal{ID: "u-admin", Email: "admin@example.com", Name: "Admin", Role: model.RoleAdmin}
)

// newTestService returns a service over an in-memory database whose clock
// advances one second per call.
func newTestService(t *testing.T) (*Service, *store.SQLite) {
	t.Helper()
	backend := store.NewSQLite(db.NewTestDB(t))
	svc := NewService(backend)

	clock := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.repo.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, backend
}

func backpack() model.ItemDraft {
	return model.ItemDraft{
		Title:       "Blue Backpack",
		Description: "Left in library",
		Category:    "Accessories",
		Status:      model.ItemStatusLost,
		Location:    "Main Library",
		Date:        "2024-01-10",
	}
}

func TestCreateItemDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, owner, backpack())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.Verified {
		t.Error("new items must be unverified")
	}
	if item.UserID != owner.ID || item.UserName != owner.Name || item.UserEmail != owner.Email {
		t.Errorf("ownership snapshot not copied: %+v", item)
	}
	if item.ContactInfo != owner.Email {
		t.Errorf("expected contactInfo to default to %q, got %q", owner.Email, item.ContactInfo)
	}
	if item.Image != nil {
		t.Errorf("expected nil image, got %q", *item.Image)
	}
	if item.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	second, err := svc.Create(ctx, owner, backpack())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID == item.ID {
		t.Error("ids must be unique")
	}
}

func TestCreateKeepsSuppliedContactAndImage(t *testing.T) {
	svc, _ := newTestService(t)

	draft := backpack()
	img := "/uploads/bag.jpg"
	draft.Image = &img
	draft.ContactInfo = "call 555-0100"

	item, err := svc.Create(context.Background(), owner, draft)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ContactInfo != "call 555-0100" {
		t.Errorf("expected supplied contact, got %q", item.ContactInfo)
	}
	if item.Image == nil || *item.Image != img {
		t.Error("expected supplied image")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	noLocation := backpack()
	noLocation.Location = ""
	_, err := svc.Create(ctx, owner, noLocation)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "location" {
		t.Errorf("expected missing field 'location', got %v", verr.Fields)
	}

	items, _ := store.ListItems(ctx, backend.DB, model.ItemFilter{})
	if len(items) != 0 {
		t.Errorf("expected nothing persisted, got %d items", len(items))
	}

	badStatus := backpack()
	badStatus.Status = "Stolen"
	if _, err := svc.Create(ctx, owner, badStatus); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for status, got %v", err)
	}

	badDate := backpack()
	badDate.Date = "10/01/2024"
	if _, err := svc.Create(ctx, owner, badDate); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for date, got %v", err)
	}
}

func TestCreateRequiresPrincipal(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Create(context.Background(), nil, backpack()); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestListComposesFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	phone := backpack()
	phone.Title, phone.Category = "Phone", "Electronics"
	found := backpack()
	found.Title, found.Category, found.Status = "Charger", "Electronics", model.ItemStatusFound
	svc.Create(ctx, owner, backpack())
	svc.Create(ctx, owner, phone)
	svc.Create(ctx, owner, found)

	items, err := svc.List(ctx, model.ItemFilter{Category: "Electronics", Status: model.ItemStatusLost})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Phone" {
		t.Errorf("expected only the lost phone, got %+v", items)
	}

	all, _ := svc.List(ctx, model.ItemFilter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	if all[0].Title != "Charger" {
		t.Errorf("expected newest first, got %q", all[0].Title)
	}

	empty, _ := svc.List(ctx, model.ItemFilter{Search: "zeppelin"})
	if empty == nil {
		t.Error("expected empty slice, not nil")
	}
}

func TestRepositoryCreateRequiresPrincipal(t *testing.T) {
	repo := NewRepository(store.NewSQLite(db.NewTestDB(t)))
	if _, err := repo.Create(context.Background(), backpack(), nil); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

// countingStore records how many writes reach the backend.
type countingStore struct {
	Store
	updates int
}

func (c *countingStore) UpdateItem(ctx context.Context, item *model.Item) (bool, error) {
	c.updates++
	return c.Store.UpdateItem(ctx, item)
}

func TestEmptyUpdateWritesNothing(t *testing.T) {
	backend := &countingStore{Store: store.NewSQLite(db.NewTestDB(t))}
	svc := NewService(backend)
	ctx := context.Background()

	item, err := svc.Create(ctx, owner, backpack())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(ctx, stranger, item.ID, model.ItemPatch{}); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger: expected ErrForbidden, got %v", err)
	}

	got, err := svc.Update(ctx, owner, item.ID, model.ItemPatch{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.UpdatedAt != nil {
		t.Errorf("empty update must not stamp updatedAt, got %v", got.UpdatedAt)
	}
	if got.Title != item.Title || got.ID != item.ID {
		t.Errorf("expected unchanged item, got %+v", got)
	}
	if backend.updates != 0 {
		t.Errorf("expected no store writes, got %d", backend.updates)
	}

	stored, _ := svc.Get(ctx, item.ID)
	if stored.UpdatedAt != nil {
		t.Error("stored item should be untouched")
	}
}

func TestUpdateAuthorization(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, _ := svc.Create(ctx, owner, backpack())
	found := model.ItemStatusFound

	if _, err := svc.Update(ctx, nil, item.ID, model.ItemPatch{Status: &found}); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Update(ctx, stranger, item.ID, model.ItemPatch{Status: &found}); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger: expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(ctx, owner, item.ID, model.ItemPatch{Status: &found})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Status != model.ItemStatusFound {
		t.Errorf("expected status Found, got %q", updated.Status)
	}
	if updated.UpdatedAt == nil {
		t.Error("expected updatedAt to be stamped")
	}
	if updated.UserID != owner.ID {
		t.Error("ownership must not change on update")
	}

	title := "Navy Backpack"
	if _, err := svc.Update(ctx, admin, item.ID, model.ItemPatch{Title: &title}); err != nil {
		t.Fatalf("admin update: %v", err)
	}

	if _, err := svc.Update(ctx, admin, "missing", model.ItemPatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateVerifiedIsAdminOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, _ := svc.Create(ctx, owner, backpack())
	yes := true

	if _, err := svc.Update(ctx, owner, item.ID, model.ItemPatch{Verified: &yes}); !errors.Is(err, ErrForbidden) {
		t.Errorf("owner verifying: expected ErrForbidden, got %v", err)
	}
	got, _ := svc.Get(ctx, item.ID)
	if got.Verified {
		t.Error("rejected update must not persist")
	}

	if _, err := svc.Update(ctx, admin, item.ID, model.ItemPatch{Verified: &yes}); err != nil {
		t.Fatalf("admin verify: %v", err)
	}
	got, _ = svc.Get(ctx, item.ID)
	if !got.Verified {
		t.Error("expected verified after admin update")
	}

	// Resending the current value is not a change.
	if _, err := svc.Update(ctx, owner, item.ID, model.ItemPatch{Verified: &yes}); err != nil {
		t.Errorf("owner resending verified=true: %v", err)
	}
}

func TestUpdateRejectsClearingRequiredField(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, _ := svc.Create(ctx, owner, backpack())
	blank := " "

	var verr *ValidationError
	if _, err := svc.Update(ctx, owner, item.ID, model.ItemPatch{Location: &blank}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestSetVerified(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, _ := svc.Create(ctx, owner, backpack())

	if _, err := svc.SetVerified(ctx, owner, item.ID, true); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for owner, got %v", err)
	}
	updated, err := svc.SetVerified(ctx, admin, item.ID, true)
	if err != nil {
		t.Fatalf("SetVerified: %v", err)
	}
	if !updated.Verified {
		t.Error("expected verified item")
	}
	updated, _ = svc.SetVerified(ctx, admin, item.ID, false)
	if updated.Verified {
		t.Error("expected unverified item")
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, _ := svc.Create(ctx, owner, backpack())

	if err := svc.Delete(ctx, stranger, item.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, nil, item.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.Delete(ctx, owner, item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, admin, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

type failingStore struct{ Store }

func (failingStore) ListItems(context.Context, model.ItemFilter) ([]model.Item, error) {
	return nil, errors.New("disk on fire")
}

func TestListWrapsStoreErrors(t *testing.T) {
	svc := NewService(failingStore{})
	_, err := svc.List(context.Background(), model.ItemFilter{})

	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
}
