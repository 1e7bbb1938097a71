package items

import (
	"context"
	"log/slog"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

// Service implements the item lifecycle. The caller's principal is always
// passed explicitly; nil means unauthenticated.
type Service struct {
	repo *Repository
}

// NewService returns a service over store.
func NewService(store Store) *Service {
	return &Service{repo: NewRepository(store)}
}

// List needs no authentication.
func (s *Service) List(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	return s.repo.List(ctx, filter)
}

// Get needs no authentication.
func (s *Service) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Create reports a new item on behalf of p.
func (s *Service) Create(ctx context.Context, p *model.Principal, draft model.ItemDraft) (*model.Item, error) {
	if p == nil {
		return nil, ErrUnauthenticated
	}
	item, err := s.repo.Create(ctx, draft, p)
	if err != nil {
		return nil, err
	}
	slog.Info("item created", "item", item.ID, "user", p.Email, "status", item.Status)
	return item, nil
}

// Update applies patch if p owns the item or is an admin. Only admins may
// change the verified flag.
func (s *Service) Update(ctx context.Context, p *model.Principal, id string, patch model.ItemPatch) (*model.Item, error) {
	if p == nil {
		return nil, ErrUnauthenticated
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, current); err != nil {
		return nil, err
	}
	if patch.Verified != nil && *patch.Verified != current.Verified && !p.IsAdmin() {
		return nil, ErrForbidden
	}

	updated, err := s.repo.Update(ctx, current, patch)
	if err != nil {
		return nil, err
	}
	slog.Info("item updated", "item", id, "user", p.Email)
	return updated, nil
}

// SetVerified toggles the admin trust flag.
func (s *Service) SetVerified(ctx context.Context, p *model.Principal, id string, verified bool) (*model.Item, error) {
	if p == nil {
		return nil, ErrUnauthenticated
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}

	updated, err := s.repo.Update(ctx, current, model.ItemPatch{Verified: &verified})
	if err != nil {
		return nil, err
	}
	slog.Info("item verification changed", "item", id, "verified", verified, "admin", p.Email)
	return updated, nil
}

// Delete removes the item if p owns it or is an admin.
func (s *Service) Delete(ctx context.Context, p *model.Principal, id string) error {
	if p == nil {
		return ErrUnauthenticated
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(p, current); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("item deleted", "item", id, "user", p.Email)
	return nil
}
