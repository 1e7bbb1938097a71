package items

import "github.com/Abdullah403/lost-and-found/internal/model"

// CanMutate reports whether p may update or delete item: admins may change
// anything, everyone else only what they reported.
func CanMutate(p *model.Principal, item *model.Item) bool {
	if p == nil || item == nil {
		return false
	}
	return p.IsAdmin() || p.ID == item.UserID
}

// authorize runs the mutation gate in order: authentication, then ownership.
func authorize(p *model.Principal, item *model.Item) error {
	if p == nil {
		return ErrUnauthenticated
	}
	if !CanMutate(p, item) {
		return ErrForbidden
	}
	return nil
}
