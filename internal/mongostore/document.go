package mongostore

import (
	"fmt"
	"time"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

// isoLayout is the layout of JavaScript's Date.toISOString. Timestamps are
// stored as strings in this fixed-width UTC form, so documents written by
// other clients of the collection sort together with ours.
const isoLayout = "2006-01-02T15:04:05.000Z"

// itemDoc is an item as stored in the items collection.
type itemDoc struct {
	ID          string  `bson:"id"`
	Title       string  `bson:"title"`
	Description string  `bson:"description"`
	Category    string  `bson:"category"`
	Status      string  `bson:"status"`
	Location    string  `bson:"location"`
	Date        string  `bson:"date"`
	Image       *string `bson:"image"`
	ContactInfo string  `bson:"contactInfo"`
	UserID      string  `bson:"userId"`
	UserName    string  `bson:"userName"`
	UserEmail   string  `bson:"userEmail"`
	Verified    bool    `bson:"verified"`
	CreatedAt   string  `bson:"createdAt"`
	UpdatedAt   string  `bson:"updatedAt,omitempty"`
}

func formatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func parseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

func newItemDoc(item *model.Item) itemDoc {
	d := itemDoc{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Status:      item.Status,
		Location:    item.Location,
		Date:        item.Date,
		Image:       item.Image,
		ContactInfo: item.ContactInfo,
		UserID:      item.UserID,
		UserName:    item.UserName,
		UserEmail:   item.UserEmail,
		Verified:    item.Verified,
		CreatedAt:   formatISO(item.CreatedAt),
	}
	if item.UpdatedAt != nil {
		d.UpdatedAt = formatISO(*item.UpdatedAt)
	}
	return d
}

func (d itemDoc) item() (model.Item, error) {
	created, err := parseISO(d.CreatedAt)
	if err != nil {
		return model.Item{}, err
	}
	item := model.Item{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Status:      d.Status,
		Location:    d.Location,
		Date:        d.Date,
		Image:       d.Image,
		ContactInfo: d.ContactInfo,
		UserID:      d.UserID,
		UserName:    d.UserName,
		UserEmail:   d.UserEmail,
		Verified:    d.Verified,
		CreatedAt:   created,
	}
	if d.UpdatedAt != "" {
		updated, err := parseISO(d.UpdatedAt)
		if err != nil {
			return model.Item{}, err
		}
		item.UpdatedAt = &updated
	}
	return item, nil
}
