package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

// searchFields are the document fields a free-text search looks at.
var searchFields = []string{"title", "description", "location", "category"}

// ListItems returns items matching the filter, newest first.
func (s *Store) ListItems(ctx context.Context, f model.ItemFilter) ([]model.Item, error) {
	opts := options.Find().
		SetProjection(noID).
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.items().Find(ctx, itemFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer cur.Close(ctx)

	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}

	items := make([]model.Item, 0, len(docs))
	for _, d := range docs {
		item, err := d.item()
		if err != nil {
			return nil, fmt.Errorf("decoding item %s: %w", d.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// InsertItem stores a fully populated item.
func (s *Store) InsertItem(ctx context.Context, item *model.Item) error {
	if _, err := s.items().InsertOne(ctx, newItemDoc(item)); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// GetItem returns an item by ID, or nil if it does not exist.
func (s *Store) GetItem(ctx context.Context, id string) (*model.Item, error) {
	var doc itemDoc
	err := s.items().FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(noID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item, err := doc.item()
	if err != nil {
		return nil, fmt.Errorf("decoding item %s: %w", id, err)
	}
	return &item, nil
}

// UpdateItem writes the mutable fields of item. It reports whether a
// document with that ID existed.
func (s *Store) UpdateItem(ctx context.Context, item *model.Item) (bool, error) {
	res, err := s.items().UpdateOne(ctx, bson.M{"id": item.ID}, itemUpdate(item))
	if err != nil {
		return false, fmt.Errorf("updating item: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// DeleteItem removes an item. It reports whether anything was deleted.
func (s *Store) DeleteItem(ctx context.Context, id string) (bool, error) {
	res, err := s.items().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// itemFilter translates a filter into a query document. Search text is
// quoted, so user input is never treated as a regular expression.
func itemFilter(f model.ItemFilter) bson.M {
	f = f.Normalize()
	query := bson.M{}

	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		or := make(bson.A, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: pattern})
		}
		query["$or"] = or
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Location != "" {
		query["location"] = f.Location
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.VerifiedOnly {
		query["verified"] = true
	}
	return query
}

// itemUpdate sets every field except the identity and creation fields.
func itemUpdate(item *model.Item) bson.M {
	set := bson.M{
		"title":       item.Title,
		"description": item.Description,
		"category":    item.Category,
		"status":      item.Status,
		"location":    item.Location,
		"date":        item.Date,
		"image":       item.Image,
		"contactInfo": item.ContactInfo,
		"verified":    item.Verified,
	}
	if item.UpdatedAt != nil {
		set["updatedAt"] = formatISO(*item.UpdatedAt)
	}
	return bson.M{"$set": set}
}
