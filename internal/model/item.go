package model

import (
	"encoding/json"
	"time"
)

// Item is a report of a lost or found object.
type Item struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	Location    string     `json:"location"`
	Date        string     `json:"date"`
	Image       *string    `json:"image"`
	ContactInfo string     `json:"contactInfo"`
	UserID      string     `json:"userId"`
	UserName    string     `json:"userName"`
	UserEmail   string     `json:"userEmail"`
	Verified    bool       `json:"verified"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Item statuses.
const (
	ItemStatusLost  = "Lost"
	ItemStatusFound = "Found"
)

// DateLayout is the calendar date format reporters supply.
const DateLayout = "2006-01-02"

// Categories offered by the reporting form. Filters accept any value.
var Categories = []string{
	"Electronics",
	"Documents",
	"Accessories",
	"Clothing",
	"Keys",
	"Pets",
	"Other",
}

// ValidItemStatus reports whether s is one of the item statuses.
func ValidItemStatus(s string) bool {
	return s == ItemStatusLost || s == ItemStatusFound
}

// FilterAll is the filter value meaning "no filter".
const FilterAll = "all"

// ItemFilter selects items for listing. Zero values apply no restriction.
type ItemFilter struct {
	Search       string
	Category     string
	Location     string
	Status       string
	VerifiedOnly bool
}

// Normalize drops "all" sentinels so backends only see real restrictions.
func (f ItemFilter) Normalize() ItemFilter {
	if f.Category == FilterAll {
		f.Category = ""
	}
	if f.Location == FilterAll {
		f.Location = ""
	}
	if f.Status == FilterAll {
		f.Status = ""
	}
	return f
}

// ItemDraft is the reporter-supplied content of a new item.
type ItemDraft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Image       *string `json:"image"`
	ContactInfo string  `json:"contactInfo"`
}

// ItemPatch is a partial update. Nil fields are left unchanged.
// Identity and ownership fields are deliberately absent.
type ItemPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Category    *string        `json:"category"`
	Status      *string        `json:"status"`
	Location    *string        `json:"location"`
	Date        *string        `json:"date"`
	Image       NullableString `json:"image"`
	ContactInfo *string        `json:"contactInfo"`
	Verified    *bool          `json:"verified"`
}

// Empty reports whether the patch changes nothing.
func (p ItemPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Status == nil && p.Location == nil && p.Date == nil &&
		!p.Image.Set && p.ContactInfo == nil && p.Verified == nil
}

// Apply merges the patch onto item.
func (p ItemPatch) Apply(item *Item) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Date != nil {
		item.Date = *p.Date
	}
	if p.Image.Set {
		item.Image = p.Image.Value
	}
	if p.ContactInfo != nil {
		item.ContactInfo = *p.ContactInfo
	}
	if p.Verified != nil {
		item.Verified = *p.Verified
	}
}

// NullableString distinguishes an absent JSON field from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the key is present.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}
