package items

import (
	"strings"
	"time"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

func validateDraft(d model.ItemDraft) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", d.Title},
		{"description", d.Description},
		{"category", d.Category},
		{"status", d.Status},
		{"location", d.Location},
		{"date", d.Date},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return validateValues(&d.Status, &d.Date)
}

func validatePatch(p model.ItemPatch) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"category", p.Category},
		{"status", p.Status},
		{"location", p.Location},
		{"date", p.Date},
	}

	var empty []string
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			empty = append(empty, f.name)
		}
	}
	if len(empty) > 0 {
		return &ValidationError{
			Fields:  empty,
			Message: "required fields cannot be cleared: " + strings.Join(empty, ", "),
		}
	}

	return validateValues(p.Status, p.Date)
}

// validateValues checks enumerated and formatted fields when present.
func validateValues(status, date *string) error {
	if status != nil && !model.ValidItemStatus(*status) {
		return &ValidationError{
			Fields:  []string{"status"},
			Message: "status must be Lost or Found",
		}
	}
	if date != nil {
		if _, err := time.Parse(model.DateLayout, *date); err != nil {
			return &ValidationError{
				Fields:  []string{"date"},
				Message: "date must be formatted as YYYY-MM-DD",
			}
		}
	}
	return nil
}
