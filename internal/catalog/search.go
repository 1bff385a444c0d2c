package catalog

import (
	"strings"

	"github.com/example/tmrsite/internal/models"
)

// Option is an entry of a type-ahead picker.
type Option struct {
	ID   int64
	Name string
}

// BrandOptions converts brands to picker options.
func BrandOptions(brands []models.Brand) []Option {
	out := make([]Option, 0, len(brands))
	for _, b := range brands {
		out = append(out, Option{ID: b.ID, Name: b.Name})
	}
	return out
}

// ProductOptions converts products to picker options.
func ProductOptions(products []models.Product) []Option {
	out := make([]Option, 0, len(products))
	for _, p := range products {
		out = append(out, Option{ID: p.ID, Name: p.Name})
	}
	return out
}

// Search keeps the options whose name contains query, case-insensitively,
// up to limit entries (no limit when limit <= 0).
func Search(options []Option, query string, limit int) []Option {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Option, 0, len(options))
	for _, o := range options {
		if q != "" && !strings.Contains(strings.ToLower(o.Name), q) {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Selected returns the options whose IDs are in set, preserving option order.
func Selected(options []Option, set IDSet) []Option {
	out := make([]Option, 0, set.Len())
	for _, o := range options {
		if set.Has(o.ID) {
			out = append(out, o)
		}
	}
	return out
}
