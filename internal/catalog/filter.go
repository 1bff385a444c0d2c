// Package catalog holds the in-memory catalog operations behind the product
// pages: filtering, selection sets, incremental display and type-ahead search.
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/example/tmrsite/internal/models"
)

// Filter restricts a product list by brand and category. An empty set means
// no restriction on that dimension.
type Filter struct {
	Brands     IDSet
	Categories IDSet
}

// Active reports whether any restriction is set.
func (f Filter) Active() bool {
	return !f.Brands.Empty() || !f.Categories.Empty()
}

// Match is true iff the product satisfies both dimensions.
func (f Filter) Match(p models.Product) bool {
	if !f.Brands.Empty() && !f.Brands.Intersects(p.BrandIDs()) {
		return false
	}
	if !f.Categories.Empty() && !f.Categories.Intersects(p.CategoryIDs()) {
		return false
	}
	return true
}

// Apply returns the matching products, preserving input order.
func Apply(products []models.Product, f Filter) []models.Product {
	if !f.Active() {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// ParseFilter reads repeatable brand and category query values. Each value is
// a numeric ID or a slug resolved against the known lists; anything else is
// dropped.
func ParseFilter(query url.Values, brands []models.Brand, categories []models.Category) Filter {
	f := Filter{Brands: NewIDSet(), Categories: NewIDSet()}
	for _, raw := range query["brand"] {
		if id, ok := resolveID(raw, brandSlugs(brands)); ok {
			f.Brands = f.Brands.union(id)
		}
	}
	for _, raw := range query["category"] {
		if id, ok := resolveID(raw, categorySlugs(categories)); ok {
			f.Categories = f.Categories.union(id)
		}
	}
	return f
}

// Query encodes the filter back into query parameters.
func (f Filter) Query() url.Values {
	q := url.Values{}
	for _, id := range f.Brands.Strings() {
		q.Add("brand", id)
	}
	for _, id := range f.Categories.Strings() {
		q.Add("category", id)
	}
	return q
}

// ToggleBrand returns the filter with one brand switched on or off.
func (f Filter) ToggleBrand(id int64) Filter {
	return Filter{Brands: f.Brands.Toggle(id), Categories: f.Categories}
}

// ToggleCategory returns the filter with one category switched on or off.
func (f Filter) ToggleCategory(id int64) Filter {
	return Filter{Brands: f.Brands, Categories: f.Categories.Toggle(id)}
}

func (s IDSet) union(id int64) IDSet {
	if s.Has(id) {
		return s
	}
	return s.Toggle(id)
}

func resolveID(raw string, slugs map[string]int64) (int64, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
		return id, true
	}
	id, ok := slugs[raw]
	return id, ok
}

func brandSlugs(brands []models.Brand) map[string]int64 {
	out := make(map[string]int64, len(brands))
	for _, b := range brands {
		if b.Slug != "" {
			out[strings.ToLower(b.Slug)] = b.ID
		}
	}
	return out
}

func categorySlugs(categories []models.Category) map[string]int64 {
	out := make(map[string]int64, len(categories))
	for _, c := range categories {
		if c.Slug != "" {
			out[strings.ToLower(c.Slug)] = c.ID
		}
	}
	return out
}
