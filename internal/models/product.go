package models

// Product as served by the catalog API. Brands and categories are
// many-to-many and arrive expanded.
type Product struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Image           string     `json:"image"`
	Specifications  string     `json:"specifications"`
	IsFeatured      bool       `json:"is_featured"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	MetaKeywords    string     `json:"meta_keywords"`
	OGImage         string     `json:"og_image"`
	Brands          []Brand    `json:"brands"`
	Categories      []Category `json:"categories"`
}

// BrandIDs returns the IDs of the product's brands.
func (p Product) BrandIDs() []int64 {
	ids := make([]int64, 0, len(p.Brands))
	for _, b := range p.Brands {
		ids = append(ids, b.ID)
	}
	return ids
}

// CategoryIDs returns the IDs of the product's categories.
func (p Product) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// PrimaryCategory is the name shown on product cards.
func (p Product) PrimaryCategory() string {
	if len(p.Categories) > 0 && p.Categories[0].Name != "" {
		return p.Categories[0].Name
	}
	return "Uncategorized"
}
