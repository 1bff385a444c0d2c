package models

import (
	"strconv"
	"strings"
)

// Brand as served by the catalog API.
type Brand struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Logo         string `json:"logo"`
	Description  string `json:"description"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	HeroImage    string `json:"hero_image"`
	Content      string `json:"content"`
	HTMLContent  string `json:"html_content"`
	CreatedAt    string `json:"created_at"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// HomeCategory is a curation entry controlling how a category is presented
// on the homepage grid.
type HomeCategory struct {
	ID           int64  `json:"id"`
	Category     int64  `json:"category"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
	Title        string `json:"title"`
	Image        string `json:"image"`
	DisplayTitle string `json:"display_title"`
	DisplayImg   string `json:"display_image"`
	Order        int    `json:"order"`
}

// DisplayName prefers the curated title over the category's own name.
func (h HomeCategory) DisplayName() string {
	for _, v := range []string{h.Title, h.DisplayTitle, h.CategoryName} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return "Category #" + strconv.FormatInt(h.Category, 10)
}

// DisplayImage prefers the computed display image, then the override upload.
func (h HomeCategory) DisplayImage() string {
	if h.DisplayImg != "" {
		return h.DisplayImg
	}
	return h.Image
}

// CategoryInput is the JSON body for creating or renaming a category.
type CategoryInput struct {
	Name string `json:"name" form:"name" validate:"required"`
	Slug string `json:"slug,omitempty" form:"slug"`
}
