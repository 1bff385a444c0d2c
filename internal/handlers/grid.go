package handlers

import (
	"net/url"
	"strconv"

	"github.com/example/tmrsite/internal/catalog"
	"github.com/example/tmrsite/internal/models"
)

// FilterLink is one entry of the catalog sidebar.
type FilterLink struct {
	Name   string
	URL    string
	Active bool
}

// ProductGrid is the filtered, windowed product listing with its sidebar.
type ProductGrid struct {
	Items   []models.Product
	Total   int
	HasMore bool
	MoreURL string

	CategoryLinks       []FilterLink
	BrandLinks          []FilterLink
	AllCategoriesURL    string
	AllBrandsURL        string
	AllCategoriesActive bool
	AllBrandsActive     bool
	ClearURL            string
	Active              bool
	ShowBrands          bool
}

type gridInput struct {
	path       string
	products   []models.Product
	brands     []models.Brand
	categories []models.Category
	filter     catalog.Filter
	show       int
	showBrands bool
}

func filterURL(path string, f catalog.Filter, show int) string {
	q := f.Query()
	if show > 0 && show != catalog.PageStep {
		q.Set("show", strconv.Itoa(show))
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func buildGrid(in gridInput) ProductGrid {
	filtered := catalog.Apply(in.products, in.filter)
	window := catalog.Slice(filtered, in.show)

	grid := ProductGrid{
		Items:               window.Items,
		Total:               window.Total,
		HasMore:             window.HasMore,
		MoreURL:             filterURL(in.path, in.filter, window.Next),
		AllCategoriesURL:    filterURL(in.path, catalog.Filter{Brands: in.filter.Brands}, 0),
		AllBrandsURL:        filterURL(in.path, catalog.Filter{Categories: in.filter.Categories}, 0),
		AllCategoriesActive: in.filter.Categories.Empty(),
		AllBrandsActive:     in.filter.Brands.Empty(),
		ClearURL:            in.path,
		Active:              in.filter.Active(),
		ShowBrands:          in.showBrands,
	}
	for _, cat := range in.categories {
		grid.CategoryLinks = append(grid.CategoryLinks, FilterLink{
			Name:   cat.Name,
			URL:    filterURL(in.path, in.filter.ToggleCategory(cat.ID), 0),
			Active: in.filter.Categories.Has(cat.ID),
		})
	}
	if in.showBrands {
		for _, b := range in.brands {
			grid.BrandLinks = append(grid.BrandLinks, FilterLink{
				Name:   b.Name,
				URL:    filterURL(in.path, in.filter.ToggleBrand(b.ID), 0),
				Active: in.filter.Brands.Has(b.ID),
			})
		}
	}
	return grid
}

func categoryURL(slug string, id int64) string {
	v := url.Values{}
	if slug != "" {
		v.Set("category", slug)
	} else {
		v.Set("category", strconv.FormatInt(id, 10))
	}
	return "/products?" + v.Encode()
}
