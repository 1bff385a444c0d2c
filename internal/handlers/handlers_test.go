package handlers

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/tmrsite/internal/catalog"
	"github.com/example/tmrsite/internal/models"
)

func TestPickerKeepsSelectedFirst(t *testing.T) {
	options := []catalog.Option{{ID: 1, Name: "Ingco"}, {ID: 2, Name: "Total"}, {ID: 3, Name: "Tolsen"}, {ID: 4, Name: "Makita"}}

	data := picker(brandPickerField, options, catalog.NewIDSet(3), "to", 0)
	assert.Equal(t, brandPickerField, data.Field)
	assert.Equal(t, []catalog.Option{{ID: 3, Name: "Tolsen"}}, data.Selected)
	assert.Equal(t, []catalog.Option{{ID: 2, Name: "Total"}}, data.Options)

	limited := picker(productPickerField, options, catalog.NewIDSet(), "", 2)
	assert.Len(t, limited.Options, 2)
	assert.Empty(t, limited.Selected)
}

func TestFilterLeads(t *testing.T) {
	wholesale := []models.WholesaleInquiry{
		{ID: 1, Name: "Amos", BusinessName: "Kampala Builders", Email: "amos@kb.ug"},
		{ID: 2, Name: "Ruth", BusinessName: "Jinja Steel", Email: "ruth@js.ug"},
	}
	contact := []models.ContactInquiry{
		{ID: 7, Name: "Peter", Phone: "+256 700 111222"},
	}

	w, c := filterLeads("  ", wholesale, contact)
	assert.Len(t, w, 2)
	assert.Len(t, c, 1)

	w, c = filterLeads("STEEL", wholesale, contact)
	require.Len(t, w, 1)
	assert.Equal(t, int64(2), w[0].ID)
	assert.Empty(t, c)

	w, c = filterLeads("111222", wholesale, contact)
	assert.Empty(t, w)
	require.Len(t, c, 1)
	assert.Equal(t, int64(7), c[0].ID)
}

func TestLeadWorkbook(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	wholesale := []models.WholesaleInquiry{{
		ID: 4, Name: "Amos", BusinessName: "Kampala Builders", Email: "amos@kb.ug", ContactNumber: "0700",
		Details:        "200 units",
		BrandDetails:   []models.Brand{{Name: "Ingco"}, {Name: "Total"}},
		ProductDetails: []models.Product{{Name: "Drill"}},
		CreatedAt:      created,
	}}
	contact := []models.ContactInquiry{{ID: 9, Name: "Peter", Requirement: "Quote", IsResolved: true, CreatedAt: created}}

	buf, err := leadWorkbook(wholesale, contact)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{wholesaleSheet, contactSheet}, f.GetSheetList())

	rows, err := f.GetRows(wholesaleSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][2])
	assert.Equal(t, []string{"4", "2026-03-01 09:30", "Amos", "Kampala Builders", "amos@kb.ug", "0700", "Ingco, Total", "Drill", "200 units", "Pending"}, rows[1])

	rows, err = f.GetRows(contactSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Peter", rows[1][2])
	assert.Equal(t, "Resolved", rows[1][9])
}

func TestCategoryTiles(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Power Tools", Slug: "power-tools"},
		{ID: 2, Name: "Generators", Slug: "generators"},
	}

	tiles := categoryTiles(nil, categories)
	require.Len(t, tiles, 2)
	assert.Equal(t, "/products?category=power-tools", tiles[0].URL)

	curated := []models.HomeCategory{
		{ID: 1, Category: 2, CategoryName: "Generators", CategorySlug: "generators", Order: 2},
		{ID: 2, Category: 1, CategoryName: "Power Tools", Title: "Tools", Order: 1},
	}
	tiles = categoryTiles(curated, categories)
	require.Len(t, tiles, 2)
	assert.Equal(t, "Tools", tiles[0].Name)
	assert.Equal(t, "/products?category=1", tiles[0].URL)
	assert.Equal(t, "Generators", tiles[1].Name)
}

func TestFeaturedAndRelated(t *testing.T) {
	tools := models.Category{ID: 1, Name: "Tools"}
	products := []models.Product{
		{ID: 1, Name: "A", IsFeatured: true, Categories: []models.Category{tools}},
		{ID: 2, Name: "B", Categories: []models.Category{tools}},
		{ID: 3, Name: "C", IsFeatured: true},
	}

	assert.Len(t, featured(products), 2)

	rel := related(products[0], products)
	require.Len(t, rel, 1)
	assert.Equal(t, int64(2), rel[0].ID)
	assert.Empty(t, related(products[2], products))
}

func TestBuildGridWindowAndLinks(t *testing.T) {
	var products []models.Product
	for i := int64(1); i <= 15; i++ {
		products = append(products, models.Product{ID: i, Name: "P", Categories: []models.Category{{ID: 1}}})
	}
	categories := []models.Category{{ID: 1, Name: "Tools", Slug: "tools"}, {ID: 2, Name: "Pumps", Slug: "pumps"}}

	grid := buildGrid(gridInput{path: "/products", products: products, categories: categories, show: catalog.PageStep})
	assert.Len(t, grid.Items, catalog.PageStep)
	assert.Equal(t, 15, grid.Total)
	assert.True(t, grid.HasMore)
	assert.Equal(t, "/products?show=24", grid.MoreURL)
	assert.False(t, grid.Active)
	require.Len(t, grid.CategoryLinks, 2)
	assert.Equal(t, "/products?category=1", grid.CategoryLinks[0].URL)

	filtered := buildGrid(gridInput{
		path:       "/products",
		products:   products,
		categories: categories,
		filter:     catalog.Filter{Categories: catalog.NewIDSet(2)},
	})
	assert.Empty(t, filtered.Items)
	assert.True(t, filtered.Active)
	assert.True(t, filtered.CategoryLinks[1].Active)
	assert.Equal(t, "/products", filtered.CategoryLinks[1].URL)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "short text", summarize("  short\n text ", 160))
	assert.Equal(t, "one two…", summarize("one two three", 9))
	assert.Equal(t, "ñññ…", summarize("ññññññ", 3))
	assert.True(t, utf8.ValidString(summarize("Überprüfung der Maschinenqualität", 5)))
}
