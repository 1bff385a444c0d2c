package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tmrsite/internal/models"
)

func TestApplyDefaultsFillsOnlyEmptyFields(t *testing.T) {
	c := models.ContactContent{}
	c.HeroTitle = "Reach Us"
	ApplyContactDefaults(&c)

	assert.Equal(t, "Reach Us", c.HeroTitle)
	assert.Equal(t, "Contact Us", c.SEOTitle)
	assert.Equal(t, "Get in Touch", c.HeroSubtitle)
	assert.NotEmpty(t, c.SEODescription)
}

func TestApplyDefaultsToleratesNil(t *testing.T) {
	assert.NotPanics(t, func() {
		ApplyHomeDefaults(nil)
		ApplyAboutDefaults(nil)
		ApplyContactDefaults(nil)
		ApplyWholesaleDefaults(nil)
		ApplyBrandDefaults(nil)
	})
}

func TestAboutDefaultKeepsHTMLContent(t *testing.T) {
	a := models.AboutContent{}
	a.HTMLContent = "<p>Ours</p>"
	ApplyAboutDefaults(&a)
	assert.Empty(t, a.Content)
	assert.Equal(t, "Heavy Duty Heritage", a.HeroTitle)
}

func TestSchemaIsClosedPerPageType(t *testing.T) {
	names := func(page models.PageType) map[string]Field {
		out := map[string]Field{}
		for _, f := range Schema(page) {
			out[f.Name] = f
		}
		return out
	}

	home := names(models.PageHome)
	assert.Contains(t, home, "hero_image_5")
	assert.Contains(t, home, "youtube_url")
	assert.NotContains(t, home, "address")

	contact := names(models.PageContact)
	assert.Contains(t, contact, "map_embed_url")
	assert.NotContains(t, contact, "hero_image_1")

	wholesale := names(models.PageWholesale)
	require.Contains(t, wholesale, "catalogue_file")
	assert.True(t, wholesale["catalogue_file"].Upload())
	assert.False(t, wholesale["seo_title"].Upload())

	assert.Len(t, Schema(models.PageBrand), len(commonFields))
}

func TestSectionsPreserveOrder(t *testing.T) {
	sections := Sections(models.PageHome)
	require.NotEmpty(t, sections)
	assert.Equal(t, "SEO Settings", sections[0].Title)
	assert.Equal(t, "Hero Slider", sections[3].Title)
}

func TestValuesCoercesRecord(t *testing.T) {
	record := map[string]any{"clients_served_count": 250.0, "seo_title": "About", "unknown": "x"}
	values := Values(models.PageAbout, record)
	assert.Equal(t, "250", values["clients_served_count"])
	assert.Equal(t, "About", values["seo_title"])
	assert.Equal(t, "", values["hero_image"])
	assert.NotContains(t, values, "unknown")
}
