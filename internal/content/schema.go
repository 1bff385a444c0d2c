package content

import (
	"github.com/spf13/cast"

	"github.com/example/tmrsite/internal/models"
)

// FieldKind selects the input widget of an editor field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindURL      FieldKind = "url"
	KindImage    FieldKind = "image"
	KindFile     FieldKind = "file"
)

// Field is one editable attribute of a page record.
type Field struct {
	Name    string
	Label   string
	Kind    FieldKind
	Section string
}

// Upload reports whether the field is sent as a file part.
func (f Field) Upload() bool {
	return f.Kind == KindImage || f.Kind == KindFile
}

const (
	sectionSEO     = "SEO Settings"
	sectionHero    = "Hero Section"
	sectionBody    = "Main Content"
	sectionSlider  = "Hero Slider"
	sectionSocial  = "Social Links"
	sectionAbout   = "About Section"
	sectionContact = "Contact Details"
	sectionFiles   = "Downloads"
)

var commonFields = []Field{
	{"seo_title", "SEO Title", KindText, sectionSEO},
	{"seo_description", "SEO Description", KindTextarea, sectionSEO},
	{"seo_keywords", "SEO Keywords", KindText, sectionSEO},
	{"og_image", "Social Share Image", KindImage, sectionSEO},
	{"hero_title", "Hero Title", KindText, sectionHero},
	{"hero_subtitle", "Hero Subtitle", KindTextarea, sectionHero},
	{"hero_image", "Hero Image", KindImage, sectionHero},
	{"content", "Content", KindTextarea, sectionBody},
	{"html_content", "HTML Content", KindTextarea, sectionBody},
}

var extraFields = map[models.PageType][]Field{
	models.PageHome: {
		{"hero_image_1", "Slider Image 1", KindImage, sectionSlider},
		{"hero_image_2", "Slider Image 2", KindImage, sectionSlider},
		{"hero_image_3", "Slider Image 3", KindImage, sectionSlider},
		{"hero_image_4", "Slider Image 4", KindImage, sectionSlider},
		{"hero_image_5", "Slider Image 5", KindImage, sectionSlider},
		{"facebook_url", "Facebook URL", KindURL, sectionSocial},
		{"instagram_url", "Instagram URL", KindURL, sectionSocial},
		{"tiktok_url", "TikTok URL", KindURL, sectionSocial},
		{"linkedin_url", "LinkedIn URL", KindURL, sectionSocial},
		{"youtube_url", "YouTube URL", KindURL, sectionSocial},
		{"about_section_title", "About Section Title", KindText, sectionAbout},
		{"about_section_content", "About Section Content", KindTextarea, sectionAbout},
		{"clients_served_count", "Clients Served", KindText, sectionAbout},
		{"expert_support_text", "Expert Support Text", KindText, sectionAbout},
	},
	models.PageAbout: {
		{"clients_served_count", "Clients Served", KindText, sectionAbout},
		{"expert_support_text", "Expert Support Text", KindText, sectionAbout},
	},
	models.PageContact: {
		{"address", "Address", KindTextarea, sectionContact},
		{"phone", "Phone", KindText, sectionContact},
		{"email", "Email", KindText, sectionContact},
		{"map_embed_url", "Google Maps Embed URL", KindURL, sectionContact},
	},
	models.PageWholesale: {
		{"catalogue_file", "Catalogue File", KindFile, sectionFiles},
	},
}

// Schema returns the closed field list of a page type.
func Schema(page models.PageType) []Field {
	fields := make([]Field, 0, len(commonFields)+len(extraFields[page]))
	fields = append(fields, commonFields...)
	fields = append(fields, extraFields[page]...)
	return fields
}

// Section groups consecutive fields under one heading.
type Section struct {
	Title  string
	Fields []Field
}

// Sections groups the schema for rendering, keeping first-seen order.
func Sections(page models.PageType) []Section {
	var out []Section
	index := map[string]int{}
	for _, f := range Schema(page) {
		i, ok := index[f.Section]
		if !ok {
			i = len(out)
			index[f.Section] = i
			out = append(out, Section{Title: f.Section})
		}
		out[i].Fields = append(out[i].Fields, f)
	}
	return out
}

// Values flattens a fetched record into strings keyed by schema field.
// Fields the record lacks become empty strings.
func Values(page models.PageType, record map[string]any) map[string]string {
	out := make(map[string]string)
	for _, f := range Schema(page) {
		out[f.Name] = cast.ToString(record[f.Name])
	}
	return out
}

func (k FieldKind) String() string {
	return string(k)
}
