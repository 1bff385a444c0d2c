package models

// PageType keys the singleton CMS record of each public page.
type PageType string

const (
	PageHome      PageType = "home"
	PageAbout     PageType = "about"
	PageContact   PageType = "contact"
	PageWholesale PageType = "wholesale"
	PageBrand     PageType = "brand"
)

// PageTypes lists every editable page in admin display order.
var PageTypes = []PageType{PageHome, PageAbout, PageContact, PageWholesale, PageBrand}

// ParsePageType returns false for unknown page keys.
func ParsePageType(raw string) (PageType, bool) {
	for _, t := range PageTypes {
		if string(t) == raw {
			return t, true
		}
	}
	return "", false
}

// Label is the admin-facing name of the page.
func (t PageType) Label() string {
	switch t {
	case PageHome:
		return "Home Page"
	case PageAbout:
		return "About Us"
	case PageContact:
		return "Contact Us"
	case PageWholesale:
		return "Wholesale"
	case PageBrand:
		return "Brand Content"
	}
	return string(t)
}

// CommonContent holds the fields every page record carries.
type CommonContent struct {
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	SEOKeywords    string `json:"seo_keywords"`
	OGImage        string `json:"og_image"`
	HeroTitle      string `json:"hero_title"`
	HeroSubtitle   string `json:"hero_subtitle"`
	HeroImage      string `json:"hero_image"`
	Content        string `json:"content"`
	HTMLContent    string `json:"html_content"`
}

type HomeContent struct {
	CommonContent
	HeroImage1          string `json:"hero_image_1"`
	HeroImage2          string `json:"hero_image_2"`
	HeroImage3          string `json:"hero_image_3"`
	HeroImage4          string `json:"hero_image_4"`
	HeroImage5          string `json:"hero_image_5"`
	FacebookURL         string `json:"facebook_url"`
	InstagramURL        string `json:"instagram_url"`
	TikTokURL           string `json:"tiktok_url"`
	LinkedInURL         string `json:"linkedin_url"`
	YoutubeURL          string `json:"youtube_url"`
	AboutSectionTitle   string `json:"about_section_title"`
	AboutSectionContent string `json:"about_section_content"`
	ClientsServedCount  string `json:"clients_served_count"`
	ExpertSupportText   string `json:"expert_support_text"`
}

// SliderImages returns the non-empty hero slider images in order.
func (h HomeContent) SliderImages() []string {
	var out []string
	for _, img := range []string{h.HeroImage, h.HeroImage1, h.HeroImage2, h.HeroImage3, h.HeroImage4, h.HeroImage5} {
		if img != "" {
			out = append(out, img)
		}
	}
	return out
}

// SocialLink is a named outbound profile link.
type SocialLink struct {
	Name string
	URL  string
}

// SocialLinks returns the configured social profiles.
func (h HomeContent) SocialLinks() []SocialLink {
	var out []SocialLink
	for _, l := range []SocialLink{
		{"Facebook", h.FacebookURL},
		{"Instagram", h.InstagramURL},
		{"TikTok", h.TikTokURL},
		{"LinkedIn", h.LinkedInURL},
		{"YouTube", h.YoutubeURL},
	} {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

type AboutContent struct {
	CommonContent
	ClientsServedCount string `json:"clients_served_count"`
	ExpertSupportText  string `json:"expert_support_text"`
}

type ContactContent struct {
	CommonContent
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	MapEmbedURL string `json:"map_embed_url"`
}

type WholesaleContent struct {
	CommonContent
	CatalogueFile string `json:"catalogue_file"`
}

type BrandContent struct {
	CommonContent
}
