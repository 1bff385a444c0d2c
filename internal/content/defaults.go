// Package content holds the fallback copy shown when the CMS has nothing for
// a page, and the field layout of every editable page.
package content

import (
	"strings"

	"github.com/example/tmrsite/internal/models"
)

const (
	DefaultDescription = "High-quality industrial equipment and hardware products."

	defaultHomeTitle       = "Home"
	defaultHomeDescription = "Welcome to TMR International, your source for premium hardware products."
	defaultHomeHero        = "Heavy Duty Gear. Built Tough For The Pros."
	defaultHomeSubtitle    = "Power up your jobsite."
	defaultClientsServed   = "500+"
	defaultExpertSupport   = "Expert support from people who know the trade."
	defaultAboutSection    = "Built For The Jobsite"

	defaultAboutTitle       = "About Us"
	defaultAboutDescription = "Learn more about our company and mission."
	defaultAboutHero        = "Heavy Duty Heritage"
	defaultAboutContent     = "TMR Project was founded with a single mission: to provide the toughest, most reliable industrial equipment on the market.\n\nFrom heavy machinery to precision tools, we serve professionals who demand excellence."

	defaultContactTitle       = "Contact Us"
	defaultContactDescription = "Get in touch with us for industrial equipment inquiries."
	defaultContactSubtitle    = "Get in Touch"

	defaultWholesaleTitle       = "Wholesale & Bulk Orders"
	defaultWholesaleDescription = "B2B solutions and wholesale pricing for industrial equipment."
	defaultWholesaleHero        = "Industrial Wholesale"
	defaultWholesaleSubtitle    = "Partner with Power"

	defaultBrandTitle       = "Our Brands"
	defaultBrandDescription = "Explore our partner brands and their premium industrial products."
)

func fill(dst *string, fallback string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = fallback
	}
}

func applyCommon(c *models.CommonContent, title, description, hero string) {
	fill(&c.SEOTitle, title)
	fill(&c.SEODescription, description)
	fill(&c.HeroTitle, hero)
}

func ApplyHomeDefaults(h *models.HomeContent) {
	if h == nil {
		return
	}
	applyCommon(&h.CommonContent, defaultHomeTitle, defaultHomeDescription, defaultHomeHero)
	fill(&h.HeroSubtitle, defaultHomeSubtitle)
	fill(&h.AboutSectionTitle, defaultAboutSection)
	fill(&h.AboutSectionContent, defaultAboutContent)
	fill(&h.ClientsServedCount, defaultClientsServed)
	fill(&h.ExpertSupportText, defaultExpertSupport)
}

func ApplyAboutDefaults(a *models.AboutContent) {
	if a == nil {
		return
	}
	applyCommon(&a.CommonContent, defaultAboutTitle, defaultAboutDescription, defaultAboutHero)
	if strings.TrimSpace(a.HTMLContent) == "" {
		fill(&a.Content, defaultAboutContent)
	}
	fill(&a.ClientsServedCount, defaultClientsServed)
	fill(&a.ExpertSupportText, defaultExpertSupport)
}

func ApplyContactDefaults(c *models.ContactContent) {
	if c == nil {
		return
	}
	applyCommon(&c.CommonContent, defaultContactTitle, defaultContactDescription, defaultContactTitle)
	fill(&c.HeroSubtitle, defaultContactSubtitle)
}

func ApplyWholesaleDefaults(w *models.WholesaleContent) {
	if w == nil {
		return
	}
	applyCommon(&w.CommonContent, defaultWholesaleTitle, defaultWholesaleDescription, defaultWholesaleHero)
	fill(&w.HeroSubtitle, defaultWholesaleSubtitle)
}

func ApplyBrandDefaults(b *models.BrandContent) {
	if b == nil {
		return
	}
	applyCommon(&b.CommonContent, defaultBrandTitle, defaultBrandDescription, defaultBrandTitle)
}
