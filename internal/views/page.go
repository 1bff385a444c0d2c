package views

import (
	"net/url"
	"strings"
	"time"

	"github.com/example/tmrsite/internal/content"
	"github.com/example/tmrsite/internal/media"
	"github.com/example/tmrsite/internal/models"
)

// Site carries the values every layout needs.
type Site struct {
	Name     string
	URL      string
	WhatsApp string
	Media    *media.Resolver
}

// Year is used by the footer.
func (s Site) Year() int {
	return time.Now().Year()
}

// WhatsAppURL opens a chat with the sales number, prefilled with text.
func (s Site) WhatsAppURL(text string) string {
	u := "https://wa.me/" + s.WhatsApp
	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}
	return u
}

// Flash is a one-shot notification.
type Flash struct {
	Kind    string
	Message string
}

// Page is the root value passed to every page template.
type Page struct {
	Site    Site
	SEO     SEO
	Nav     string
	CSRF    string
	Path    string
	Flash   *Flash
	Session *models.AdminSession
	Data    any
}

// SEO is the head metadata of a page.
type SEO struct {
	Title       string
	Description string
	Keywords    string
	Image       string
	Canonical   string
	Type        string
}

// SEOInput is the raw metadata a page supplies.
type SEOInput struct {
	Title       string
	Description string
	Keywords    string
	Image       string
	Type        string
}

// BuildSEO formats titles as "<title> | <site>" and fills defaults.
func (s Site) BuildSEO(in SEOInput, path string) SEO {
	out := SEO{
		Title:       s.Name,
		Description: strings.TrimSpace(in.Description),
		Keywords:    strings.TrimSpace(in.Keywords),
		Type:        in.Type,
	}
	if title := strings.TrimSpace(in.Title); title != "" && title != s.Name {
		out.Title = title + " | " + s.Name
	}
	if out.Description == "" {
		out.Description = content.DefaultDescription
	}
	if out.Type == "" {
		out.Type = "website"
	}
	if in.Image != "" && s.Media != nil {
		out.Image = s.Media.Fix(in.Image)
	}
	if s.URL != "" {
		out.Canonical = strings.TrimRight(s.URL, "/") + path
	}
	return out
}
