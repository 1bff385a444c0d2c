// Package views renders the embedded HTML templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/media"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var sharedPatterns = []string{"templates/layouts/*.html", "templates/partials/*.html"}

// Renderer holds one parsed template set per page plus a set for partials.
type Renderer struct {
	pages    map[string]*template.Template
	partials *template.Template
}

// New parses every template. Page sets are keyed by their path below
// templates/pages without extension, e.g. "public/home".
func New(resolver *media.Resolver) (*Renderer, error) {
	funcs := Funcs(resolver)

	partials, err := template.New("").Funcs(funcs).ParseFS(templateFS, sharedPatterns...)
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}
	base, err := template.New("").Funcs(funcs).ParseFS(templateFS, sharedPatterns...)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		tmpl, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", file, err)
		}
		if _, err := tmpl.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		key := strings.TrimSuffix(strings.TrimPrefix(file, "templates/pages/"), ".html")
		pages[key] = tmpl
	}

	log.Printf("[Views] loaded %d pages", len(pages))
	return &Renderer{pages: pages, partials: partials}, nil
}

// Static serves the embedded stylesheet and images.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// isNavigation marks htmx requests that only swap the main content area.
func isNavigation(c *fiber.Ctx) bool {
	return IsHTMX(c) && c.Get("HX-Target") == "main-content"
}

func layoutFor(name string) string {
	if strings.HasPrefix(name, "admin/") {
		return "admin"
	}
	return "base"
}

// Page renders a full page, or only its "content" block for htmx navigation.
func (r *Renderer) Page(c *fiber.Ctx, status int, name string, data Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}

	entry := layoutFor(name)
	if isNavigation(c) {
		entry = "content"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, data); err != nil {
		log.Printf("[Views] render %s: %v", name, err)
		return fmt.Errorf("render %s: %w", name, err)
	}
	return send(c, status, buf.Bytes())
}

// Partial renders a named fragment shared across pages.
func (r *Renderer) Partial(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.partials.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[Views] render partial %s: %v", name, err)
		return fmt.Errorf("render partial %s: %w", name, err)
	}
	return send(c, status, buf.Bytes())
}

// Notify swaps a notification into the page-level notification area,
// whatever element the request originally targeted.
func (r *Renderer) Notify(c *fiber.Ctx, kind, message string) error {
	c.Set("HX-Retarget", "#notifications")
	c.Set("HX-Reswap", "innerHTML")
	return r.Partial(c, fiber.StatusOK, "notification", Flash{Kind: kind, Message: message})
}

func send(c *fiber.Ctx, status int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(body)
}
