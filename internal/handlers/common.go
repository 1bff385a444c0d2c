package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/catalog"
	"github.com/example/tmrsite/internal/middleware"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/views"
)

// LeadNotifier is told about every lead accepted by the API.
type LeadNotifier interface {
	NotifyContactInquiry(ctx context.Context, in models.ContactInquiryInput) error
	NotifyWholesaleInquiry(ctx context.Context, in models.WholesaleInquiryInput) error
}

// base carries what every handler needs to talk to the API and render.
type base struct {
	api   *apiclient.Client
	views *views.Renderer
	site  views.Site
}

func newBase(api *apiclient.Client, renderer *views.Renderer, site views.Site) base {
	return base{api: api, views: renderer, site: site}
}

// csrfToken returns the token stored by the csrf middleware, if enabled.
func csrfToken(c *fiber.Ctx) string {
	if tok, ok := c.Locals("csrf").(string); ok {
		return tok
	}
	return ""
}

// flashFrom reads the ?message= and ?error= params set by post-redirect-get.
func flashFrom(c *fiber.Ctx) *views.Flash {
	if msg := c.Query("error"); msg != "" {
		return &views.Flash{Kind: "error", Message: msg}
	}
	if msg := c.Query("message"); msg != "" {
		return &views.Flash{Kind: "success", Message: msg}
	}
	return nil
}

func (b base) page(c *fiber.Ctx, nav string, seo views.SEOInput, data any) views.Page {
	p := views.Page{
		Site:  b.site,
		SEO:   b.site.BuildSEO(seo, c.Path()),
		Nav:   nav,
		CSRF:  csrfToken(c),
		Path:  c.Path(),
		Flash: flashFrom(c),
		Data:  data,
	}
	if s, ok := middleware.GetSession(c); ok {
		p.Session = s
	}
	return p
}

func (b base) render(c *fiber.Ctx, status int, name, nav string, seo views.SEOInput, data any) error {
	return b.views.Page(c, status, name, b.page(c, nav, seo, data))
}

// client returns the API client authenticated as the current admin.
func (b base) client(c *fiber.Ctx) *apiclient.Client {
	if s, ok := middleware.GetSession(c); ok {
		return b.api.WithToken(s.APIToken)
	}
	return b.api
}

// formStatus keeps htmx swapping on rejected input; htmx ignores 4xx bodies.
func formStatus(c *fiber.Ctx, status int) int {
	if views.IsHTMX(c) {
		return fiber.StatusOK
	}
	return status
}

// formValues returns every value of a repeated field, from multipart or
// urlencoded bodies.
func formValues(c *fiber.Ctx, name string) []string {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		return form.Value[name]
	}
	var out []string
	for _, v := range c.Request().PostArgs().PeekMulti(name) {
		out = append(out, string(v))
	}
	return out
}

// queryValues returns every value of a repeated query param.
func queryValues(c *fiber.Ctx, name string) []string {
	var out []string
	for _, v := range c.Context().QueryArgs().PeekMulti(name) {
		out = append(out, string(v))
	}
	return out
}

func formIDs(c *fiber.Ctx, name string) catalog.IDSet {
	return catalog.ParseIDSet(formValues(c, name))
}

// upload reads a newly chosen file. A missing or empty part yields nil so the
// field is left out of the request.
func upload(c *fiber.Ctx, field string) (*apiclient.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil
	}
	return readUpload(fh)
}

func readUpload(fh *multipart.FileHeader) (*apiclient.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &apiclient.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// attach adds each uploaded file in fields to the form.
func attach(c *fiber.Ctx, form *apiclient.Form, fields ...string) error {
	for _, field := range fields {
		up, err := upload(c, field)
		if err != nil {
			return err
		}
		form.File(field, up)
	}
	return nil
}

func redirectWith(c *fiber.Ctx, path, key, msg string) error {
	return c.Redirect(path+"?"+key+"="+url.QueryEscape(strings.TrimSpace(msg)), fiber.StatusSeeOther)
}

// apiFailure logs an API error and returns the text for an admin banner. A
// token the API no longer accepts ends the admin session.
func apiFailure(c *fiber.Ctx, what string, err error) string {
	log.Printf("[Admin] %s failed: %v", what, err)
	if errors.Is(err, apiclient.ErrUnauthorized) {
		middleware.RevokeSession(c)
		return "Your session is no longer accepted by the server. Please sign in again."
	}
	return apiclient.Describe(err)
}

func requestQuery(c *fiber.Ctx) url.Values {
	q, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return q
}
