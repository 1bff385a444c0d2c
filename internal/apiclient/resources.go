package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/example/tmrsite/internal/models"
)

func idPath(resource string, id int64) string {
	return resource + "/" + strconv.FormatInt(id, 10) + "/"
}

func keyPath(resource, key string) string {
	return resource + "/" + url.PathEscape(key) + "/"
}

// Login exchanges admin credentials for an API token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "auth/login/", payload, &resp); err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", fmt.Errorf("login response without token: %w", ErrUnauthorized)
	}
	return resp.Token, nil
}

// Brands

func (c *Client) Brands(ctx context.Context) ([]models.Brand, error) {
	return getList[models.Brand](ctx, c, "brands/", nil)
}

func (c *Client) Brand(ctx context.Context, id int64) (models.Brand, error) {
	var b models.Brand
	err := c.getJSON(ctx, idPath("brands", id), nil, &b)
	return b, err
}

func (c *Client) CreateBrand(ctx context.Context, form *Form) (models.Brand, error) {
	var b models.Brand
	err := c.sendForm(ctx, http.MethodPost, "brands/", form, &b)
	return b, err
}

func (c *Client) UpdateBrand(ctx context.Context, id int64, form *Form) (models.Brand, error) {
	var b models.Brand
	err := c.sendForm(ctx, http.MethodPatch, idPath("brands", id), form, &b)
	return b, err
}

func (c *Client) DeleteBrand(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath("brands", id))
}

// Categories

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	return getList[models.Category](ctx, c, "categories/", nil)
}

func (c *Client) Category(ctx context.Context, id int64) (models.Category, error) {
	var cat models.Category
	err := c.getJSON(ctx, idPath("categories", id), nil, &cat)
	return cat, err
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	var cat models.Category
	err := c.sendJSON(ctx, http.MethodPost, "categories/", in, &cat)
	return cat, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in models.CategoryInput) (models.Category, error) {
	var cat models.Category
	err := c.sendJSON(ctx, http.MethodPatch, idPath("categories", id), in, &cat)
	return cat, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath("categories", id))
}

// Products

// ProductQuery narrows the product list on the server side.
type ProductQuery struct {
	Brand    string
	Category string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Brand != "" {
		v.Set("brand", q.Brand)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}

func (c *Client) Products(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	return getList[models.Product](ctx, c, "products/", q.values())
}

func (c *Client) Product(ctx context.Context, slug string) (models.Product, error) {
	var p models.Product
	err := c.getJSON(ctx, keyPath("products", slug), nil, &p)
	return p, err
}

func (c *Client) CreateProduct(ctx context.Context, form *Form) (models.Product, error) {
	var p models.Product
	err := c.sendForm(ctx, http.MethodPost, "products/", form, &p)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, slug string, form *Form) (models.Product, error) {
	var p models.Product
	err := c.sendForm(ctx, http.MethodPatch, keyPath("products", slug), form, &p)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, slug string) error {
	return c.delete(ctx, keyPath("products", slug))
}

// Home category curation

func (c *Client) HomeCategories(ctx context.Context) ([]models.HomeCategory, error) {
	return getList[models.HomeCategory](ctx, c, "home-categories/", nil)
}

func (c *Client) HomeCategory(ctx context.Context, id int64) (models.HomeCategory, error) {
	var h models.HomeCategory
	err := c.getJSON(ctx, idPath("home-categories", id), nil, &h)
	return h, err
}

func (c *Client) CreateHomeCategory(ctx context.Context, form *Form) (models.HomeCategory, error) {
	var h models.HomeCategory
	err := c.sendForm(ctx, http.MethodPost, "home-categories/", form, &h)
	return h, err
}

func (c *Client) UpdateHomeCategory(ctx context.Context, id int64, form *Form) (models.HomeCategory, error) {
	var h models.HomeCategory
	err := c.sendForm(ctx, http.MethodPatch, idPath("home-categories", id), form, &h)
	return h, err
}

func (c *Client) DeleteHomeCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath("home-categories", id))
}

// CMS pages

// Page decodes the content record of a page type into out, which is one of
// the models content structs or a map for the editor.
func (c *Client) Page(ctx context.Context, page models.PageType, out any) error {
	return c.getJSON(ctx, keyPath("pages", string(page)), nil, out)
}

func (c *Client) UpdatePage(ctx context.Context, page models.PageType, form *Form) error {
	return c.sendForm(ctx, http.MethodPatch, keyPath("pages", string(page)), form, nil)
}

// Leads

func (c *Client) ContactLeads(ctx context.Context) ([]models.ContactInquiry, error) {
	return getList[models.ContactInquiry](ctx, c, "leads/contact/", nil)
}

func (c *Client) WholesaleLeads(ctx context.Context) ([]models.WholesaleInquiry, error) {
	return getList[models.WholesaleInquiry](ctx, c, "leads/wholesale/", nil)
}

func (c *Client) CreateContactLead(ctx context.Context, in models.ContactInquiryInput) error {
	return c.sendJSON(ctx, http.MethodPost, "leads/contact/", in, nil)
}

func (c *Client) CreateWholesaleLead(ctx context.Context, in models.WholesaleInquiryInput) error {
	if in.BrandIDs == nil {
		in.BrandIDs = []int64{}
	}
	if in.ProductIDs == nil {
		in.ProductIDs = []int64{}
	}
	return c.sendJSON(ctx, http.MethodPost, "leads/wholesale/", in, nil)
}

// SetLeadResolved stores the resolved flag of one lead.
func (c *Client) SetLeadResolved(ctx context.Context, kind models.LeadType, id int64, resolved bool) error {
	if _, ok := models.ParseLeadType(string(kind)); !ok {
		return errors.New("unknown lead type " + string(kind))
	}
	path := "leads/" + string(kind) + "/" + strconv.FormatInt(id, 10) + "/"
	return c.sendJSON(ctx, http.MethodPatch, path, models.Resolution{IsResolved: resolved}, nil)
}

func (c *Client) LeadStats(ctx context.Context) (models.LeadStats, error) {
	var s models.LeadStats
	err := c.getJSON(ctx, "leads/stats/", nil, &s)
	return s, err
}
