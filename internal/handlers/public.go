package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/catalog"
	"github.com/example/tmrsite/internal/content"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/utils"
	"github.com/example/tmrsite/internal/views"
)

const (
	featuredLimit     = 4
	showcaseLimit     = 4
	categoryTileLimit = 6
	relatedLimit      = 4
)

// PublicHandler renders the marketing site.
type PublicHandler struct {
	base
}

// NewPublicHandler constructs PublicHandler.
func NewPublicHandler(api *apiclient.Client, renderer *views.Renderer, site views.Site) *PublicHandler {
	return &PublicHandler{base: newBase(api, renderer, site)}
}

// CategoryTile is one homepage category card.
type CategoryTile struct {
	Name  string
	Image string
	URL   string
}

// BrandGroup pairs a brand with a few of its products.
type BrandGroup struct {
	Brand    models.Brand
	Products []models.Product
}

type HomeData struct {
	Content      models.HomeContent
	Slides       []string
	Socials      []models.SocialLink
	Featured     []models.Product
	Tiles        []CategoryTile
	Showcase     []BrandGroup
	Grid         ProductGrid
	CatalogueURL string
}

type ProductsData struct {
	Heading string
	Grid    ProductGrid
}

type ProductDetailData struct {
	Product    models.Product
	Related    []models.Product
	InquiryURL string
}

type AboutData struct {
	Content models.AboutContent
}

type BrandsData struct {
	Content models.BrandContent
	Brands  []models.Brand
}

type BrandData struct {
	Brand models.Brand
	Grid  ProductGrid
}

type ErrorData struct {
	Status  int
	Message string
}

// loadContent fetches a page record into dst, keeping dst untouched on failure
// so the static defaults apply.
func (h *PublicHandler) loadContent(ctx context.Context, page models.PageType, dst any) {
	if err := h.api.Page(ctx, page, dst); err != nil {
		log.Printf("[Public] %s content unavailable, using defaults: %v", page, err)
	}
}

// catalogData is the product, brand and category lists of one request.
type catalogData struct {
	products    []models.Product
	brands      []models.Brand
	categories  []models.Category
	productsErr error
}

// fetchCatalog loads the three catalog lists concurrently. Brand and category
// failures only shrink the sidebar.
func (h *PublicHandler) fetchCatalog(ctx context.Context, g *errgroup.Group, q apiclient.ProductQuery, out *catalogData) {
	g.Go(func() error {
		products, err := h.api.Products(ctx, q)
		if err != nil {
			log.Printf("[Public] products unavailable: %v", err)
			out.productsErr = err
			return nil
		}
		out.products = products
		return nil
	})
	g.Go(func() error {
		brands, err := h.api.Brands(ctx)
		if err != nil {
			log.Printf("[Public] brands unavailable: %v", err)
			return nil
		}
		out.brands = brands
		return nil
	})
	g.Go(func() error {
		categories, err := h.api.Categories(ctx)
		if err != nil {
			log.Printf("[Public] categories unavailable: %v", err)
			return nil
		}
		out.categories = categories
		return nil
	})
}

// Home renders the landing page.
func (h *PublicHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		g         errgroup.Group
		data      catalogData
		home      models.HomeContent
		wholesale models.WholesaleContent
		curated   []models.HomeCategory
	)
	h.fetchCatalog(ctx, &g, apiclient.ProductQuery{}, &data)
	g.Go(func() error {
		h.loadContent(ctx, models.PageHome, &home)
		return nil
	})
	g.Go(func() error {
		h.loadContent(ctx, models.PageWholesale, &wholesale)
		return nil
	})
	g.Go(func() error {
		entries, err := h.api.HomeCategories(ctx)
		if err != nil {
			log.Printf("[Public] home categories unavailable: %v", err)
			return nil
		}
		curated = entries
		return nil
	})
	_ = g.Wait()

	content.ApplyHomeDefaults(&home)

	filter := catalog.ParseFilter(requestQuery(c), nil, data.categories)
	filter.Brands = catalog.NewIDSet()

	page := HomeData{
		Content:      home,
		Slides:       home.SliderImages(),
		Socials:      home.SocialLinks(),
		Featured:     featured(data.products),
		Tiles:        categoryTiles(curated, data.categories),
		Showcase:     brandShowcase(data.brands, data.products),
		CatalogueURL: wholesale.CatalogueFile,
		Grid: buildGrid(gridInput{
			path:       "/",
			products:   data.products,
			categories: data.categories,
			filter:     filter,
			show:       utils.ParseDisplayCount(c, catalog.PageStep),
		}),
	}

	seo := views.SEOInput{
		Title:       home.SEOTitle,
		Description: home.SEODescription,
		Keywords:    home.SEOKeywords,
		Image:       firstNonEmpty(home.OGImage, home.HeroImage),
	}
	return h.render(c, fiber.StatusOK, "public/home", "home", seo, page)
}

func featured(products []models.Product) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.IsFeatured {
			out = append(out, p)
			if len(out) == featuredLimit {
				break
			}
		}
	}
	return out
}

// categoryTiles prefers the curated entries and falls back to the first
// categories when nothing is curated.
func categoryTiles(curated []models.HomeCategory, categories []models.Category) []CategoryTile {
	if len(curated) > 0 {
		sorted := append([]models.HomeCategory(nil), curated...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
		tiles := make([]CategoryTile, 0, len(sorted))
		for _, e := range sorted {
			tiles = append(tiles, CategoryTile{
				Name:  e.DisplayName(),
				Image: e.DisplayImage(),
				URL:   categoryURL(e.CategorySlug, e.Category),
			})
		}
		return tiles
	}

	tiles := make([]CategoryTile, 0, categoryTileLimit)
	for _, cat := range categories {
		if len(tiles) == categoryTileLimit {
			break
		}
		tiles = append(tiles, CategoryTile{Name: cat.Name, URL: categoryURL(cat.Slug, cat.ID)})
	}
	return tiles
}

func brandShowcase(brands []models.Brand, products []models.Product) []BrandGroup {
	var out []BrandGroup
	for _, b := range brands {
		items := catalog.Apply(products, catalog.Filter{Brands: catalog.NewIDSet(b.ID)})
		if len(items) == 0 {
			continue
		}
		if len(items) > showcaseLimit {
			items = items[:showcaseLimit]
		}
		out = append(out, BrandGroup{Brand: b, Products: items})
	}
	return out
}

// Products renders the filterable catalog.
func (h *PublicHandler) Products(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		g    errgroup.Group
		data catalogData
	)
	h.fetchCatalog(ctx, &g, apiclient.ProductQuery{}, &data)
	_ = g.Wait()

	filter := catalog.ParseFilter(requestQuery(c), data.brands, data.categories)
	page := ProductsData{
		Heading: "Our Products",
		Grid: buildGrid(gridInput{
			path:       "/products",
			products:   data.products,
			brands:     data.brands,
			categories: data.categories,
			filter:     filter,
			show:       utils.ParseDisplayCount(c, catalog.PageStep),
			showBrands: true,
		}),
	}

	seo := views.SEOInput{Title: "Products", Description: "Browse our range of professional industrial equipment and hardware."}
	return h.render(c, fiber.StatusOK, "public/products", "products", seo, page)
}

// ProductDetail renders a single product by slug.
func (h *PublicHandler) ProductDetail(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	var (
		g        errgroup.Group
		product  models.Product
		fetchErr error
		all      []models.Product
	)
	g.Go(func() error {
		product, fetchErr = h.api.Product(ctx, slug)
		return nil
	})
	g.Go(func() error {
		products, err := h.api.Products(ctx, apiclient.ProductQuery{})
		if err != nil {
			log.Printf("[Public] related products unavailable: %v", err)
			return nil
		}
		all = products
		return nil
	})
	_ = g.Wait()

	if fetchErr != nil {
		if errors.Is(fetchErr, apiclient.ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Printf("[Public] product %s unavailable: %v", slug, fetchErr)
		return fiber.NewError(fiber.StatusServiceUnavailable, "This product could not be loaded right now.")
	}

	text := fmt.Sprintf("Hi %s, I am interested in: %s (SKU: %d). %s", h.site.Name, product.Name, product.ID, h.site.BuildSEO(views.SEOInput{}, c.Path()).Canonical)
	page := ProductDetailData{
		Product:    product,
		Related:    related(product, all),
		InquiryURL: h.site.WhatsAppURL(strings.TrimSpace(text)),
	}

	seo := views.SEOInput{
		Title:       firstNonEmpty(product.MetaTitle, product.Name),
		Description: firstNonEmpty(product.MetaDescription, summarize(product.Specifications, 160)),
		Keywords:    product.MetaKeywords,
		Image:       firstNonEmpty(product.OGImage, product.Image),
		Type:        "product",
	}
	return h.render(c, fiber.StatusOK, "public/product_detail", "products", seo, page)
}

func related(p models.Product, all []models.Product) []models.Product {
	if len(p.Categories) == 0 {
		return nil
	}
	var out []models.Product
	for _, other := range catalog.Apply(all, catalog.Filter{Categories: catalog.NewIDSet(p.CategoryIDs()...)}) {
		if other.ID == p.ID {
			continue
		}
		out = append(out, other)
		if len(out) == relatedLimit {
			break
		}
	}
	return out
}

// Brands renders the brand index.
func (h *PublicHandler) Brands(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		g      errgroup.Group
		page   models.BrandContent
		brands []models.Brand
	)
	g.Go(func() error {
		h.loadContent(ctx, models.PageBrand, &page)
		return nil
	})
	g.Go(func() error {
		list, err := h.api.Brands(ctx)
		if err != nil {
			log.Printf("[Public] brands unavailable: %v", err)
			return nil
		}
		brands = list
		return nil
	})
	_ = g.Wait()

	content.ApplyBrandDefaults(&page)
	seo := views.SEOInput{Title: page.SEOTitle, Description: page.SEODescription, Keywords: page.SEOKeywords, Image: page.OGImage}
	return h.render(c, fiber.StatusOK, "public/brands", "brands", seo, BrandsData{Content: page, Brands: brands})
}

// Brand renders one brand by numeric ID or slug together with its products.
func (h *PublicHandler) Brand(c *fiber.Ctx) error {
	ctx := c.UserContext()
	key := c.Params("id")

	brand, err := h.findBrand(ctx, key)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Printf("[Public] brand %s unavailable: %v", key, err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "This brand could not be loaded right now.")
	}

	var (
		g    errgroup.Group
		data catalogData
	)
	h.fetchCatalog(ctx, &g, apiclient.ProductQuery{Brand: strconv.FormatInt(brand.ID, 10)}, &data)
	_ = g.Wait()

	products := catalog.Apply(data.products, catalog.Filter{Brands: catalog.NewIDSet(brand.ID)})
	filter := catalog.ParseFilter(requestQuery(c), nil, data.categories)
	grid := buildGrid(gridInput{
		path:       c.Path(),
		products:   products,
		categories: data.categories,
		filter:     filter,
		show:       utils.ParseDisplayCount(c, catalog.PageStep),
	})

	seo := views.SEOInput{
		Title:       brand.Name,
		Description: firstNonEmpty(brand.Description, brand.HeroSubtitle),
		Image:       firstNonEmpty(brand.HeroImage, brand.Logo),
	}
	return h.render(c, fiber.StatusOK, "public/brand", "brands", seo, BrandData{Brand: brand, Grid: grid})
}

func (h *PublicHandler) findBrand(ctx context.Context, key string) (models.Brand, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil && id > 0 {
		return h.api.Brand(ctx, id)
	}
	brands, err := h.api.Brands(ctx)
	if err != nil {
		return models.Brand{}, err
	}
	for _, b := range brands {
		if strings.EqualFold(b.Slug, key) {
			return b, nil
		}
	}
	return models.Brand{}, apiclient.ErrNotFound
}

// About renders the about page.
func (h *PublicHandler) About(c *fiber.Ctx) error {
	var page models.AboutContent
	h.loadContent(c.UserContext(), models.PageAbout, &page)
	content.ApplyAboutDefaults(&page)

	seo := views.SEOInput{
		Title:       firstNonEmpty(page.SEOTitle, page.HeroTitle),
		Description: page.SEODescription,
		Keywords:    page.SEOKeywords,
		Image:       firstNonEmpty(page.OGImage, page.HeroImage),
	}
	return h.render(c, fiber.StatusOK, "public/about", "about", seo, AboutData{Content: page})
}

// NotFound renders the 404 page for unmatched routes.
func (h *PublicHandler) NotFound(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusNotFound, "public/not_found", "", views.SEOInput{Title: "Page Not Found"}, nil)
}

// ErrorHandler renders fiber errors as HTML pages.
func ErrorHandler(renderer *views.Renderer, site views.Site) fiber.ErrorHandler {
	b := newBase(nil, renderer, site)
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
			code = fe.Code
			message = fe.Message
		} else {
			log.Printf("[HTTP] %s %s: %v", c.Method(), c.Path(), err)
		}

		if views.IsHTMX(c) {
			return b.views.Notify(c, "error", message)
		}
		if code == fiber.StatusNotFound {
			return b.render(c, code, "public/not_found", "", views.SEOInput{Title: "Page Not Found"}, nil)
		}
		if rerr := b.render(c, code, "public/error", "", views.SEOInput{Title: "Error"}, ErrorData{Status: code, Message: message}); rerr != nil {
			return c.Status(code).SendString(message)
		}
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func summarize(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	head := string(runes[:limit])
	if cut := strings.LastIndex(head, " "); cut > 0 {
		head = head[:cut]
	}
	return head + "…"
}
