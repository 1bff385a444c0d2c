package handlers

import (
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/catalog"
	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/views"
)

const productsPath = "/admin/products"

type ProductListData struct {
	Products []models.Product
	Query    string
}

type ProductFormData struct {
	Product     models.Product
	BrandIDs    catalog.IDSet
	CategoryIDs catalog.IDSet
	Brands      []models.Brand
	Categories  []models.Category
	IsEdit      bool
	Errors      forms.Errors
	ServerError string
	Action      string
}

func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.client(c).Products(c.UserContext(), apiclient.ProductQuery{})
	if err != nil {
		return h.listFailed(c, "products", err)
	}

	query := strings.TrimSpace(c.Query("q"))
	if query != "" {
		q := strings.ToLower(query)
		matched := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Slug), q) {
				matched = append(matched, p)
			}
		}
		products = matched
	}
	return h.render(c, fiber.StatusOK, "admin/products", "products", views.SEOInput{Title: "Products"}, ProductListData{Products: products, Query: query})
}

func (h *AdminHandler) NewProduct(c *fiber.Ctx) error {
	return h.productForm(c, fiber.StatusOK, ProductFormData{Action: productsPath})
}

func (h *AdminHandler) EditProduct(c *fiber.Ctx) error {
	slug := c.Params("slug")
	product, err := h.client(c).Product(c.UserContext(), slug)
	if err != nil {
		return h.loadFailed(c, productsPath, "Product", err)
	}
	return h.productForm(c, fiber.StatusOK, ProductFormData{
		Product:     product,
		BrandIDs:    catalog.NewIDSet(product.BrandIDs()...),
		CategoryIDs: catalog.NewIDSet(product.CategoryIDs()...),
		IsEdit:      true,
		Action:      productAction(slug),
	})
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	return h.saveProduct(c, "")
}

func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	return h.saveProduct(c, c.Params("slug"))
}

// saveProduct sends the product as multipart. The image fields are only
// included when a new file was chosen, so editing text keeps the stored image.
func (h *AdminHandler) saveProduct(c *fiber.Ctx, slug string) error {
	var in forms.Product
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}
	brandIDs := formIDs(c, "brand_ids")
	categoryIDs := formIDs(c, "category_ids")

	errs := h.validator.Check(&in)
	data := ProductFormData{
		Product: models.Product{
			Name:            in.Name,
			Slug:            in.Slug,
			Specifications:  in.Specifications,
			IsFeatured:      in.IsFeatured,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
			MetaKeywords:    in.MetaKeywords,
		},
		BrandIDs:    brandIDs,
		CategoryIDs: categoryIDs,
		IsEdit:      slug != "",
		Errors:      errs,
		Action:      productsPath,
	}
	if slug != "" {
		data.Action = productAction(slug)
		if data.Product.Slug == "" {
			data.Product.Slug = slug
		}
	}
	if errs.Any() {
		return h.productForm(c, fiber.StatusUnprocessableEntity, data)
	}

	form := apiclient.NewForm().
		Set("name", in.Name).
		Set("specifications", in.Specifications).
		Set("is_featured", strconv.FormatBool(in.IsFeatured)).
		Set("meta_title", in.MetaTitle).
		Set("meta_description", in.MetaDescription).
		Set("meta_keywords", in.MetaKeywords)
	relation(form, "brand_ids", brandIDs, slug != "")
	relation(form, "category_ids", categoryIDs, slug != "")
	if in.Slug != "" {
		form.Set("slug", in.Slug)
	}
	if err := attach(c, form, "image", "og_image"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read the uploaded file")
	}

	api := h.client(c)
	var err error
	if slug != "" {
		_, err = api.UpdateProduct(c.UserContext(), slug, form)
	} else {
		_, err = api.CreateProduct(c.UserContext(), form)
	}
	if err != nil {
		data.ServerError = apiFailure(c, "save product", err)
		return h.productForm(c, fiber.StatusUnprocessableEntity, data)
	}
	return h.saved(c, productsPath, "Product saved")
}

// relation writes one repeated field per selected ID. An edit that unticks
// every option sends a single empty value so the API clears the association.
func relation(form *apiclient.Form, name string, ids catalog.IDSet, edit bool) {
	values := ids.Strings()
	if len(values) == 0 && edit {
		values = []string{""}
	}
	form.Add(name, values...)
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	return h.deleted(c, productsPath, "Product", h.client(c).DeleteProduct(c.UserContext(), c.Params("slug")))
}

// productForm loads the brand and category choices concurrently.
func (h *AdminHandler) productForm(c *fiber.Ctx, status int, data ProductFormData) error {
	ctx := c.UserContext()
	api := h.client(c)

	var g errgroup.Group
	g.Go(func() error {
		brands, err := api.Brands(ctx)
		if err != nil {
			log.Printf("[Admin] brands unavailable for product form: %v", err)
			return nil
		}
		data.Brands = brands
		return nil
	})
	g.Go(func() error {
		categories, err := api.Categories(ctx)
		if err != nil {
			log.Printf("[Admin] categories unavailable for product form: %v", err)
			return nil
		}
		data.Categories = categories
		return nil
	})
	_ = g.Wait()

	title := "New Product"
	if data.IsEdit {
		title = "Edit Product"
	}
	return h.render(c, formStatus(c, status), "admin/product_form", "products", views.SEOInput{Title: title}, data)
}

func productAction(slug string) string {
	return productsPath + "/" + url.PathEscape(slug)
}
