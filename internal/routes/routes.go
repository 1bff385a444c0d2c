package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/config"
	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/handlers"
	"github.com/example/tmrsite/internal/middleware"
	"github.com/example/tmrsite/internal/session"
	"github.com/example/tmrsite/internal/views"
)

const (
	csrfHeader = "X-Csrf-Token"
	csrfField  = "_csrf"
)

var errMissingCSRF = errors.New("missing csrf token")

// Deps are the long-lived services shared by every handler.
type Deps struct {
	API      *apiclient.Client
	Views    *views.Renderer
	Site     views.Site
	Sessions *session.Manager
	Notifier handlers.LeadNotifier
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, cfg *config.Config, deps Deps) {
	if cfg.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			CookieName:     "tmr_csrf",
			CookieSameSite: "Lax",
			CookieSecure:   cfg.CookieSecure,
			CookieHTTPOnly: true,
			Expiration:     2 * time.Hour,
			ContextKey:     "csrf",
			Extractor:      csrfFromHeaderOrForm,
		}))
	}

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   views.Static(),
		MaxAge: 3600,
	}))

	validator := forms.NewValidator()

	publicHandler := handlers.NewPublicHandler(deps.API, deps.Views, deps.Site)
	leadHandler := handlers.NewLeadHandler(deps.API, deps.Views, deps.Site, validator, deps.Notifier)
	authHandler := handlers.NewAuthHandler(deps.API, deps.Views, deps.Site, deps.Sessions, validator)
	adminHandler := handlers.NewAdminHandler(deps.API, deps.Views, deps.Site, validator)

	// Public site
	app.Get("/", publicHandler.Home)
	app.Get("/about", publicHandler.About)
	app.Get("/products", publicHandler.Products)
	app.Get("/products/:slug", publicHandler.ProductDetail)
	app.Get("/brands", publicHandler.Brands)
	app.Get("/brands/:id", publicHandler.Brand)

	app.Get("/contact", leadHandler.ContactPage)
	app.Post("/contact", leadHandler.ContactSubmit)
	app.Get("/wholesale", leadHandler.WholesalePage)
	app.Post("/wholesale", leadHandler.WholesaleSubmit)
	app.Get("/wholesale/picker", leadHandler.Picker)

	// Admin sign-in, registered before the guarded group
	app.Get(middleware.LoginPath, authHandler.LoginPage)
	app.Post(middleware.LoginPath, authHandler.Login)
	app.Post("/admin/logout", authHandler.Logout)

	admin := app.Group("/admin", middleware.RequireAdmin(deps.Sessions))
	admin.Get("/", adminHandler.Dashboard)
	admin.Get("/dashboard", adminHandler.Dashboard)

	brands := admin.Group("/brands")
	brands.Get("/", adminHandler.ListBrands)
	brands.Get("/new", adminHandler.NewBrand)
	brands.Post("/", adminHandler.CreateBrand)
	brands.Get("/:id/edit", adminHandler.EditBrand)
	brands.Post("/:id", adminHandler.UpdateBrand)
	brands.Delete("/:id", adminHandler.DeleteBrand)
	brands.Post("/:id/delete", adminHandler.DeleteBrand)

	categories := admin.Group("/categories")
	categories.Get("/", adminHandler.ListCategories)
	categories.Get("/new", adminHandler.NewCategory)
	categories.Post("/", adminHandler.CreateCategory)
	categories.Get("/:id/edit", adminHandler.EditCategory)
	categories.Post("/:id", adminHandler.UpdateCategory)
	categories.Delete("/:id", adminHandler.DeleteCategory)
	categories.Post("/:id/delete", adminHandler.DeleteCategory)

	homeCategories := admin.Group("/home-categories")
	homeCategories.Get("/", adminHandler.ListHomeCategories)
	homeCategories.Get("/new", adminHandler.NewHomeCategory)
	homeCategories.Post("/", adminHandler.CreateHomeCategory)
	homeCategories.Get("/:id/edit", adminHandler.EditHomeCategory)
	homeCategories.Post("/:id", adminHandler.UpdateHomeCategory)
	homeCategories.Delete("/:id", adminHandler.DeleteHomeCategory)
	homeCategories.Post("/:id/delete", adminHandler.DeleteHomeCategory)

	products := admin.Group("/products")
	products.Get("/", adminHandler.ListProducts)
	products.Get("/new", adminHandler.NewProduct)
	products.Post("/", adminHandler.CreateProduct)
	products.Get("/:slug/edit", adminHandler.EditProduct)
	products.Post("/:slug", adminHandler.UpdateProduct)
	products.Delete("/:slug", adminHandler.DeleteProduct)
	products.Post("/:slug/delete", adminHandler.DeleteProduct)

	admin.Post("/quick/brands", adminHandler.QuickBrand)
	admin.Post("/quick/categories", adminHandler.QuickCategory)

	admin.Get("/pages", adminHandler.ListPages)
	admin.Get("/pages/:type", adminHandler.EditPage)
	admin.Post("/pages/:type", adminHandler.UpdatePage)

	leads := admin.Group("/leads")
	leads.Get("/", adminHandler.ListLeads)
	leads.Get("/export.xlsx", adminHandler.ExportLeads)
	leads.Get("/:type/:id", adminHandler.ShowLead)
	leads.Post("/:type/:id/resolve", adminHandler.ToggleLead)

	app.Use(publicHandler.NotFound)
}

// csrfFromHeaderOrForm accepts the token htmx sends as a header or the hidden
// field of a plain form post.
func csrfFromHeaderOrForm(c *fiber.Ctx) (string, error) {
	if token := c.Get(csrfHeader); token != "" {
		return token, nil
	}
	if token := c.FormValue(csrfField); token != "" {
		return token, nil
	}
	return "", errMissingCSRF
}
