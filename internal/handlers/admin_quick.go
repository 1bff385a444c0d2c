package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/models"
)

// quickItem is the data of the quick_checkbox and quick_select_option
// fragments.
type quickItem struct {
	Field string
	ID    int64
	Name  string
}

// quickName reads the inline "add new" input, which is named per picker.
func quickName(c *fiber.Ctx, fields ...string) string {
	for _, f := range fields {
		if v := strings.TrimSpace(c.FormValue(f)); v != "" {
			return v
		}
	}
	return ""
}

// QuickBrand creates a brand from the product form and returns a checked box
// for it.
func (h *AdminHandler) QuickBrand(c *fiber.Ctx) error {
	name := quickName(c, "quick_brand_name", "quick_name")
	if name == "" {
		return h.views.Notify(c, "error", "Enter a brand name first")
	}

	brand, err := h.client(c).CreateBrand(c.UserContext(), apiclient.NewForm().Set("name", name))
	if err != nil {
		return h.views.Notify(c, "error", apiFailure(c, "quick add brand", err))
	}
	return h.quickResult(c, "brand_ids", brand.ID, brand.Name)
}

// QuickCategory creates a category inline. With ?as=option it answers with a
// selected <option> instead of a checkbox.
func (h *AdminHandler) QuickCategory(c *fiber.Ctx) error {
	name := quickName(c, "quick_category_name", "quick_name")
	if name == "" {
		return h.views.Notify(c, "error", "Enter a category name first")
	}

	category, err := h.client(c).CreateCategory(c.UserContext(), models.CategoryInput{Name: name})
	if err != nil {
		return h.views.Notify(c, "error", apiFailure(c, "quick add category", err))
	}
	return h.quickResult(c, "category_ids", category.ID, category.Name)
}

func (h *AdminHandler) quickResult(c *fiber.Ctx, field string, id int64, name string) error {
	item := quickItem{Field: field, ID: id, Name: name}
	if c.Query("as") == "option" {
		return h.views.Partial(c, fiber.StatusOK, "quick_select_option", item)
	}
	return h.views.Partial(c, fiber.StatusOK, "quick_checkbox", item)
}
