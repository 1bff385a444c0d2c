package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/utils"
	"github.com/example/tmrsite/internal/views"
)

const categoriesPath = "/admin/categories"

type CategoryListData struct {
	Categories []models.Category
}

type CategoryFormData struct {
	Category    models.Category
	IsEdit      bool
	Errors      forms.Errors
	ServerError string
	Action      string
}

func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.client(c).Categories(c.UserContext())
	if err != nil {
		return h.listFailed(c, "categories", err)
	}
	return h.render(c, fiber.StatusOK, "admin/categories", "categories", views.SEOInput{Title: "Categories"}, CategoryListData{Categories: categories})
}

func (h *AdminHandler) NewCategory(c *fiber.Ctx) error {
	return h.categoryForm(c, fiber.StatusOK, CategoryFormData{Action: categoriesPath})
}

func (h *AdminHandler) EditCategory(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	category, err := h.client(c).Category(c.UserContext(), id)
	if err != nil {
		return h.loadFailed(c, categoriesPath, "Category", err)
	}
	return h.categoryForm(c, fiber.StatusOK, CategoryFormData{Category: category, IsEdit: true, Action: categoryAction(id)})
}

func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	return h.saveCategory(c, 0)
}

func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	return h.saveCategory(c, id)
}

func (h *AdminHandler) saveCategory(c *fiber.Ctx, id int64) error {
	var in models.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	errs := h.validator.Check(&in)
	data := CategoryFormData{
		Category: models.Category{ID: id, Name: in.Name, Slug: in.Slug},
		IsEdit:   id > 0,
		Errors:   errs,
		Action:   categoriesPath,
	}
	if id > 0 {
		data.Action = categoryAction(id)
	}
	if errs.Any() {
		return h.categoryForm(c, fiber.StatusUnprocessableEntity, data)
	}

	api := h.client(c)
	var err error
	if id > 0 {
		_, err = api.UpdateCategory(c.UserContext(), id, in)
	} else {
		_, err = api.CreateCategory(c.UserContext(), in)
	}
	if err != nil {
		data.ServerError = apiFailure(c, "save category", err)
		return h.categoryForm(c, fiber.StatusUnprocessableEntity, data)
	}
	return h.saved(c, categoriesPath, "Category saved")
}

func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	return h.deleted(c, categoriesPath, "Category", h.client(c).DeleteCategory(c.UserContext(), id))
}

func (h *AdminHandler) categoryForm(c *fiber.Ctx, status int, data CategoryFormData) error {
	title := "New Category"
	if data.IsEdit {
		title = "Edit Category"
	}
	return h.render(c, formStatus(c, status), "admin/category_form", "categories", views.SEOInput{Title: title}, data)
}

func categoryAction(id int64) string {
	return categoriesPath + "/" + strconv.FormatInt(id, 10)
}
