package handlers

import (
	"log"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/utils"
	"github.com/example/tmrsite/internal/views"
)

const homeCategoriesPath = "/admin/home-categories"

type HomeCategoryListData struct {
	Entries []models.HomeCategory
}

type HomeCategoryFormData struct {
	Entry       models.HomeCategory
	Categories  []models.Category
	IsEdit      bool
	Errors      forms.Errors
	ServerError string
	Action      string
}

func (h *AdminHandler) ListHomeCategories(c *fiber.Ctx) error {
	entries, err := h.client(c).HomeCategories(c.UserContext())
	if err != nil {
		return h.listFailed(c, "home categories", err)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })
	return h.render(c, fiber.StatusOK, "admin/home_categories", "home-categories", views.SEOInput{Title: "Home Categories"}, HomeCategoryListData{Entries: entries})
}

func (h *AdminHandler) NewHomeCategory(c *fiber.Ctx) error {
	return h.homeCategoryForm(c, fiber.StatusOK, HomeCategoryFormData{Action: homeCategoriesPath})
}

func (h *AdminHandler) EditHomeCategory(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	entry, err := h.client(c).HomeCategory(c.UserContext(), id)
	if err != nil {
		return h.loadFailed(c, homeCategoriesPath, "Entry", err)
	}
	return h.homeCategoryForm(c, fiber.StatusOK, HomeCategoryFormData{Entry: entry, IsEdit: true, Action: homeCategoryAction(id)})
}

func (h *AdminHandler) CreateHomeCategory(c *fiber.Ctx) error {
	return h.saveHomeCategory(c, 0)
}

func (h *AdminHandler) UpdateHomeCategory(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	return h.saveHomeCategory(c, id)
}

func (h *AdminHandler) saveHomeCategory(c *fiber.Ctx, id int64) error {
	var in forms.HomeCategory
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	errs := h.validator.Check(&in)
	data := HomeCategoryFormData{
		Entry:  models.HomeCategory{ID: id, Category: in.Category, Title: in.Title, Order: in.Order},
		IsEdit: id > 0,
		Errors: errs,
		Action: homeCategoriesPath,
	}
	if id > 0 {
		data.Action = homeCategoryAction(id)
	}
	if errs.Any() {
		return h.homeCategoryForm(c, fiber.StatusUnprocessableEntity, data)
	}

	form := apiclient.NewForm().
		Set("category", strconv.FormatInt(in.Category, 10)).
		Set("title", in.Title).
		Set("order", strconv.Itoa(in.Order))
	if err := attach(c, form, "image"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read the uploaded file")
	}

	api := h.client(c)
	var err error
	if id > 0 {
		_, err = api.UpdateHomeCategory(c.UserContext(), id, form)
	} else {
		_, err = api.CreateHomeCategory(c.UserContext(), form)
	}
	if err != nil {
		data.ServerError = apiFailure(c, "save home category", err)
		return h.homeCategoryForm(c, fiber.StatusUnprocessableEntity, data)
	}
	return h.saved(c, homeCategoriesPath, "Home category saved")
}

func (h *AdminHandler) DeleteHomeCategory(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	return h.deleted(c, homeCategoriesPath, "Entry", h.client(c).DeleteHomeCategory(c.UserContext(), id))
}

// homeCategoryForm loads the category options before rendering. Without them
// the select is empty but quick-add still works.
func (h *AdminHandler) homeCategoryForm(c *fiber.Ctx, status int, data HomeCategoryFormData) error {
	categories, err := h.client(c).Categories(c.UserContext())
	if err != nil {
		log.Printf("[Admin] categories unavailable for home category form: %v", err)
	}
	data.Categories = categories

	title := "New Home Category"
	if data.IsEdit {
		title = "Edit Home Category"
	}
	return h.render(c, formStatus(c, status), "admin/home_category_form", "home-categories", views.SEOInput{Title: title}, data)
}

func homeCategoryAction(id int64) string {
	return homeCategoriesPath + "/" + strconv.FormatInt(id, 10)
}
