package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/content"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/views"
)

const pagesPath = "/admin/pages"

type PageEntry struct {
	Type  models.PageType
	Label string
}

type PageListData struct {
	Pages []PageEntry
}

type PageFormData struct {
	Type        models.PageType
	Label       string
	Sections    []content.Section
	Values      map[string]string
	ServerError string
}

func (h *AdminHandler) ListPages(c *fiber.Ctx) error {
	entries := make([]PageEntry, 0, len(models.PageTypes))
	for _, t := range models.PageTypes {
		entries = append(entries, PageEntry{Type: t, Label: t.Label()})
	}
	return h.render(c, fiber.StatusOK, "admin/pages", "pages", views.SEOInput{Title: "Pages"}, PageListData{Pages: entries})
}

// EditPage shows the editor of one page record. A record the API has never
// stored opens as an empty form.
func (h *AdminHandler) EditPage(c *fiber.Ctx) error {
	page, ok := models.ParsePageType(c.Params("type"))
	if !ok {
		return fiber.ErrNotFound
	}

	record := map[string]any{}
	err := h.client(c).Page(c.UserContext(), page, &record)
	if err != nil && !errors.Is(err, apiclient.ErrNotFound) {
		return h.listFailed(c, page.Label(), err)
	}
	return h.pageForm(c, fiber.StatusOK, page, content.Values(page, record), "")
}

// UpdatePage sends every text field and only the newly uploaded files.
func (h *AdminHandler) UpdatePage(c *fiber.Ctx) error {
	page, ok := models.ParsePageType(c.Params("type"))
	if !ok {
		return fiber.ErrNotFound
	}

	form := apiclient.NewForm()
	values := map[string]string{}
	for _, f := range content.Schema(page) {
		if f.Upload() {
			continue
		}
		v := strings.TrimSpace(c.FormValue(f.Name))
		values[f.Name] = v
		form.Set(f.Name, v)
	}
	for _, f := range content.Schema(page) {
		if !f.Upload() {
			continue
		}
		if err := attach(c, form, f.Name); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read the uploaded file")
		}
	}

	if err := h.client(c).UpdatePage(c.UserContext(), page, form); err != nil {
		return h.pageForm(c, fiber.StatusUnprocessableEntity, page, values, apiFailure(c, "save "+string(page)+" page", err))
	}
	return h.saved(c, pagesPath+"/"+string(page), page.Label()+" saved")
}

func (h *AdminHandler) pageForm(c *fiber.Ctx, status int, page models.PageType, values map[string]string, serverError string) error {
	data := PageFormData{
		Type:        page,
		Label:       page.Label(),
		Sections:    content.Sections(page),
		Values:      values,
		ServerError: serverError,
	}
	return h.render(c, formStatus(c, status), "admin/page_form", "pages", views.SEOInput{Title: page.Label()}, data)
}
