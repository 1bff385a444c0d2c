package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/utils"
	"github.com/example/tmrsite/internal/views"
)

const brandsPath = "/admin/brands"

type BrandListData struct {
	Brands []models.Brand
}

type BrandFormData struct {
	Brand       models.Brand
	IsEdit      bool
	Errors      forms.Errors
	ServerError string
	Action      string
}

func (h *AdminHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.client(c).Brands(c.UserContext())
	if err != nil {
		return h.listFailed(c, "brands", err)
	}
	return h.render(c, fiber.StatusOK, "admin/brands", "brands", views.SEOInput{Title: "Brands"}, BrandListData{Brands: brands})
}

func (h *AdminHandler) NewBrand(c *fiber.Ctx) error {
	return h.brandForm(c, fiber.StatusOK, BrandFormData{Action: brandsPath})
}

func (h *AdminHandler) EditBrand(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	brand, err := h.client(c).Brand(c.UserContext(), id)
	if err != nil {
		return h.loadFailed(c, brandsPath, "Brand", err)
	}
	return h.brandForm(c, fiber.StatusOK, BrandFormData{Brand: brand, IsEdit: true, Action: brandAction(id)})
}

func (h *AdminHandler) CreateBrand(c *fiber.Ctx) error {
	return h.saveBrand(c, 0)
}

func (h *AdminHandler) UpdateBrand(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	return h.saveBrand(c, id)
}

func (h *AdminHandler) saveBrand(c *fiber.Ctx, id int64) error {
	var in forms.Brand
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	data := BrandFormData{
		Brand: models.Brand{
			ID:           id,
			Name:         in.Name,
			Description:  in.Description,
			HeroTitle:    in.HeroTitle,
			HeroSubtitle: in.HeroSubtitle,
			Content:      in.Content,
			HTMLContent:  in.HTMLContent,
		},
		IsEdit: id > 0,
		Action: brandsPath,
	}
	if id > 0 {
		data.Action = brandAction(id)
	}

	if errs := h.validator.Check(&in); errs.Any() {
		data.Errors = errs
		return h.brandForm(c, fiber.StatusUnprocessableEntity, data)
	}

	form := apiclient.NewForm().
		Set("name", in.Name).
		Set("description", in.Description).
		Set("hero_title", in.HeroTitle).
		Set("hero_subtitle", in.HeroSubtitle).
		Set("content", in.Content).
		Set("html_content", in.HTMLContent)
	if err := attach(c, form, "logo", "hero_image"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read the uploaded file")
	}

	api := h.client(c)
	var err error
	if id > 0 {
		_, err = api.UpdateBrand(c.UserContext(), id, form)
	} else {
		_, err = api.CreateBrand(c.UserContext(), form)
	}
	if err != nil {
		data.ServerError = apiFailure(c, "save brand", err)
		return h.brandForm(c, fiber.StatusUnprocessableEntity, data)
	}
	return h.saved(c, brandsPath, "Brand saved")
}

func (h *AdminHandler) DeleteBrand(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}
	return h.deleted(c, brandsPath, "Brand", h.client(c).DeleteBrand(c.UserContext(), id))
}

func (h *AdminHandler) brandForm(c *fiber.Ctx, status int, data BrandFormData) error {
	title := "New Brand"
	if data.IsEdit {
		title = "Edit Brand"
	}
	return h.render(c, formStatus(c, status), "admin/brand_form", "brands", views.SEOInput{Title: title}, data)
}

func brandAction(id int64) string {
	return brandsPath + "/" + strconv.FormatInt(id, 10)
}
