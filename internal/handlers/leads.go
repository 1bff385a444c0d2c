package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/catalog"
	"github.com/example/tmrsite/internal/content"
	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/views"
)

const (
	brandPickerField   = "brand_ids"
	productPickerField = "product_ids"
	pickerLimit        = 20

	contactThanks   = "Thank you! Your message has been sent. We will get back to you shortly."
	wholesaleThanks = "Thank you! Your wholesale inquiry has been received. Our team will contact you shortly."
	submitFailed    = "We could not send your request right now. Please try again."
)

// LeadHandler serves the contact and wholesale inquiry forms.
type LeadHandler struct {
	base
	validator *forms.Validator
	notifier  LeadNotifier
}

// NewLeadHandler constructs LeadHandler. notifier may be nil.
func NewLeadHandler(api *apiclient.Client, renderer *views.Renderer, site views.Site, validator *forms.Validator, notifier LeadNotifier) *LeadHandler {
	return &LeadHandler{
		base:      newBase(api, renderer, site),
		validator: validator,
		notifier:  notifier,
	}
}

type ContactForm struct {
	Input  models.ContactInquiryInput
	Errors forms.Errors
	Notice *views.Flash
	CSRF   string
}

type ContactData struct {
	Content models.ContactContent
	Form    ContactForm
}

// PickerData feeds one type-ahead multi-select.
type PickerData struct {
	Field    string
	Selected []catalog.Option
	Options  []catalog.Option
}

type WholesaleForm struct {
	Input    models.WholesaleInquiryInput
	Errors   forms.Errors
	Notice   *views.Flash
	CSRF     string
	Brands   PickerData
	Products PickerData
}

type WholesaleData struct {
	Content models.WholesaleContent
	Form    WholesaleForm
}

// picker lists the checked options first, then up to limit matches that are
// not already checked.
func picker(field string, options []catalog.Option, selected catalog.IDSet, query string, limit int) PickerData {
	data := PickerData{Field: field, Selected: catalog.Selected(options, selected)}
	for _, o := range catalog.Search(options, query, 0) {
		if selected.Has(o.ID) {
			continue
		}
		data.Options = append(data.Options, o)
		if limit > 0 && len(data.Options) == limit {
			break
		}
	}
	return data
}

// ContactPage renders the contact page with an empty form.
func (h *LeadHandler) ContactPage(c *fiber.Ctx) error {
	return h.renderContact(c, fiber.StatusOK, ContactForm{CSRF: csrfToken(c)})
}

func (h *LeadHandler) renderContact(c *fiber.Ctx, status int, form ContactForm) error {
	if views.IsHTMX(c) && c.Method() == fiber.MethodPost {
		return h.views.Partial(c, formStatus(c, status), "contact_form", form)
	}

	var page models.ContactContent
	if err := h.api.Page(c.UserContext(), models.PageContact, &page); err != nil {
		log.Printf("[Leads] contact content unavailable, using defaults: %v", err)
	}
	content.ApplyContactDefaults(&page)

	seo := views.SEOInput{
		Title:       page.SEOTitle,
		Description: page.SEODescription,
		Keywords:    page.SEOKeywords,
		Image:       firstNonEmpty(page.OGImage, page.HeroImage),
	}
	return h.render(c, status, "public/contact", "contact", seo, ContactData{Content: page, Form: form})
}

// ContactSubmit validates the contact form and forwards it to the API.
func (h *LeadHandler) ContactSubmit(c *fiber.Ctx) error {
	var in models.ContactInquiryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	errs := h.validator.Check(&in)
	form := ContactForm{Input: in, Errors: errs, CSRF: csrfToken(c)}
	if errs.Any() {
		return h.renderContact(c, fiber.StatusUnprocessableEntity, form)
	}

	ctx := c.UserContext()
	if err := h.api.CreateContactLead(ctx, in); err != nil {
		log.Printf("[Leads] contact inquiry rejected: %v", err)
		form.Notice = &views.Flash{Kind: "error", Message: submitFailed}
		return h.renderContact(c, fiber.StatusBadGateway, form)
	}

	h.notify(ctx, func(ctx context.Context) error { return h.notifier.NotifyContactInquiry(ctx, in) })

	return h.renderContact(c, fiber.StatusOK, ContactForm{
		CSRF:   form.CSRF,
		Notice: &views.Flash{Kind: "success", Message: contactThanks},
	})
}

func (h *LeadHandler) notify(ctx context.Context, send func(context.Context) error) {
	if h.notifier == nil {
		return
	}
	if err := send(ctx); err != nil {
		log.Printf("[Leads] notification failed: %v", err)
	}
}

// pickerOptions loads the brand and product options in parallel. Failures
// leave the corresponding picker empty.
func (h *LeadHandler) pickerOptions(ctx context.Context) (brands, products []catalog.Option) {
	var g errgroup.Group
	g.Go(func() error {
		list, err := h.api.Brands(ctx)
		if err != nil {
			log.Printf("[Leads] brands unavailable: %v", err)
			return nil
		}
		brands = catalog.BrandOptions(list)
		return nil
	})
	g.Go(func() error {
		list, err := h.api.Products(ctx, apiclient.ProductQuery{})
		if err != nil {
			log.Printf("[Leads] products unavailable: %v", err)
			return nil
		}
		products = catalog.ProductOptions(list)
		return nil
	})
	_ = g.Wait()
	return brands, products
}

func (h *LeadHandler) wholesaleForm(c *fiber.Ctx, in models.WholesaleInquiryInput, errs forms.Errors, notice *views.Flash) WholesaleForm {
	brands, products := h.pickerOptions(c.UserContext())
	return WholesaleForm{
		Input:    in,
		Errors:   errs,
		Notice:   notice,
		CSRF:     csrfToken(c),
		Brands:   picker(brandPickerField, brands, catalog.NewIDSet(in.BrandIDs...), "", 0),
		Products: picker(productPickerField, products, catalog.NewIDSet(in.ProductIDs...), "", pickerLimit),
	}
}

// WholesalePage renders the wholesale page with an empty form.
func (h *LeadHandler) WholesalePage(c *fiber.Ctx) error {
	return h.renderWholesale(c, fiber.StatusOK, h.wholesaleForm(c, models.WholesaleInquiryInput{}, nil, nil))
}

func (h *LeadHandler) renderWholesale(c *fiber.Ctx, status int, form WholesaleForm) error {
	if views.IsHTMX(c) && c.Method() == fiber.MethodPost {
		return h.views.Partial(c, formStatus(c, status), "wholesale_form", form)
	}

	var page models.WholesaleContent
	if err := h.api.Page(c.UserContext(), models.PageWholesale, &page); err != nil {
		log.Printf("[Leads] wholesale content unavailable, using defaults: %v", err)
	}
	content.ApplyWholesaleDefaults(&page)

	seo := views.SEOInput{
		Title:       page.SEOTitle,
		Description: page.SEODescription,
		Keywords:    page.SEOKeywords,
		Image:       firstNonEmpty(page.OGImage, page.HeroImage),
	}
	return h.render(c, status, "public/wholesale", "wholesale", seo, WholesaleData{Content: page, Form: form})
}

// WholesaleSubmit validates the wholesale form and forwards it to the API.
func (h *LeadHandler) WholesaleSubmit(c *fiber.Ctx) error {
	var in models.WholesaleInquiryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}
	in.BrandIDs = formIDs(c, brandPickerField).Slice()
	in.ProductIDs = formIDs(c, productPickerField).Slice()

	if errs := h.validator.Check(&in); errs.Any() {
		return h.renderWholesale(c, fiber.StatusUnprocessableEntity, h.wholesaleForm(c, in, errs, nil))
	}

	ctx := c.UserContext()
	if err := h.api.CreateWholesaleLead(ctx, in); err != nil {
		log.Printf("[Leads] wholesale inquiry rejected: %v", err)
		notice := &views.Flash{Kind: "error", Message: submitFailed}
		return h.renderWholesale(c, fiber.StatusBadGateway, h.wholesaleForm(c, in, nil, notice))
	}

	h.notify(ctx, func(ctx context.Context) error { return h.notifier.NotifyWholesaleInquiry(ctx, in) })

	notice := &views.Flash{Kind: "success", Message: wholesaleThanks}
	return h.renderWholesale(c, fiber.StatusOK, h.wholesaleForm(c, models.WholesaleInquiryInput{}, nil, notice))
}

// Picker re-renders one picker's options for the search box, keeping the
// boxes that are already checked.
func (h *LeadHandler) Picker(c *fiber.Ctx) error {
	brands, products := h.pickerOptions(c.UserContext())
	query := c.Query("q")

	var data PickerData
	switch c.Query("kind") {
	case "brands":
		data = picker(brandPickerField, brands, catalog.ParseIDSet(queryValues(c, brandPickerField)), query, 0)
	case "products":
		data = picker(productPickerField, products, catalog.ParseIDSet(queryValues(c, productPickerField)), query, pickerLimit)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Unknown picker")
	}
	return h.views.Partial(c, fiber.StatusOK, "picker_options", data)
}
