package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/utils"
	"github.com/example/tmrsite/internal/views"
)

const leadsPath = "/admin/leads"

type LeadListData struct {
	Query     string
	Wholesale []models.WholesaleInquiry
	Contact   []models.ContactInquiry
	Error     string
}

type LeadDetailData struct {
	Wholesale *models.WholesaleInquiry
	Contact   *models.ContactInquiry
}

type leadToggle struct {
	Type     models.LeadType
	ID       int64
	Resolved bool
	CSRF     string
}

// fetchLeads loads both lead lists concurrently. A failed list stays empty and
// the first failure is returned as a banner message.
func (h *AdminHandler) fetchLeads(c *fiber.Ctx) ([]models.WholesaleInquiry, []models.ContactInquiry, string) {
	ctx := c.UserContext()
	api := h.client(c)

	var (
		g            errgroup.Group
		wholesale    []models.WholesaleInquiry
		contact      []models.ContactInquiry
		wholesaleErr error
		contactErr   error
	)
	g.Go(func() error {
		wholesale, wholesaleErr = api.WholesaleLeads(ctx)
		return nil
	})
	g.Go(func() error {
		contact, contactErr = api.ContactLeads(ctx)
		return nil
	})
	_ = g.Wait()

	switch {
	case wholesaleErr != nil:
		return wholesale, contact, apiFailure(c, "load wholesale leads", wholesaleErr)
	case contactErr != nil:
		return wholesale, contact, apiFailure(c, "load contact leads", contactErr)
	}
	return wholesale, contact, ""
}

func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// filterLeads keeps the leads whose name, business, email or phone contain q.
func filterLeads(q string, wholesale []models.WholesaleInquiry, contact []models.ContactInquiry) ([]models.WholesaleInquiry, []models.ContactInquiry) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return wholesale, contact
	}
	var w []models.WholesaleInquiry
	for _, l := range wholesale {
		if containsFold(q, l.Name, l.BusinessName, l.Email, l.ContactNumber) {
			w = append(w, l)
		}
	}
	var ct []models.ContactInquiry
	for _, l := range contact {
		if containsFold(q, l.Name, l.BusinessName, l.Email, l.Phone) {
			ct = append(ct, l)
		}
	}
	return w, ct
}

func (h *AdminHandler) ListLeads(c *fiber.Ctx) error {
	wholesale, contact, failure := h.fetchLeads(c)
	query := strings.TrimSpace(c.Query("q"))
	wholesale, contact = filterLeads(query, wholesale, contact)

	data := LeadListData{Query: query, Wholesale: wholesale, Contact: contact, Error: failure}
	return h.render(c, fiber.StatusOK, "admin/leads", "leads", views.SEOInput{Title: "Leads"}, data)
}

// ShowLead renders one lead. The API has no single-lead GET, so the lead is
// picked from its list.
func (h *AdminHandler) ShowLead(c *fiber.Ctx) error {
	kind, ok := models.ParseLeadType(c.Params("type"))
	if !ok {
		return fiber.ErrNotFound
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}

	ctx := c.UserContext()
	api := h.client(c)
	var data LeadDetailData
	switch kind {
	case models.LeadWholesale:
		leads, err := api.WholesaleLeads(ctx)
		if err != nil {
			return h.listFailed(c, "wholesale leads", err)
		}
		for i := range leads {
			if leads[i].ID == id {
				data.Wholesale = &leads[i]
				break
			}
		}
	case models.LeadContact:
		leads, err := api.ContactLeads(ctx)
		if err != nil {
			return h.listFailed(c, "contact leads", err)
		}
		for i := range leads {
			if leads[i].ID == id {
				data.Contact = &leads[i]
				break
			}
		}
	}
	if data.Wholesale == nil && data.Contact == nil {
		return redirectWith(c, leadsPath, "error", "Lead not found")
	}
	return h.render(c, fiber.StatusOK, "admin/lead_detail", "leads", views.SEOInput{Title: "Lead"}, data)
}

// ToggleLead flips the resolved flag. The form posts the current state.
func (h *AdminHandler) ToggleLead(c *fiber.Ctx) error {
	kind, ok := models.ParseLeadType(c.Params("type"))
	if !ok {
		return fiber.ErrNotFound
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return fiber.ErrNotFound
	}

	current, _ := strconv.ParseBool(c.FormValue("resolved"))
	next := !current
	if err := h.client(c).SetLeadResolved(c.UserContext(), kind, id, next); err != nil {
		msg := apiFailure(c, "update lead", err)
		if views.IsHTMX(c) {
			return h.views.Notify(c, "error", msg)
		}
		return redirectWith(c, leadsPath, "error", msg)
	}

	if views.IsHTMX(c) {
		return h.views.Partial(c, fiber.StatusOK, "lead_toggle", leadToggle{Type: kind, ID: id, Resolved: next, CSRF: csrfToken(c)})
	}
	status := "pending"
	if next {
		status = "resolved"
	}
	return redirectWith(c, leadsPath, "message", fmt.Sprintf("Lead marked as %s", status))
}

// ExportLeads downloads both lead lists as one workbook.
func (h *AdminHandler) ExportLeads(c *fiber.Ctx) error {
	wholesale, contact, failure := h.fetchLeads(c)
	if failure != "" {
		return redirectWith(c, leadsPath, "error", failure)
	}

	buf, err := leadWorkbook(wholesale, contact)
	if err != nil {
		return fmt.Errorf("build lead export: %w", err)
	}

	name := fmt.Sprintf("leads-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}
