package handlers

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/tmrsite/internal/models"
)

const (
	wholesaleSheet = "Wholesale"
	contactSheet   = "Contact"
	exportTime     = "2006-01-02 15:04"
)

var (
	wholesaleHeader = []any{"ID", "Date", "Name", "Business", "Email", "Phone", "Brands", "Products", "Details", "Status"}
	contactHeader   = []any{"ID", "Date", "Name", "Business", "Email", "Phone", "Website", "Budget", "Requirement", "Status"}
)

func resolvedLabel(resolved bool) string {
	if resolved {
		return "Resolved"
	}
	return "Pending"
}

func brandNames(brands []models.Brand) string {
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}

func productNames(products []models.Product) string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// leadWorkbook writes one sheet per lead type, header row first.
func leadWorkbook(wholesale []models.WholesaleInquiry, contact []models.ContactInquiry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", wholesaleSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(contactSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(wholesaleSheet, "A1", &wholesaleHeader); err != nil {
		return nil, err
	}
	for i, l := range wholesale {
		row := []any{
			l.ID, l.CreatedAt.Format(exportTime), l.Name, l.BusinessName, l.Email, l.ContactNumber,
			brandNames(l.BrandDetails), productNames(l.ProductDetails), l.Details, resolvedLabel(l.IsResolved),
		}
		if err := writeRow(f, wholesaleSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow(contactSheet, "A1", &contactHeader); err != nil {
		return nil, err
	}
	for i, l := range contact {
		row := []any{
			l.ID, l.CreatedAt.Format(exportTime), l.Name, l.BusinessName, l.Email, l.Phone,
			l.Website, l.Budget, l.Requirement, resolvedLabel(l.IsResolved),
		}
		if err := writeRow(f, contactSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
