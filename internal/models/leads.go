package models

import "time"

type LeadType string

const (
	LeadContact   LeadType = "contact"
	LeadWholesale LeadType = "wholesale"
)

// ParseLeadType returns false for anything but the two known lead types.
func ParseLeadType(raw string) (LeadType, bool) {
	switch LeadType(raw) {
	case LeadContact, LeadWholesale:
		return LeadType(raw), true
	}
	return "", false
}

type ContactInquiry struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Website      string    `json:"website"`
	Budget       string    `json:"budget"`
	Requirement  string    `json:"requirement"`
	IsResolved   bool      `json:"is_resolved"`
	CreatedAt    time.Time `json:"created_at"`
}

type WholesaleInquiry struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	BusinessName   string    `json:"business_name"`
	Email          string    `json:"email"`
	ContactNumber  string    `json:"contact_number"`
	Details        string    `json:"details"`
	BrandIDs       []int64   `json:"brand_ids"`
	ProductIDs     []int64   `json:"product_ids"`
	BrandDetails   []Brand   `json:"brand_details"`
	ProductDetails []Product `json:"product_details"`
	IsResolved     bool      `json:"is_resolved"`
	CreatedAt      time.Time `json:"created_at"`
}

// LeadActivity is one entry of the dashboard's recent activity feed.
type LeadActivity struct {
	Type         LeadType  `json:"type"`
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	IsResolved   bool      `json:"is_resolved"`
	CreatedAt    time.Time `json:"created_at"`
}

type LeadStats struct {
	TotalContact        int            `json:"total_contact"`
	TotalWholesale      int            `json:"total_wholesale"`
	UnresolvedContact   int            `json:"unresolved_contact"`
	UnresolvedWholesale int            `json:"unresolved_wholesale"`
	TotalProducts       int            `json:"total_products"`
	TotalBrands         int            `json:"total_brands"`
	RecentActivity      []LeadActivity `json:"recent_activity"`
}

// ContactInquiryInput is the public contact form payload.
type ContactInquiryInput struct {
	Name         string `json:"name" form:"name" validate:"required"`
	BusinessName string `json:"business_name" form:"business_name"`
	Email        string `json:"email" form:"email" validate:"required,loose_email"`
	Phone        string `json:"phone" form:"phone" validate:"required"`
	Website      string `json:"website" form:"website"`
	Budget       string `json:"budget" form:"budget"`
	Requirement  string `json:"requirement" form:"requirement" validate:"required"`
}

// WholesaleInquiryInput is the public wholesale form payload. The ID lists are
// read from repeated form fields.
type WholesaleInquiryInput struct {
	Name          string  `json:"name" form:"name" validate:"required"`
	BusinessName  string  `json:"business_name" form:"business_name" validate:"required"`
	Email         string  `json:"email" form:"email" validate:"required,loose_email"`
	ContactNumber string  `json:"contact_number" form:"contact_number" validate:"required"`
	Details       string  `json:"details" form:"details" validate:"required"`
	BrandIDs      []int64 `json:"brand_ids" form:"-"`
	ProductIDs    []int64 `json:"product_ids" form:"-"`
}

// Resolution is the PATCH body used to flip the resolved flag.
type Resolution struct {
	IsResolved bool `json:"is_resolved"`
}
