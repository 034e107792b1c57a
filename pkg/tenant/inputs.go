// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

const (
	DefaultBrandingColor         = "#1e40af"
	DefaultLanguage              = "th"
	DefaultCurrency              = "THB"
	DefaultVisitorFee            = 650.0
	DefaultRequireVisitorPayment = true
)

type CreateTenantInput struct {
	Name      string         `json:"tenant_name" validate:"required,max=200"`
	Subdomain string         `json:"subdomain" validate:"required,max=63,subdomain"`
	LogoURL   *string        `json:"logo_url" validate:"omitempty,url"`
	Settings  *SettingsInput `json:"settings"`
}

type UpdateTenantInput struct {
	Name      *string `json:"tenant_name" validate:"omitempty,min=1,max=200"`
	Subdomain *string `json:"subdomain" validate:"omitempty,max=63,subdomain"`
	LogoURL   *string `json:"logo_url" validate:"omitempty,url"`
}

func (in UpdateTenantInput) fields() map[string]any {
	f := make(map[string]any)
	if in.Name != nil {
		f["tenant_name"] = *in.Name
	}
	if in.Subdomain != nil {
		f["subdomain"] = *in.Subdomain
	}
	if in.LogoURL != nil {
		f["logo_url"] = *in.LogoURL
	}
	return f
}

// SettingsInput overrides tenant settings, nil fields are left alone.
type SettingsInput struct {
	BrandingColor         *string  `json:"branding_color" validate:"omitempty,hexcolor6"`
	Language              *string  `json:"language" validate:"omitempty,min=2,max=8"`
	Currency              *string  `json:"currency" validate:"omitempty,len=3"`
	DefaultVisitorFee     *float64 `json:"default_visitor_fee" validate:"omitempty,min=0"`
	RequireVisitorPayment *bool    `json:"require_visitor_payment"`
}

func (in SettingsInput) fields() map[string]any {
	f := make(map[string]any)
	if in.BrandingColor != nil {
		f["branding_color"] = *in.BrandingColor
	}
	if in.Language != nil {
		f["language"] = *in.Language
	}
	if in.Currency != nil {
		f["currency"] = *in.Currency
	}
	if in.DefaultVisitorFee != nil {
		f["default_visitor_fee"] = *in.DefaultVisitorFee
	}
	if in.RequireVisitorPayment != nil {
		f["require_visitor_payment"] = *in.RequireVisitorPayment
	}
	return f
}

type AssignRoleInput struct {
	UserID string `json:"user_id" validate:"required,max=255"`
	Role   string `json:"role" validate:"required,oneof=chapter_admin organizer member"`
}
