// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// SecretHeader carries the shared secret configured through WEBHOOK_SECRET.
const SecretHeader = "X-Webhook-Secret"

// Registration is the payload posted by the public signup form.
type Registration struct {
	Subdomain    string  `json:"subdomain" validate:"required,max=63,subdomain"`
	FullName     string  `json:"full_name" validate:"required,max=200"`
	Nickname     *string `json:"nickname" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	BusinessType *string `json:"business_type" validate:"omitempty,max=100"`
	LineUserID   *string `json:"line_user_id" validate:"omitempty,max=64"`
}
