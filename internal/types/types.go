// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleSuperAdmin   = "super_admin"
	RoleChapterAdmin = "chapter_admin"
	RoleOrganizer    = "organizer"
	RoleMember       = "member"
)

// TenantRoles are the roles that must be bound to a tenant.
var TenantRoles = []string{RoleChapterAdmin, RoleOrganizer, RoleMember}

type ParticipantStatus string

const (
	StatusProspect ParticipantStatus = "prospect"
	StatusVisitor  ParticipantStatus = "visitor"
	StatusMember   ParticipantStatus = "member"
	StatusAlumni   ParticipantStatus = "alumni"
	StatusDeclined ParticipantStatus = "declined"
)

func (s ParticipantStatus) Valid() bool {
	switch s {
	case StatusProspect, StatusVisitor, StatusMember, StatusAlumni, StatusDeclined:
		return true
	}
	return false
}

// RoleAssignment binds a user to a role, globally when TenantID is nil.
type RoleAssignment struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Role      string    `db:"role" json:"role"`
	TenantID  *string   `db:"tenant_id" json:"tenant_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Tenant struct {
	ID        string    `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"tenant_name" json:"tenant_name"`
	Subdomain string    `db:"subdomain" json:"subdomain"`
	LogoURL   *string   `db:"logo_url" json:"logo_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Settings *TenantSettings `db:"-" json:"settings,omitempty"`
}

type TenantSettings struct {
	TenantID              string    `db:"tenant_id" json:"tenant_id"`
	BrandingColor         string    `db:"branding_color" json:"branding_color"`
	Language              string    `db:"language" json:"language"`
	Currency              string    `db:"currency" json:"currency"`
	DefaultVisitorFee     float64   `db:"default_visitor_fee" json:"default_visitor_fee"`
	RequireVisitorPayment bool      `db:"require_visitor_payment" json:"require_visitor_payment"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

type Participant struct {
	ID           string            `db:"participant_id" json:"participant_id"`
	TenantID     string            `db:"tenant_id" json:"tenant_id"`
	FullName     string            `db:"full_name" json:"full_name"`
	Nickname     *string           `db:"nickname" json:"nickname"`
	Email        *string           `db:"email" json:"email"`
	Phone        *string           `db:"phone" json:"phone"`
	Company      *string           `db:"company" json:"company"`
	BusinessType *string           `db:"business_type" json:"business_type"`
	LineUserID   *string           `db:"line_user_id" json:"line_user_id"`
	Status       ParticipantStatus `db:"status" json:"status"`
	JoinedDate   *time.Time        `db:"joined_date" json:"joined_date"`
	Notes        *string           `db:"notes" json:"notes"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

type CheckIn struct {
	ID            string    `db:"checkin_id" json:"checkin_id"`
	TenantID      string    `db:"tenant_id" json:"tenant_id"`
	ParticipantID string    `db:"participant_id" json:"participant_id"`
	MeetingDate   time.Time `db:"meeting_date" json:"meeting_date"`
	CheckedInAt   time.Time `db:"checked_in_at" json:"checked_in_at"`
	Source        string    `db:"source" json:"source"`
}

// ParticipantFilter narrows a participant listing within one tenant.
type ParticipantFilter struct {
	Status *ParticipantStatus
	Search string
	Page   int64
	Size   int64
}
