// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package participant

import (
	"time"

	"github.com/canonical/chapter-service/internal/types"
)

const dateLayout = "2006-01-02"

type ListFilter struct {
	Status string `json:"status" validate:"omitempty,participant_status"`
	Search string `json:"q" validate:"max=100"`
	Page   int64  `json:"page" validate:"min=0,max=100000"`
	Size   int64  `json:"size" validate:"min=0,max=500"`
}

func (f ListFilter) storage() types.ParticipantFilter {
	out := types.ParticipantFilter{Search: f.Search, Page: f.Page, Size: f.Size}
	if f.Status != "" {
		s := types.ParticipantStatus(f.Status)
		out.Status = &s
	}
	return out
}

type CreateInput struct {
	FullName     string  `json:"full_name" validate:"required,max=200"`
	Nickname     *string `json:"nickname" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	BusinessType *string `json:"business_type" validate:"omitempty,max=100"`
	LineUserID   *string `json:"line_user_id" validate:"omitempty,max=64"`
	Status       string  `json:"status" validate:"omitempty,participant_status"`
	JoinedDate   *string `json:"joined_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}

func (in CreateInput) participant(tenantID string) *types.Participant {
	p := &types.Participant{
		TenantID:     tenantID,
		FullName:     in.FullName,
		Nickname:     in.Nickname,
		Email:        in.Email,
		Phone:        in.Phone,
		Company:      in.Company,
		BusinessType: in.BusinessType,
		LineUserID:   in.LineUserID,
		Status:       types.ParticipantStatus(in.Status),
		Notes:        in.Notes,
	}
	if in.JoinedDate != nil {
		// already validated against dateLayout
		d, _ := time.Parse(dateLayout, *in.JoinedDate)
		p.JoinedDate = &d
	}
	return p
}

type UpdateInput struct {
	FullName     *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Nickname     *string `json:"nickname" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	BusinessType *string `json:"business_type" validate:"omitempty,max=100"`
	JoinedDate   *string `json:"joined_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}

func (in UpdateInput) fields() map[string]any {
	f := make(map[string]any)
	set := func(col string, v *string) {
		if v != nil {
			f[col] = *v
		}
	}

	set("full_name", in.FullName)
	set("nickname", in.Nickname)
	set("email", in.Email)
	set("phone", in.Phone)
	set("company", in.Company)
	set("business_type", in.BusinessType)
	set("notes", in.Notes)

	if in.JoinedDate != nil {
		d, _ := time.Parse(dateLayout, *in.JoinedDate)
		f["joined_date"] = d
	}

	return f
}

type StatusInput struct {
	Status string `json:"status" validate:"required,participant_status"`
}

type CheckInInput struct {
	MeetingDate string `json:"meeting_date" validate:"required,datetime=2006-01-02"`
	Source      string `json:"source" validate:"omitempty,oneof=manual qr line"`
}
