// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package participant

import (
	"context"
	"time"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/types"
)

type ServiceInterface interface {
	ListParticipants(ctx context.Context, p authorization.Principal, tenantID string, filter ListFilter) ([]*types.Participant, error)
	GetParticipant(ctx context.Context, p authorization.Principal, tenantID, participantID string) (*types.Participant, error)
	CreateParticipant(ctx context.Context, p authorization.Principal, tenantID string, in CreateInput) (*types.Participant, error)
	UpdateParticipant(ctx context.Context, p authorization.Principal, tenantID, participantID string, in UpdateInput) (*types.Participant, error)
	UpdateStatus(ctx context.Context, p authorization.Principal, tenantID, participantID string, in StatusInput) (*types.Participant, error)
	DeleteParticipant(ctx context.Context, p authorization.Principal, tenantID, participantID string) error
	CheckIn(ctx context.Context, p authorization.Principal, tenantID, participantID string, in CheckInInput) (*types.CheckIn, error)
	ListCheckIns(ctx context.Context, p authorization.Principal, tenantID, meetingDate string) ([]*types.CheckIn, error)
}

type StorageInterface interface {
	ListParticipants(ctx context.Context, tenantID string, filter types.ParticipantFilter) ([]*types.Participant, error)
	GetParticipant(ctx context.Context, tenantID, id string) (*types.Participant, error)
	CreateParticipant(ctx context.Context, p *types.Participant) (*types.Participant, error)
	UpdateParticipant(ctx context.Context, tenantID, id string, fields map[string]any) (*types.Participant, error)
	DeleteParticipant(ctx context.Context, tenantID, id string) error
	CreateCheckIn(ctx context.Context, c *types.CheckIn) (*types.CheckIn, error)
	ListCheckIns(ctx context.Context, tenantID string, meetingDate *time.Time) ([]*types.CheckIn, error)
}

type AuthzInterface interface {
	EnforceTenantAccess(ctx context.Context, p authorization.Principal, tenantID string) error
	EnforceTenantRole(ctx context.Context, p authorization.Principal, tenantID string, roles []string) error
}
