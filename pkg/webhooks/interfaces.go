// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/chapter-service/internal/types"
)

// StorageInterface is the subset of internal/storage the registration flow needs.
type StorageInterface interface {
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	GetParticipantByLineUserID(ctx context.Context, tenantID, lineUserID string) (*types.Participant, error)
	CreateParticipant(ctx context.Context, p *types.Participant) (*types.Participant, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, reg Registration) (*types.Participant, bool, error)
}
