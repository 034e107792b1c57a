// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
	"github.com/canonical/chapter-service/internal/validation"
)

type Service struct {
	storage   StorageInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		validator: validation.NewValidator(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// HandleRegistration adds a prospect to the tenant owning reg.Subdomain. A repeated
// signup with a known LINE user id returns the existing participant and false,
// including when a concurrent signup wins the insert.
func (s *Service) HandleRegistration(ctx context.Context, reg Registration) (*types.Participant, bool, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if err := s.validator.Struct(reg); err != nil {
		return nil, false, err
	}

	s.logger.Debugf("Handling registration for subdomain %s", reg.Subdomain)

	tenant, err := s.storage.GetTenantBySubdomain(ctx, reg.Subdomain)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, types.NewNotFoundError("Tenant not found")
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up tenant: %w", err)
	}

	if reg.LineUserID != nil {
		existing, err := s.storage.GetParticipantByLineUserID(ctx, tenant.ID, *reg.LineUserID)
		switch {
		case err == nil:
			return existing, false, nil
		case !errors.Is(err, storage.ErrNotFound):
			return nil, false, fmt.Errorf("failed to look up participant: %w", err)
		}
	}

	created, err := s.storage.CreateParticipant(ctx, &types.Participant{
		TenantID:     tenant.ID,
		FullName:     reg.FullName,
		Nickname:     reg.Nickname,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Company:      reg.Company,
		BusinessType: reg.BusinessType,
		LineUserID:   reg.LineUserID,
		Status:       types.StatusProspect,
	})
	if reg.LineUserID != nil && errors.Is(err, storage.ErrDuplicateKey) {
		existing, lookupErr := s.storage.GetParticipantByLineUserID(ctx, tenant.ID, *reg.LineUserID)
		if lookupErr != nil {
			return nil, false, fmt.Errorf("failed to look up participant: %w", lookupErr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create participant: %w", err)
	}

	s.logger.Infof("Registered participant %s in tenant %s", created.ID, tenant.ID)
	return created, true, nil
}
