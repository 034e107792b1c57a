// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package participant

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
	"github.com/canonical/chapter-service/internal/validation"
)

const defaultCheckInSource = "manual"

var (
	adminRoles = []string{types.RoleChapterAdmin}

	// first promotion to member stamps the joined date, later ones keep it
	joinedToday = sq.Expr("COALESCE(joined_date, CURRENT_DATE)")
)

type Service struct {
	storage   StorageInterface
	authz     AuthzInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func notFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return types.NewNotFoundError("Participant not found")
	}
	return err
}

func (s *Service) ids(tenantID string, participantID ...string) error {
	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return err
	}
	for _, id := range participantID {
		if err := s.validator.ID("participant_id", id); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ListParticipants(ctx context.Context, p authorization.Principal, tenantID string, filter ListFilter) ([]*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "participant.Service.ListParticipants")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.ids(tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	return s.storage.ListParticipants(ctx, tenantID, filter.storage())
}

func (s *Service) GetParticipant(ctx context.Context, p authorization.Principal, tenantID, participantID string) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "participant.Service.GetParticipant")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.ids(tenantID, participantID); err != nil {
		return nil, err
	}

	pt, err := s.storage.GetParticipant(ctx, tenantID, participantID)
	if err != nil {
		return nil, notFound(err)
	}

	return pt, nil
}

func (s *Service) CreateParticipant(ctx context.Context, p authorization.Principal, tenantID string, in CreateInput) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "participant.Service.CreateParticipant")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.ids(tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	return s.storage.CreateParticipant(ctx, in.participant(tenantID))
}

func (s *Service) UpdateParticipant(ctx context.Context, p authorization.Principal, tenantID, participantID string, in UpdateInput) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "participant.Service.UpdateParticipant")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.ids(tenantID, participantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	fields := in.fields()
	if len(fields) == 0 {
		return nil, types.NewValidationError("No fields to update", nil)
	}

	pt, err := s.storage.UpdateParticipant(ctx, tenantID, participantID, fields)
	if err != nil {
		return nil, notFound(err)
	}

	return pt, nil
}

// UpdateStatus moves a participant to any status; transitions between statuses are not restricted.
func (s *Service) UpdateStatus(ctx context.Context, p authorization.Principal, tenantID, participantID string, in StatusInput) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "participant.Service.UpdateStatus")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.ids(tenantID, participantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	fields := map[string]any{"status": in.Status}
	if types.ParticipantStatus(in.Status) == types.StatusMember {
		fields["joined_date"] = joinedToday
	}

	pt, err := s.storage.UpdateParticipant(ctx, tenantID, participantID, fields)
	if err != nil {
		return nil, notFound(err)
	}

	return pt, nil
}

func (s *Service) DeleteParticipant(ctx context.Context, p authorization.Principal, tenantID, participantID string) error {
	ctx, span := s.tracer.Start(ctx, "participant.Service.DeleteParticipant")
	defer span.End()

	if err := s.authz.EnforceTenantRole(ctx, p, tenantID, adminRoles); err != nil {
		return err
	}

	if err := s.ids(tenantID, participantID); err != nil {
		return err
	}

	if err := s.storage.DeleteParticipant(ctx, tenantID, participantID); err != nil {
		return notFound(err)
	}

	s.logger.Security().AdminAction(p.UserID(), "delete_participant:"+participantID, "tenant:"+tenantID)

	return nil
}

// CheckIn records attendance for one meeting date. A second check-in for the same
// date surfaces as storage.ErrDuplicateKey.
func (s *Service) CheckIn(ctx context.Context, p authorization.Principal, tenantID, participantID string, in CheckInInput) (*types.CheckIn, error) {
	ctx, span := s.tracer.Start(ctx, "participant.Service.CheckIn")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.ids(tenantID, participantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	// the check-in table has no tenant guard of its own
	if _, err := s.storage.GetParticipant(ctx, tenantID, participantID); err != nil {
		return nil, notFound(err)
	}

	date, _ := time.Parse(dateLayout, in.MeetingDate)
	source := in.Source
	if source == "" {
		source = defaultCheckInSource
	}

	return s.storage.CreateCheckIn(ctx, &types.CheckIn{
		TenantID:      tenantID,
		ParticipantID: participantID,
		MeetingDate:   date,
		Source:        source,
	})
}

func (s *Service) ListCheckIns(ctx context.Context, p authorization.Principal, tenantID, meetingDate string) ([]*types.CheckIn, error) {
	ctx, span := s.tracer.Start(ctx, "participant.Service.ListCheckIns")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.ids(tenantID); err != nil {
		return nil, err
	}

	var date *time.Time
	if meetingDate != "" {
		d, err := time.Parse(dateLayout, meetingDate)
		if err != nil {
			return nil, types.NewValidationError("date must be formatted as YYYY-MM-DD", nil)
		}
		date = &d
	}

	return s.storage.ListCheckIns(ctx, tenantID, date)
}

func NewService(storage StorageInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.validator = validation.NewValidator()
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
