// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/chapter-service/internal/db"
	"github.com/canonical/chapter-service/internal/types"
)

var (
	participantColumns = []string{
		"participant_id", "tenant_id", "full_name", "nickname", "email", "phone", "company",
		"business_type", "line_user_id", "status", "joined_date", "notes", "created_at", "updated_at",
	}
	checkInColumns = []string{"checkin_id", "tenant_id", "participant_id", "meeting_date", "checked_in_at", "source"}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches term literally inside a LIKE pattern, backslash being the default escape.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func scanParticipant(row scanner) (*types.Participant, error) {
	var p types.Participant
	err := row.Scan(
		&p.ID, &p.TenantID, &p.FullName, &p.Nickname, &p.Email, &p.Phone, &p.Company,
		&p.BusinessType, &p.LineUserID, &p.Status, &p.JoinedDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanCheckIn(row scanner) (*types.CheckIn, error) {
	var c types.CheckIn
	if err := row.Scan(&c.ID, &c.TenantID, &c.ParticipantID, &c.MeetingDate, &c.CheckedInAt, &c.Source); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListParticipants(ctx context.Context, tenantID string, filter types.ParticipantFilter) ([]*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListParticipants")
	defer span.End()

	size := db.PageSize(filter.Size)
	query := s.db.Statement(ctx).
		Select(participantColumns...).
		From("participants").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("full_name", "participant_id").
		Limit(size).
		Offset(db.Offset(filter.Page, size))

	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": string(*filter.Status)})
	}

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"nickname": pattern},
			sq.ILike{"company": pattern},
		})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, wrap(err, "list participants")
	}
	defer rows.Close()

	participants := make([]*types.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return participants, nil
}

func (s *Storage) GetParticipant(ctx context.Context, tenantID, id string) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetParticipant")
	defer span.End()

	p, err := scanParticipant(
		s.db.Statement(ctx).
			Select(participantColumns...).
			From("participants").
			Where(sq.Eq{"tenant_id": tenantID, "participant_id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "get participant")
	}

	return p, nil
}

func (s *Storage) GetParticipantByLineUserID(ctx context.Context, tenantID, lineUserID string) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetParticipantByLineUserID")
	defer span.End()

	p, err := scanParticipant(
		s.db.Statement(ctx).
			Select(participantColumns...).
			From("participants").
			Where(sq.Eq{"tenant_id": tenantID, "line_user_id": lineUserID}).
			Limit(1).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "get participant by line user")
	}

	return p, nil
}

func (s *Storage) CreateParticipant(ctx context.Context, p *types.Participant) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateParticipant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate participant ID: %w", err)
	}

	status := p.Status
	if status == "" {
		status = types.StatusProspect
	}

	created, err := scanParticipant(
		s.db.Statement(ctx).
			Insert("participants").
			Columns(
				"participant_id", "tenant_id", "full_name", "nickname", "email", "phone", "company",
				"business_type", "line_user_id", "status", "joined_date", "notes",
			).
			Values(
				id.String(), p.TenantID, p.FullName, p.Nickname, p.Email, p.Phone, p.Company,
				p.BusinessType, p.LineUserID, string(status), p.JoinedDate, p.Notes,
			).
			Suffix(returning(participantColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "insert participant")
	}

	return created, nil
}

func (s *Storage) UpdateParticipant(ctx context.Context, tenantID, id string, fields map[string]any) (*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateParticipant")
	defer span.End()

	p, err := scanParticipant(
		s.db.Statement(ctx).
			Update("participants").
			SetMap(fields).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"tenant_id": tenantID, "participant_id": id}).
			Suffix(returning(participantColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "update participant")
	}

	return p, nil
}

func (s *Storage) DeleteParticipant(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteParticipant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("participants").
		Where(sq.Eq{"tenant_id": tenantID, "participant_id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrap(err, "delete participant")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateCheckIn(ctx context.Context, c *types.CheckIn) (*types.CheckIn, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCheckIn")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate check-in ID: %w", err)
	}

	created, err := scanCheckIn(
		s.db.Statement(ctx).
			Insert("checkins").
			Columns("checkin_id", "tenant_id", "participant_id", "meeting_date", "source").
			Values(id.String(), c.TenantID, c.ParticipantID, c.MeetingDate, c.Source).
			Suffix(returning(checkInColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "insert check-in")
	}

	return created, nil
}

func (s *Storage) ListCheckIns(ctx context.Context, tenantID string, meetingDate *time.Time) ([]*types.CheckIn, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCheckIns")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(checkInColumns...).
		From("checkins").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("meeting_date DESC", "checked_in_at")

	if meetingDate != nil {
		query = query.Where(sq.Eq{"meeting_date": *meetingDate})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, wrap(err, "list check-ins")
	}
	defer rows.Close()

	checkIns := make([]*types.CheckIn, 0)
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkIns = append(checkIns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return checkIns, nil
}
