// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"

	"github.com/canonical/chapter-service/internal/kratos"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
)

// SessionVerifier accepts Ory Kratos session tokens as bearer credentials.
type SessionVerifier struct {
	sessions SessionClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *SessionVerifier) VerifyToken(ctx context.Context, rawToken string) (*Identity, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.SessionVerifier.VerifyToken")
	defer span.End()

	session, err := v.sessions.WhoAmI(ctx, rawToken)
	if errors.Is(err, kratos.ErrInvalidSession) {
		return nil, rejected(err)
	}
	if err != nil {
		return nil, err
	}

	return &Identity{ID: session.IdentityID, Email: session.Email}, nil
}

func NewSessionVerifier(sessions SessionClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionVerifier {
	return &SessionVerifier{
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
