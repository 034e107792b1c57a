// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// Session is the subset of a Kratos session the service relies on.
type Session struct {
	IdentityID string
	Email      string
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// WhoAmI resolves a session token against the Kratos public API.
func (c *Client) WhoAmI(ctx context.Context, sessionToken string) (*Session, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.WhoAmI")
	defer span.End()

	session, r, err := c.client.FrontendAPI.ToSession(ctx).XSessionToken(sessionToken).Execute()
	c.setAvailability(r, err)
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if !session.GetActive() {
		return nil, ErrInvalidSession
	}

	identity := session.GetIdentity()
	if identity.GetId() == "" {
		return nil, ErrInvalidSession
	}

	return &Session{
		IdentityID: identity.GetId(),
		Email:      emailTrait(identity.GetTraits()),
	}, nil
}

func (c *Client) setAvailability(r *http.Response, err error) {
	v := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		v = 0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, v); mErr != nil {
		c.logger.Debugf("failed to record kratos availability: %v", mErr)
	}
}

func emailTrait(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}

	email, _ := m["email"].(string)
	return email
}

func NewClient(kratosPublicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
