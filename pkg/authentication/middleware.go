// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
)

const (
	msgMissingHeader = "Missing or invalid authorization header"
	msgInvalidToken  = "Invalid or expired token"
	msgAuthFailed    = "Authentication failed"

	healthServicePrefix = "/grpc.health.v1.Health/"
)

type Middleware struct {
	verifier TokenVerifierInterface
	resolver AuthContextResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// authenticate verifies the token and resolves the caller's context exactly once.
// A *types.Error with CodeUnauthorized means the identity is valid but has no roles.
// Only ErrTokenRejected becomes errInvalidToken, an unreachable provider stays a plain error.
func (m *Middleware) authenticate(ctx context.Context, token string) (*Identity, *authorization.AuthContext, error) {
	identity, err := m.verifier.VerifyToken(ctx, token)
	if errors.Is(err, ErrTokenRejected) {
		return nil, nil, errInvalidToken{err}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("token verification failed: %w", err)
	}

	ac, err := m.resolver.GetAuthContext(ctx, identity.ID)
	if err != nil {
		return identity, nil, err
	}

	return identity, ac, nil
}

type errInvalidToken struct {
	err error
}

func (e errInvalidToken) Error() string {
	return e.err.Error()
}

func (e errInvalidToken) Unwrap() error {
	return e.err
}

// RequireAuth rejects requests without a valid bearer token or without any role,
// and stores the identity and AuthContext on the request context.
func (m *Middleware) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequireAuth")
			defer span.End()

			token, found := bearerToken(r.Header.Get("Authorization"))
			if !found {
				m.logger.Security().AuthnFailure("missing bearer token")
				m.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": msgMissingHeader})
				return
			}

			identity, ac, err := m.authenticate(ctx, token)
			var invalid errInvalidToken

			switch {
			case err == nil:
			case errors.As(err, &invalid):
				m.logger.Debugf("token verification failed: %v", err)
				m.logger.Security().AuthnFailure("invalid token")
				m.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": msgInvalidToken})
				return
			case errors.Is(err, types.ErrUnauthorized):
				m.logger.Security().AuthzFailure(identity.ID, "api")
				m.writeJSON(w, http.StatusForbidden, map[string]string{"error": "Forbidden", "message": err.Error()})
				return
			default:
				m.logger.Errorf("authentication failed: %v", err)
				m.writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "Internal server error",
					"message": msgAuthFailed,
				})
				return
			}

			ctx = WithUserID(ctx, identity.ID)
			ctx = WithUserEmail(ctx, identity.Email)
			ctx = WithAuthContext(ctx, ac)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GRPCInterceptor is the unary interceptor counterpart of RequireAuth.
// Health checks pass through unauthenticated.
func (m *Middleware) GRPCInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if strings.HasPrefix(info.FullMethod, healthServicePrefix) {
		return handler(ctx, req)
	}

	ctx, span := m.tracer.Start(ctx, "authentication.Middleware.GRPCInterceptor")
	defer span.End()

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, msgMissingHeader)
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, msgMissingHeader)
	}

	token, found := bearerToken(values[0])
	if !found {
		return nil, status.Error(codes.Unauthenticated, msgMissingHeader)
	}

	identity, ac, err := m.authenticate(ctx, token)
	var invalid errInvalidToken

	switch {
	case err == nil:
	case errors.As(err, &invalid):
		m.logger.Debugf("gRPC token verification failed: %v", err)
		return nil, status.Error(codes.Unauthenticated, msgInvalidToken)
	case errors.Is(err, types.ErrUnauthorized):
		return nil, status.Error(codes.PermissionDenied, err.Error())
	default:
		m.logger.Errorf("gRPC authentication failed: %v", err)
		return nil, status.Error(codes.Internal, msgAuthFailed)
	}

	ctx = WithUserID(ctx, identity.ID)
	ctx = WithUserEmail(ctx, identity.Email)
	ctx = WithAuthContext(ctx, ac)

	return handler(ctx, req)
}

// bearerToken only accepts the "Bearer <token>" format (RFC 6750).
func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func (m *Middleware) writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		m.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewMiddleware(
	verifier TokenVerifierInterface,
	resolver AuthContextResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		verifier: verifier,
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
