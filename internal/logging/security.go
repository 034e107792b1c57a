// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityLoggerName = "security"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.l.Warn("authentication failed",
		zap.String("event", "authn_token_invalid"),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn("authorization failed",
		zap.String("event", "authz_fail:"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.l.Info("admin action",
		zap.String("event", "authz_admin:"+userID+","+action),
		zap.String("user_id", userID),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func newSecurityLogger(z *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: z.Named(securityLoggerName).With(zap.String("type", "security"))}
}
