// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityLogType = "security"

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, description string, fields ...zap.Field) {
	fields = append(
		[]zap.Field{
			zap.String("type", securityLogType),
			zap.String("event", name),
			zap.String("appid", "tenant-console"),
		},
		fields...,
	)
	s.l.Warn(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", "tenant console is starting")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", "tenant console is shutting down")
}

func (s *SecurityLogger) AuthnSuccess(user, method string) {
	s.event("authn_login_success:"+user, "user logged in", zap.String("method", method))
}

func (s *SecurityLogger) AuthnFailure(user, method string) {
	s.event("authn_login_fail:"+user, "user login failed", zap.String("method", method))
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.event("authz_fail:"+user+","+resource, "user attempted an action without permission")
}

func (s *SecurityLogger) Logout(user string) {
	s.event("authn_logout:"+user, "user logged out")
}

func (s *SecurityLogger) AdminAction(user, action, resource string) {
	s.event("admin_action:"+user+","+action+","+resource, "team administration action")
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}
