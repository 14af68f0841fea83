// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit events in a stable shape so they can be
// filtered downstream independently of the application logs.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnSuccess(user, method string)
	AuthnFailure(user, method string)
	AuthzFailure(user, resource string)
	Logout(user string)
	AdminAction(user, action, resource string)
}
