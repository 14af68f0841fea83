// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/http/types"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/pkg/upload"
)

// ServiceResolver returns the team service of the browser session making r
type ServiceResolver func(r *http.Request) (ServiceInterface, bool)

type roleRequest struct {
	Role string `json:"role"`
}

type invitationRequest struct {
	Email string `json:"email"`
}

type API struct {
	resolve ServiceResolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	resolve ServiceResolver,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		resolve: resolve,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the team API, the routes are expected to sit
// behind the session guard
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/team", a.team)
	mux.Get("/api/v0/team/members", a.listMembers)
	mux.Patch("/api/v0/team/members/{id}", a.setRole)
	mux.Delete("/api/v0/team/members/{id}", a.removeMember)
	mux.Get("/api/v0/team/invitations", a.listInvitations)
	mux.Post("/api/v0/team/invitations", a.invite)
	mux.Post("/api/v0/team/invitations/{id}/resend", a.resend)
}

func (a *API) team(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.team")
	defer span.End()

	svc, ok := a.service(w, r)
	if !ok {
		return
	}

	t, err := svc.Refresh(ctx)
	if err != nil {
		a.fail(w, err, "failed to fetch team")
		return
	}

	types.WriteJSON(w, http.StatusOK, t, "Team details")
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMembers")
	defer span.End()

	svc, ok := a.service(w, r)
	if !ok {
		return
	}

	members, err := svc.ListMembers(ctx)
	if err != nil {
		a.fail(w, err, "failed to list members")
		return
	}

	types.WriteJSON(w, http.StatusOK, members, "List of members")
}

func (a *API) setRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setRole")
	defer span.End()

	svc, ok := a.service(w, r)
	if !ok {
		return
	}

	id, ok := a.id(w, r)
	if !ok {
		return
	}

	var body roleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		types.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := svc.SetRole(ctx, id, roleOf(body.Role))
	if err != nil {
		a.fail(w, err, "failed to change member role")
		return
	}

	types.WriteJSON(w, http.StatusOK, member, "Member role updated")
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.removeMember")
	defer span.End()

	svc, ok := a.service(w, r)
	if !ok {
		return
	}

	id, ok := a.id(w, r)
	if !ok {
		return
	}

	if err := svc.RemoveMember(ctx, id); err != nil {
		a.fail(w, err, "failed to remove member")
		return
	}

	types.WriteJSON(w, http.StatusOK, nil, "Member removed")
}

func (a *API) listInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listInvitations")
	defer span.End()

	svc, ok := a.service(w, r)
	if !ok {
		return
	}

	list := svc.ListInvitations
	if r.URL.Query().Get("pending") == "true" {
		list = svc.PendingInvitations
	}

	invitations, err := list(ctx)
	if err != nil {
		a.fail(w, err, "failed to list invitations")
		return
	}

	types.WriteJSON(w, http.StatusOK, invitations, "List of invitations")
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.invite")
	defer span.End()

	svc, ok := a.service(w, r)
	if !ok {
		return
	}

	var body invitationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		types.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invitation, err := svc.Invite(ctx, body.Email)
	if err != nil {
		a.fail(w, err, "failed to send invitation")
		return
	}

	types.WriteJSON(w, http.StatusCreated, invitation, "Invitation sent")
}

func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.resend")
	defer span.End()

	svc, ok := a.service(w, r)
	if !ok {
		return
	}

	id, ok := a.id(w, r)
	if !ok {
		return
	}

	detail, err := svc.Resend(ctx, id)
	if err != nil {
		a.fail(w, err, "failed to resend invitation")
		return
	}

	types.WriteJSON(w, http.StatusOK, nil, detail)
}

func (a *API) service(w http.ResponseWriter, r *http.Request) (ServiceInterface, bool) {
	svc, ok := a.resolve(r)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "Not logged in")
	}
	return svc, ok
}

func (a *API) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		types.WriteError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// fail maps service errors to a status and a message safe to show
func (a *API) fail(w http.ResponseWriter, err error, logMsg string) {
	status, message := StatusOf(err)
	if status >= http.StatusInternalServerError {
		a.logger.Errorf("%s: %v", logMsg, err)
	}
	types.WriteError(w, status, message)
}

// StatusOf returns the HTTP status and user facing message for a team error
func StatusOf(err error) (int, string) {
	gate := upload.NewGate(0)

	switch {
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrOwnerOnly), errors.Is(err, ErrOwnerImmutable):
		return http.StatusForbidden, Message(err)
	case errors.Is(err, ErrResendTooSoon):
		return http.StatusTooManyRequests, Message(err)
	case errors.Is(err, ErrMemberNotFound):
		return http.StatusNotFound, Message(err)
	case errors.Is(err, ErrNoTenant):
		return http.StatusUnauthorized, Message(err)
	case errors.Is(err, ErrRoleUnchanged), errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidWebsite), errors.Is(err, ErrInvalidEmail):
		return http.StatusBadRequest, Message(err)
	case gate.Message(err) != "":
		return http.StatusBadRequest, gate.Message(err)
	}

	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		if apiErr.Detail != "" {
			return apiErr.StatusCode, apiErr.Detail
		}
		return apiErr.StatusCode, Message(err)
	}

	return http.StatusInternalServerError, Message(err)
}
