// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"errors"
	"image"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/tenant-console/internal/http/types"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/authentication"
	"github.com/canonical/tenant-console/pkg/profile"
	"github.com/canonical/tenant-console/pkg/tenant"
	"github.com/canonical/tenant-console/pkg/upload"
)

const (
	loginPath    = "/login"
	settingsPath = "/settings"

	multipartOverhead = 1 << 20
)

// Console serves the HTML pages. Every handler deals with its own failures
// by logging them and showing a toast, nothing is propagated.
type Console struct {
	registry       *Registry
	guard          *authentication.Guard
	pages          *Pages
	gate           *upload.Gate
	googleClientID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterPublic mounts the login pages
func (c *Console) RegisterPublic(mux chi.Router) {
	mux.Get(loginPath, c.loginPage)
	mux.Post(loginPath, c.login)
	mux.Post(loginPath+"/code", c.loginCode)
	mux.Post(loginPath+"/reset", c.loginReset)
	mux.Post(loginPath+"/google", c.loginGoogle)
	mux.Post("/logout", c.logout)
}

// RegisterProtected mounts the pages that require a session, mux is expected
// to run the session guard
func (c *Console) RegisterProtected(mux chi.Router) {
	mux.Get("/", c.dashboard)
	mux.Get(settingsPath, c.settings)
	mux.Post(settingsPath+"/profile", c.updateProfile)
	mux.Post(settingsPath+"/avatar", c.uploadAvatar)
	mux.Post(settingsPath+"/avatar/delete", c.removeAvatar)
	mux.Post(settingsPath+"/team", c.updateTeam)
	mux.Post(settingsPath+"/logo", c.uploadLogo)
	mux.Post(settingsPath+"/logo/delete", c.removeLogo)
	mux.Post(settingsPath+"/members/{id}/role", c.setRole)
	mux.Post(settingsPath+"/members/{id}/delete", c.removeMember)
	mux.Post(settingsPath+"/invitations", c.invite)
	mux.Post(settingsPath+"/invitations/{id}/resend", c.resend)
}

// RegisterAPI mounts the JSON session snapshot
func (c *Console) RegisterAPI(mux chi.Router) {
	mux.Get("/api/v0/session", c.session)
}

func (c *Console) loginPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.loginPage")
	defer span.End()

	next := authentication.SafeNext(r.URL.Query().Get("next"))

	view := loginView{Step: authentication.StepInitial, Next: next, GoogleClientID: c.googleClientID}

	if e, ok := c.registry.Lookup(r); ok {
		// the stored user may belong to a backend session that is gone
		if e.State.Authenticated() {
			_, err := c.guard.Bootstrap(ctx, e.Client, e.State)
			if err == nil {
				http.Redirect(w, r, next, http.StatusFound)
				return
			}

			c.logger.Debugf("stored session is no longer valid: %v", err)
		}

		if e.Flow.Step() == authentication.StepCodeLogin {
			view.Step = authentication.StepCodeLogin
			view.Identifier = e.Flow.Identifier()
		}
	}

	c.render(w, r, http.StatusOK, "login", page{Title: "Log in", Login: view})
}

func (c *Console) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.login")
	defer span.End()

	next := authentication.SafeNext(r.PostFormValue("next"))

	e, err := c.registry.Ensure(w, r)
	if err != nil {
		c.logger.Errorf("failed to create console session: %v", err)
		c.flash(w, r, FlashError, authentication.UserMessage)
		http.Redirect(w, r, loginURL(next), http.StatusSeeOther)
		return
	}

	res, err := e.Flow.Start(ctx, authentication.Identifier{
		Email: r.PostFormValue("email"),
		Phone: r.PostFormValue("phone"),
	})

	switch {
	case errors.Is(err, authentication.ErrInvalidIdentifier):
		c.flash(w, r, FlashError, "Please enter a valid email address or phone number.")
	case err != nil:
		c.flash(w, r, FlashError, authentication.UserMessage)
	case res.Outcome == authentication.Authenticated:
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, loginURL(next), http.StatusSeeOther)
}

func (c *Console) loginCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.loginCode")
	defer span.End()

	next := authentication.SafeNext(r.PostFormValue("next"))

	e, ok := c.registry.Lookup(r)
	if !ok {
		c.flash(w, r, FlashError, "Your login attempt expired. Please request a new code.")
		http.Redirect(w, r, loginURL(next), http.StatusSeeOther)
		return
	}

	err := e.Flow.Confirm(ctx, r.PostFormValue("code"))

	switch {
	case err == nil:
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	case errors.Is(err, authentication.ErrInvalidCode):
		c.flash(w, r, FlashError, "Please enter the 6 character code.")
	case errors.Is(err, authentication.ErrInvalidStep):
		c.flash(w, r, FlashError, "Your login attempt expired. Please request a new code.")
	default:
		c.flash(w, r, FlashError, "The code is invalid or has expired. Please try again.")
	}

	http.Redirect(w, r, loginURL(next), http.StatusSeeOther)
}

func (c *Console) loginReset(w http.ResponseWriter, r *http.Request) {
	if e, ok := c.registry.Lookup(r); ok {
		e.Flow.Reset()
	}

	http.Redirect(w, r, loginURL(authentication.SafeNext(r.PostFormValue("next"))), http.StatusSeeOther)
}

func (c *Console) loginGoogle(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.loginGoogle")
	defer span.End()

	next := authentication.SafeNext(r.PostFormValue("next"))

	e, err := c.registry.Ensure(w, r)
	if err != nil {
		c.logger.Errorf("failed to create console session: %v", err)
		c.flash(w, r, FlashError, authentication.UserMessage)
		http.Redirect(w, r, loginURL(next), http.StatusSeeOther)
		return
	}

	err = e.Flow.ProviderLogin(ctx, authentication.ProviderCredential{
		Provider: authentication.GoogleProvider,
		ClientID: c.googleClientID,
		IDToken:  r.PostFormValue("credential"),
	})

	if err != nil {
		c.flash(w, r, FlashError, authentication.UserMessage)
		http.Redirect(w, r, loginURL(next), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (c *Console) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.logout")
	defer span.End()

	if e, ok := c.registry.Lookup(r); ok {
		if err := e.Flow.Logout(ctx, e.State); err != nil {
			// the entry is dropped anyway, its api cookies go with it
			c.logger.Errorf("failed to log out: %v", err)
		}
	}

	c.registry.Drop(w, r)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (c *Console) dashboard(w http.ResponseWriter, r *http.Request) {
	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	snap := e.State.Snapshot()
	c.render(w, r, http.StatusOK, "dashboard", page{Title: "Dashboard", User: snap.User, Tenant: snap.Tenant})
}

func (c *Console) settings(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.settings")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	flashes := make([]Flash, 0)

	if _, has := e.State.Tenants.Tenant(); has {
		if _, err := e.Tenant.Logo(ctx); err != nil {
			c.logger.Errorf("failed to fetch team logo: %v", err)
		}
	}

	snap := e.State.Snapshot()
	view := settingsView{
		CanManage:   e.State.Role().Manager(),
		MaxUploadMB: c.gate.MaxSize() >> 20,
		RoleOptions: e.Tenant.RoleOptions(),
	}

	if snap.Tenant != nil {
		for _, m := range snap.Tenant.TenantUsers {
			view.Members = append(view.Members, memberView{TenantUser: m, Editable: view.CanManage && e.Tenant.CanEditRole(m)})
		}
	}

	if view.CanManage {
		invitations, err := e.Tenant.PendingInvitations(ctx)
		if err != nil {
			c.logger.Errorf("failed to list invitations: %v", err)
			flashes = append(flashes, Flash{Kind: FlashError, Message: "Could not load invitations. Please try again."})
		}
		view.Invitations = invitations
	}

	c.render(w, r, http.StatusOK, "settings", page{
		Title:    "Settings",
		Flashes:  flashes,
		User:     snap.User,
		Tenant:   snap.Tenant,
		Settings: view,
	})
}

func (c *Console) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.updateProfile")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	if _, err := e.Profile.UpdateName(ctx, r.PostFormValue("first_name"), r.PostFormValue("last_name")); err != nil {
		c.flash(w, r, FlashError, c.profileMessage(err))
	} else {
		c.flash(w, r, FlashSuccess, "Profile updated.")
	}

	http.Redirect(w, r, settingsPath, http.StatusSeeOther)
}

func (c *Console) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.uploadAvatar")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	file, err := c.readUpload(w, r, "avatar")
	if err == nil {
		var crop *image.Rectangle
		if crop, err = cropArea(r); err == nil {
			_, err = e.Profile.UploadAvatar(ctx, file, crop)
		}
	}

	if err != nil {
		c.flash(w, r, FlashError, c.profileMessage(err))
	} else {
		c.flash(w, r, FlashSuccess, "Avatar updated.")
	}

	http.Redirect(w, r, settingsPath, http.StatusSeeOther)
}

func (c *Console) removeAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.removeAvatar")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	if err := e.Profile.RemoveAvatar(ctx); err != nil {
		c.flash(w, r, FlashError, c.profileMessage(err))
	} else {
		c.flash(w, r, FlashSuccess, "Avatar removed.")
	}

	http.Redirect(w, r, settingsPath, http.StatusSeeOther)
}

func (c *Console) updateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.updateTeam")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	current, _ := e.State.Tenants.Tenant()

	_, err := e.Tenant.Rename(ctx, r.PostFormValue("name"))
	if err == nil && current != nil && strings.TrimSpace(r.PostFormValue("website")) != current.Website {
		_, err = e.Tenant.SetWebsite(ctx, r.PostFormValue("website"))
	}

	c.tenantResult(w, r, err, "Team updated.")
}

func (c *Console) uploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.uploadLogo")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	file, err := c.readUpload(w, r, "logo")
	if err == nil {
		_, err = e.Tenant.UploadLogo(ctx, file)
	}

	c.tenantResult(w, r, err, "Logo updated.")
}

func (c *Console) removeLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.removeLogo")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	c.tenantResult(w, r, e.Tenant.RemoveLogo(ctx), "Logo removed.")
}

func (c *Console) setRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.setRole")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err == nil {
		_, err = e.Tenant.SetRole(ctx, id, types.Role(r.PostFormValue("role")))
	}

	c.tenantResult(w, r, err, "Role updated.")
}

func (c *Console) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.removeMember")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err == nil {
		err = e.Tenant.RemoveMember(ctx, id)
	}

	c.tenantResult(w, r, err, "Member removed.")
}

func (c *Console) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.invite")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	_, err := e.Tenant.Invite(ctx, r.PostFormValue("email"))

	c.tenantResult(w, r, err, "Invitation sent.")
}

func (c *Console) resend(w http.ResponseWriter, r *http.Request) {
	ctx, span := c.tracer.Start(r.Context(), "web.Console.resend")
	defer span.End()

	e, ok := c.entry(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err == nil {
		_, err = e.Tenant.Resend(ctx, id)
	}

	c.tenantResult(w, r, err, "Invitation resent.")
}

func (c *Console) session(w http.ResponseWriter, r *http.Request) {
	sess, ok := authentication.GetSession(r.Context())
	if !ok {
		httptypes.WriteError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, sess.Snapshot(), "Current session")
}

// entry returns the entry owning the session attached by the guard, a
// missing one means it was swept between the guard and the handler
func (c *Console) entry(w http.ResponseWriter, r *http.Request) (*Entry, bool) {
	var e *Entry

	sess, ok := authentication.GetSession(r.Context())
	if ok {
		e, ok = c.registry.Owner(sess)
	}

	if !ok {
		http.Redirect(w, r, authentication.LoginRedirect(loginPath, r.URL), http.StatusFound)
	}
	return e, ok
}

func (c *Console) tenantResult(w http.ResponseWriter, r *http.Request, err error, success string) {
	switch {
	case err == nil:
		c.flash(w, r, FlashSuccess, success)
	case c.gate.Message(err) != "":
		c.flash(w, r, FlashError, c.gate.Message(err))
	default:
		if status, _ := tenant.StatusOf(err); status >= http.StatusInternalServerError {
			c.logger.Errorf("team operation failed: %v", err)
		}
		c.flash(w, r, FlashError, tenant.Message(err))
	}

	http.Redirect(w, r, settingsPath, http.StatusSeeOther)
}

func (c *Console) profileMessage(err error) string {
	if msg := c.gate.Message(err); msg != "" {
		return msg
	}

	if errors.Is(err, profile.ErrInvalidName) {
		return "First and last name must be at most 30 characters."
	}

	c.logger.Errorf("profile operation failed: %v", err)
	return "Something went wrong. Please try again."
}

func (c *Console) flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	c.registry.AddFlash(w, r, kind, message)
}

func (c *Console) render(w http.ResponseWriter, r *http.Request, status int, name string, data page) {
	data.Flashes = append(c.registry.Flashes(w, r), data.Flashes...)

	if err := c.pages.Render(w, status, name, data); err != nil {
		c.logger.Errorf("failed to render page: %v", err)
		http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
	}
}

// readUpload reads one multipart file into memory, bodies over the gate limit
// are cut short and reported as too large
func (c *Console) readUpload(w http.ResponseWriter, r *http.Request, field string) (types.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, c.gate.MaxSize()+multipartOverhead)

	f, header, err := r.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return types.File{}, upload.ErrTooLarge
		}
		if errors.Is(err, http.ErrMissingFile) {
			return types.File{}, upload.ErrEmptyFile
		}
		return types.File{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return types.File{}, err
	}

	return types.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// cropArea returns the optional crop rectangle of an avatar form, nil when no
// crop field is filled in
func cropArea(r *http.Request) (*image.Rectangle, error) {
	fields := []string{"crop_x", "crop_y", "crop_w", "crop_h"}
	values := make([]int, len(fields))

	empty := 0
	for i, name := range fields {
		raw := strings.TrimSpace(r.FormValue(name))
		if raw == "" {
			empty++
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, upload.ErrEmptyCrop
		}
		values[i] = v
	}

	if empty == len(fields) {
		return nil, nil
	}

	if values[2] == 0 || values[3] == 0 {
		return nil, upload.ErrEmptyCrop
	}

	area := image.Rect(values[0], values[1], values[0]+values[2], values[1]+values[3])
	return &area, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, tenant.ErrMemberNotFound
	}
	return id, nil
}

func loginURL(next string) string {
	if next == "" || next == "/" {
		return loginPath
	}
	return loginPath + "?" + url.Values{"next": {next}}.Encode()
}

func NewConsole(
	registry *Registry,
	guard *authentication.Guard,
	pages *Pages,
	gate *upload.Gate,
	googleClientID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Console {
	c := new(Console)

	c.registry = registry
	c.guard = guard
	c.pages = pages
	c.gate = gate
	c.googleClientID = googleClientID

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
