// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/authentication"
)

//go:embed templates/*.html
var templateFS embed.FS

type loginView struct {
	Step           authentication.Step
	Identifier     string
	Next           string
	GoogleClientID string
}

type memberView struct {
	types.TenantUser
	Editable bool
}

type settingsView struct {
	CanManage   bool
	MaxUploadMB int64
	Members     []memberView
	RoleOptions []types.Role
	Invitations []types.Invitation
}

type page struct {
	Title    string
	Flashes  []Flash
	User     *types.User
	Tenant   *types.Tenant
	Login    loginView
	Settings settingsView
}

// Pages holds one parsed template set per page, each with the shared layout
type Pages struct {
	pages map[string]*template.Template
}

func (p *Pages) Render(w http.ResponseWriter, status int, name string, data page) error {
	t, ok := p.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	// render fully before writing so a template error does not leave half a page
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}

func NewPages() (*Pages, error) {
	p := new(Pages)
	p.pages = make(map[string]*template.Template)

	for _, name := range []string{"login", "dashboard", "settings"} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		p.pages[name] = t
	}

	return p, nil
}
