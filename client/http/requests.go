// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/canonical/tenant-console/internal/types"
)

type ProcessEnum string

const (
	ProcessLogin   ProcessEnum = "login"
	ProcessConnect ProcessEnum = "connect"
)

// StartAuthRequest carries exactly one of email or phone
type StartAuthRequest struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type CodeConfirmRequest struct {
	Code string `json:"code"`
}

type ProviderTokenRequest struct {
	Provider string            `json:"provider"`
	Process  ProcessEnum       `json:"process"`
	Token    map[string]string `json:"token"`
}

type UserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PatchedUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type TenantRequest struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
}

type PatchedTenantRequest struct {
	Name    *string `json:"name,omitempty"`
	Website *string `json:"website,omitempty"`
}

type TenantUserUpdateRequest struct {
	Role types.Role `json:"role"`
}

type InvitationRequest struct {
	Email string `json:"email"`
}

// operationURL resolves an operation path against the server, the path must
// be relative so that a server prefix such as /api/ is preserved.
func operationURL(server, operationPath string) (*url.URL, error) {
	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(operationPath, "/") {
		operationPath = "." + operationPath
	}

	return serverURL.Parse(operationPath)
}

func pathParam(name string, value any) (string, error) {
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

func newRequest(method, server, operationPath string, body io.Reader) (*http.Request, error) {
	queryURL, err := operationURL(server, operationPath)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(method, queryURL.String(), body)
}

func newJSONRequest(method, server, operationPath string, body any) (*http.Request, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := newRequest(method, server, operationPath, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")

	return req, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// newMultipartRequest sends file under field, a nil file sends an empty value
// which the API treats as clearing the field.
func newMultipartRequest(method, server, operationPath, field string, file *types.File) (*http.Request, error) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	if file == nil {
		if err := w.WriteField(field, ""); err != nil {
			return nil, err
		}
	} else {
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(field), quoteEscaper.Replace(file.Name)))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := newRequest(method, server, operationPath, body)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", w.FormDataContentType())

	return req, nil
}

// NewAuthStartRequest generates requests for AuthStart
func NewAuthStartRequest(server string, client ClientKind, body StartAuthRequest) (*http.Request, error) {
	pathParam0, err := pathParam("client", client)
	if err != nil {
		return nil, err
	}
	return newJSONRequest(http.MethodPost, server, fmt.Sprintf("/auth/%s/start/", pathParam0), body)
}

// NewAuthConfirmCodeRequest generates requests for AuthConfirmCode
func NewAuthConfirmCodeRequest(server string, client ClientKind, body CodeConfirmRequest) (*http.Request, error) {
	pathParam0, err := pathParam("client", client)
	if err != nil {
		return nil, err
	}
	return newJSONRequest(http.MethodPost, server, fmt.Sprintf("/auth/%s/code/confirm/", pathParam0), body)
}

// NewAuthProviderTokenRequest generates requests for AuthProviderToken
func NewAuthProviderTokenRequest(server string, client ClientKind, body ProviderTokenRequest) (*http.Request, error) {
	pathParam0, err := pathParam("client", client)
	if err != nil {
		return nil, err
	}
	return newJSONRequest(http.MethodPost, server, fmt.Sprintf("/auth/%s/provider/token/", pathParam0), body)
}

// NewAuthSessionStatusRequest generates requests for AuthSessionStatus
func NewAuthSessionStatusRequest(server string, client ClientKind) (*http.Request, error) {
	pathParam0, err := pathParam("client", client)
	if err != nil {
		return nil, err
	}
	return newRequest(http.MethodGet, server, fmt.Sprintf("/auth/%s/session/", pathParam0), nil)
}

// NewAuthLogoutRequest generates requests for AuthLogout
func NewAuthLogoutRequest(server string, client ClientKind) (*http.Request, error) {
	pathParam0, err := pathParam("client", client)
	if err != nil {
		return nil, err
	}
	return newRequest(http.MethodDelete, server, fmt.Sprintf("/auth/%s/session/", pathParam0), nil)
}

// NewAuthProvidersListRequest generates requests for AuthProvidersList
func NewAuthProvidersListRequest(server string) (*http.Request, error) {
	return newRequest(http.MethodGet, server, "/auth/providers/", nil)
}

// NewUserMeRetrieveRequest generates requests for UserMeRetrieve
func NewUserMeRetrieveRequest(server string) (*http.Request, error) {
	return newRequest(http.MethodGet, server, "/auth/user/me/", nil)
}

// NewUserMeUpdateRequest generates requests for UserMeUpdate
func NewUserMeUpdateRequest(server string, body UserRequest) (*http.Request, error) {
	return newJSONRequest(http.MethodPut, server, "/auth/user/me/", body)
}

// NewUserMePartialUpdateRequest generates requests for UserMePartialUpdate
func NewUserMePartialUpdateRequest(server string, body PatchedUserRequest) (*http.Request, error) {
	return newJSONRequest(http.MethodPatch, server, "/auth/user/me/", body)
}

// NewProfileRetrieveRequest generates requests for ProfileRetrieve
func NewProfileRetrieveRequest(server, profilePath string) (*http.Request, error) {
	return newRequest(http.MethodGet, server, profilePath, nil)
}

// NewProfileUpdateRequest generates multipart requests for ProfileUpdate
func NewProfileUpdateRequest(server, profilePath string, avatar *types.File) (*http.Request, error) {
	return newMultipartRequest(http.MethodPut, server, profilePath, "avatar", avatar)
}

// NewProfilePartialUpdateRequest generates multipart requests for ProfilePartialUpdate
func NewProfilePartialUpdateRequest(server, profilePath string, avatar *types.File) (*http.Request, error) {
	return newMultipartRequest(http.MethodPatch, server, profilePath, "avatar", avatar)
}

// NewTenantMeRetrieveRequest generates requests for TenantMeRetrieve
func NewTenantMeRetrieveRequest(server string) (*http.Request, error) {
	return newRequest(http.MethodGet, server, "/tenants/tenant/me/", nil)
}

// NewTenantMeUpdateRequest generates requests for TenantMeUpdate
func NewTenantMeUpdateRequest(server string, body TenantRequest) (*http.Request, error) {
	return newJSONRequest(http.MethodPut, server, "/tenants/tenant/me/", body)
}

// NewTenantMePartialUpdateRequest generates requests for TenantMePartialUpdate
func NewTenantMePartialUpdateRequest(server string, body PatchedTenantRequest) (*http.Request, error) {
	return newJSONRequest(http.MethodPatch, server, "/tenants/tenant/me/", body)
}

// NewTenantLogoRetrieveRequest generates requests for TenantLogoRetrieve
func NewTenantLogoRetrieveRequest(server string) (*http.Request, error) {
	return newRequest(http.MethodGet, server, "/tenants/tenant-logo/", nil)
}

// NewTenantLogoCreateRequest generates multipart requests for TenantLogoCreate
func NewTenantLogoCreateRequest(server string, image types.File) (*http.Request, error) {
	return newMultipartRequest(http.MethodPost, server, "/tenants/tenant-logo/", "image", &image)
}

// NewTenantLogoDestroyRequest generates requests for TenantLogoDestroy
func NewTenantLogoDestroyRequest(server string) (*http.Request, error) {
	return newRequest(http.MethodDelete, server, "/tenants/tenant-logo/", nil)
}

// NewTenantUsersListRequest generates requests for TenantUsersList
func NewTenantUsersListRequest(server string) (*http.Request, error) {
	return newRequest(http.MethodGet, server, "/tenants/tenant-users/", nil)
}

// NewTenantUsersRetrieveRequest generates requests for TenantUsersRetrieve
func NewTenantUsersRetrieveRequest(server string, id int64) (*http.Request, error) {
	pathParam0, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}
	return newRequest(http.MethodGet, server, fmt.Sprintf("/tenants/tenant-users/%s/", pathParam0), nil)
}

// NewTenantUsersUpdateRequest generates requests for TenantUsersUpdate
func NewTenantUsersUpdateRequest(server string, id int64, body TenantUserUpdateRequest) (*http.Request, error) {
	pathParam0, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}
	return newJSONRequest(http.MethodPut, server, fmt.Sprintf("/tenants/tenant-users/%s/", pathParam0), body)
}

// NewTenantUsersPartialUpdateRequest generates requests for TenantUsersPartialUpdate
func NewTenantUsersPartialUpdateRequest(server string, id int64, body TenantUserUpdateRequest) (*http.Request, error) {
	pathParam0, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}
	return newJSONRequest(http.MethodPatch, server, fmt.Sprintf("/tenants/tenant-users/%s/", pathParam0), body)
}

// NewTenantUsersDestroyRequest generates requests for TenantUsersDestroy
func NewTenantUsersDestroyRequest(server string, id int64) (*http.Request, error) {
	pathParam0, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}
	return newRequest(http.MethodDelete, server, fmt.Sprintf("/tenants/tenant-users/%s/", pathParam0), nil)
}

// NewInvitationsListRequest generates requests for InvitationsList
func NewInvitationsListRequest(server string) (*http.Request, error) {
	return newRequest(http.MethodGet, server, "/tenants/invitations/", nil)
}

// NewInvitationsCreateRequest generates requests for InvitationsCreate
func NewInvitationsCreateRequest(server string, body InvitationRequest) (*http.Request, error) {
	return newJSONRequest(http.MethodPost, server, "/tenants/invitations/", body)
}

// NewInvitationsResendRequest generates requests for InvitationsResend
func NewInvitationsResendRequest(server string, id int64) (*http.Request, error) {
	pathParam0, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}
	return newRequest(http.MethodPost, server, fmt.Sprintf("/tenants/invitations/%s/resend/", pathParam0), nil)
}
