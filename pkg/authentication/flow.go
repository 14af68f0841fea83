// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/state"
)

type Step string

const (
	StepInitial       Step = "initial"
	StepCodeLogin     Step = "code-login"
	StepProviderLogin Step = "google-login"
	StepDone          Step = "done"
)

type Outcome int

const (
	// ChallengeIssued means a one time code was sent out of band
	ChallengeIssued Outcome = iota
	// Authenticated means the server opened a session without a code
	Authenticated
)

func (o Outcome) String() string {
	switch o {
	case ChallengeIssued:
		return "challenge-issued"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

type StartResult struct {
	Outcome Outcome
}

// Identifier names the account a login code is sent to, exactly one of the
// two fields must be set
type Identifier struct {
	Email string `validate:"required_without=Phone,excluded_with=Phone,omitempty,email,max=254"`
	Phone string `validate:"required_without=Email,excluded_with=Email,omitempty,e164"`
}

func (i Identifier) String() string {
	if i.Email != "" {
		return i.Email
	}
	return i.Phone
}

type codeInput struct {
	Code string `validate:"required,len=6,alphanum"`
}

// ProviderCredential is what a third party sign-in hands back to the client
type ProviderCredential struct {
	Provider string `validate:"required"`
	ClientID string `validate:"required"`
	IDToken  string `validate:"required"`
}

// Flow drives one login attempt, initial then code-login, or initial then
// google-login. A Flow is bound to one API client and is safe for use from
// concurrent handlers.
type Flow struct {
	client   ClientInterface
	verifier TokenVerifierInterface
	validate *validator.Validate

	mu         sync.Mutex
	step       Step
	identifier string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.step
}

// Identifier returns the email or phone the last code was sent to
func (f *Flow) Identifier() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.identifier
}

// Reset goes back to the initial step, used by "use another email"
func (f *Flow) Reset() {
	f.setStep(StepInitial)
}

// Resume puts the flow on the code step for a login started by an earlier
// process, the pending login lives in the server session
func (f *Flow) Resume(identifier string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.step = StepCodeLogin
	f.identifier = identifier
}

func (f *Flow) setStep(s Step) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.step = s
}

// Start asks the server to send a login code. The server answers 401 once the
// code is on its way, which is reported as ChallengeIssued and moves the flow
// to the code step. A 2xx answer means a session exists already.
func (f *Flow) Start(ctx context.Context, id Identifier) (*StartResult, error) {
	ctx, span := f.tracer.Start(ctx, "authentication.Flow.Start")
	defer span.End()

	id.Email = strings.TrimSpace(id.Email)
	id.Phone = strings.TrimSpace(id.Phone)

	if err := f.validate.Struct(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}

	f.primeCSRF(ctx)

	_, err := f.client.AuthStart(ctx, httpclient.StartAuthRequest{Email: id.Email, Phone: id.Phone})

	switch {
	case err == nil:
		f.logger.Security().AuthnSuccess(id.String(), "code")
		return &StartResult{Outcome: Authenticated}, nil
	case httpclient.IsUnauthorized(err):
		f.mu.Lock()
		f.step = StepCodeLogin
		f.identifier = id.String()
		f.mu.Unlock()

		f.logger.Debugf("login code sent to %s", id)
		return &StartResult{Outcome: ChallengeIssued}, nil
	}

	f.logger.Errorf("failed to start login for %s: %v", id, err)
	return nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
}

// primeCSRF makes sure the browser client holds a csrftoken cookie before
// the first unsafe request, the session status endpoint hands one out
func (f *Flow) primeCSRF(ctx context.Context) {
	if f.client.Kind() != httpclient.ClientBrowser || f.client.CSRFToken() != "" {
		return
	}

	// unauthenticated sessions answer 401, only the cookie matters here
	if _, err := f.client.AuthSessionStatus(ctx); err != nil && !httpclient.IsUnauthorized(err) {
		f.logger.Debugf("failed to prime csrf token: %v", err)
	}
}

// Confirm submits the one time code. Failures are logged and returned, the
// flow stays on the code step without counting attempts.
func (f *Flow) Confirm(ctx context.Context, code string) error {
	ctx, span := f.tracer.Start(ctx, "authentication.Flow.Confirm")
	defer span.End()

	if step := f.Step(); step != StepCodeLogin {
		return fmt.Errorf("%w: confirm called at step %s", ErrInvalidStep, step)
	}

	in := codeInput{Code: strings.TrimSpace(code)}
	if err := f.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}

	identifier := f.Identifier()

	// the returned user is dropped, the guard fetches it again
	if _, err := f.client.AuthConfirmCode(ctx, httpclient.CodeConfirmRequest{Code: in.Code}); err != nil {
		f.logger.Errorf("failed to confirm login code for %s: %v", identifier, err)
		f.logger.Security().AuthnFailure(identifier, "code")
		return fmt.Errorf("%w: %w", ErrConfirmFailed, err)
	}

	f.setStep(StepDone)
	f.logger.Security().AuthnSuccess(identifier, "code")

	return nil
}

// ProviderLogin exchanges a provider ID token for a session
func (f *Flow) ProviderLogin(ctx context.Context, cred ProviderCredential) error {
	ctx, span := f.tracer.Start(ctx, "authentication.Flow.ProviderLogin")
	defer span.End()

	if err := f.validate.Struct(cred); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	f.setStep(StepProviderLogin)

	subject := cred.Provider
	if f.verifier != nil {
		identity, err := f.verifier.VerifyToken(ctx, cred.IDToken)
		if err != nil {
			f.setStep(StepInitial)
			f.logger.Security().AuthnFailure(cred.Provider, cred.Provider)
			return fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		subject = identity.Principal()
	}

	_, err := f.client.AuthProviderToken(
		ctx,
		httpclient.ProviderTokenRequest{
			Provider: cred.Provider,
			Process:  httpclient.ProcessLogin,
			Token: map[string]string{
				"client_id": cred.ClientID,
				"id_token":  cred.IDToken,
			},
		},
	)

	if err != nil {
		f.setStep(StepInitial)
		f.logger.Errorf("failed to log in with %s: %v", cred.Provider, err)
		f.logger.Security().AuthnFailure(subject, cred.Provider)
		return fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}

	f.setStep(StepDone)
	f.logger.Security().AuthnSuccess(subject, cred.Provider)

	return nil
}

// Logout ends the server session and empties the stores. allauth answers a
// successful logout with 401, which is not an error here.
func (f *Flow) Logout(ctx context.Context, sess *state.Session) error {
	ctx, span := f.tracer.Start(ctx, "authentication.Flow.Logout")
	defer span.End()

	user := ""
	if u, ok := sess.Users.User(); ok {
		user = u.Email
	}

	if err := f.client.AuthLogout(ctx); err != nil && !httpclient.IsUnauthorized(err) {
		return fmt.Errorf("failed to log out: %w", err)
	}

	sess.Clear()
	f.Reset()
	f.logger.Security().Logout(user)

	return nil
}

// Providers lists the third party login providers enabled on the server
func (f *Flow) Providers(ctx context.Context) ([]types.Provider, error) {
	ctx, span := f.tracer.Start(ctx, "authentication.Flow.Providers")
	defer span.End()

	providers, err := f.client.AuthProvidersList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	return providers, nil
}

// IsUserError reports whether err came from local input validation, as
// opposed to the server or the network
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier) || errors.Is(err, ErrInvalidCode) || errors.Is(err, ErrInvalidStep)
}

// NewFlow returns a flow at the initial step. verifier may be nil, provider
// tokens are then forwarded unchecked and left to the server.
func NewFlow(client ClientInterface, verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Flow {
	f := new(Flow)

	f.client = client
	f.verifier = verifier
	f.validate = validator.New(validator.WithRequiredStructEnabled())
	f.step = StepInitial

	f.tracer = tracer
	f.monitor = monitor
	f.logger = logger

	return f
}
