// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profile

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/go-playground/validator/v10"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/state"
	"github.com/canonical/tenant-console/pkg/upload"
)

type nameInput struct {
	FirstName string `validate:"max=30"`
	LastName  string `validate:"max=30"`
}

// Service edits the signed in user's own account. Every successful write is
// reflected in the session's user store.
type Service struct {
	client   ClientInterface
	session  *state.Session
	gate     GateInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	client ClientInterface,
	session *state.Session,
	gate GateInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		client:   client,
		session:  session,
		gate:     gate,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) Me(ctx context.Context) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "profile.Service.Me")
	defer span.End()

	user, err := s.client.UserMeRetrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}

	s.session.Users.SetUser(user)

	u, _ := s.session.Users.User()
	return u, nil
}

// UpdateName saves first and last name. The stored user keeps its profile and
// gets its display name derived again.
func (s *Service) UpdateName(ctx context.Context, firstName, lastName string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "profile.Service.UpdateName")
	defer span.End()

	in := nameInput{FirstName: strings.TrimSpace(firstName), LastName: strings.TrimSpace(lastName)}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	updated, err := s.client.UserMePartialUpdate(
		ctx,
		httpclient.PatchedUserRequest{FirstName: &in.FirstName, LastName: &in.LastName},
	)
	if err != nil {
		s.logger.Errorf("failed to update name: %v", err)
		return nil, fmt.Errorf("failed to update name: %w", err)
	}

	user, ok := s.session.Users.User()
	if !ok {
		user = updated
	}

	user.FirstName = updated.FirstName
	user.LastName = updated.LastName
	user.FullName = nil

	s.session.Users.SetUser(user)

	u, _ := s.session.Users.User()
	return u, nil
}

// UploadAvatar gates the file, crops it when an area is given, and stores
// the URL the server returns. Gate errors are returned unwrapped.
func (s *Service) UploadAvatar(ctx context.Context, file types.File, crop *image.Rectangle) (*string, error) {
	ctx, span := s.tracer.Start(ctx, "profile.Service.UploadAvatar")
	defer span.End()

	if err := s.gate.Validate(file); err != nil {
		return nil, err
	}

	if crop != nil {
		cropped, err := upload.Crop(file, *crop)
		if err != nil {
			return nil, err
		}

		if err := s.gate.Validate(cropped); err != nil {
			return nil, err
		}

		file = cropped
	}

	profile, err := s.client.ProfilePartialUpdate(ctx, &file)
	if err != nil {
		s.logger.Errorf("failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	s.session.Users.UpdateAvatar(profile.Avatar)

	return profile.Avatar, nil
}

func (s *Service) RemoveAvatar(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "profile.Service.RemoveAvatar")
	defer span.End()

	profile, err := s.client.ProfilePartialUpdate(ctx, nil)
	if err != nil {
		s.logger.Errorf("failed to remove avatar: %v", err)
		return fmt.Errorf("failed to remove avatar: %w", err)
	}

	s.session.Users.UpdateAvatar(profile.Avatar)

	return nil
}
