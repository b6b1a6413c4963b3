// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/session"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// MaxAvatarSize is the largest profile picture accepted, 5 MB.
const MaxAvatarSize = 5 << 20

var avatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ProfileService changes the logged-in user's profile.
type ProfileService struct {
	api     adapter.ProfileAPI
	session SessionController
	logger  *logger.Logger
}

// NewProfileService returns a ProfileService.
func NewProfileService(api adapter.ProfileAPI, session SessionController, log *logger.Logger) *ProfileService {
	return &ProfileService{api: api, session: session, logger: log.WithComponent("profile")}
}

// UploadAvatarFile reads the picture at path and uploads it.
func (s *ProfileService) UploadAvatarFile(ctx context.Context, path string) (models.User, error) {
	if path == "" {
		return models.User{}, ErrNoFile
	}

	f, err := os.Open(path)
	if err != nil {
		return models.User{}, fmt.Errorf("open picture: %w", err)
	}
	defer f.Close()

	return s.UploadAvatar(ctx, filepath.Base(path), f)
}

// UploadAvatar checks the picture, uploads it and merges the returned
// avatar URL and user fields into the session user. The size limit and the
// allowed types are checked before anything is sent.
func (s *ProfileService) UploadAvatar(ctx context.Context, filename string, picture io.Reader) (models.User, error) {
	if !s.session.IsAuthenticated() {
		return models.User{}, ErrProfileUnavailable
	}
	if picture == nil {
		return models.User{}, ErrNoFile
	}

	data, err := io.ReadAll(io.LimitReader(picture, MaxAvatarSize+1))
	if err != nil {
		return models.User{}, fmt.Errorf("read picture: %w", err)
	}
	if len(data) == 0 {
		return models.User{}, ErrNoFile
	}
	if len(data) > MaxAvatarSize {
		return models.User{}, ErrFileTooLarge
	}
	if contentType := http.DetectContentType(data); !avatarTypes[contentType] {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidFileType, contentType)
	}

	resp, err := s.api.UploadAvatar(ctx, filename, bytes.NewReader(data))
	if err != nil {
		s.logger.Err(err).Str("func", "ProfileService.UploadAvatar").Msg("upload failed")
		return models.User{}, err
	}

	patch := models.UserPatch{}
	if resp.User != nil {
		patch = models.PatchFromUser(*resp.User)
	}
	patch.AvatarURL = &resp.AvatarURL

	if err = s.session.UpdateUserContext(ctx, patch); err != nil && !errors.Is(err, session.ErrNotPersisted) {
		return models.User{}, err
	}

	snap := s.session.Snapshot()
	if snap.User == nil {
		return models.User{}, ErrProfileUnavailable
	}
	s.logger.Info().Int64("user_id", snap.User.ID).Msg("profile picture updated")
	return *snap.User, nil
}

// UploadErrorMessage turns an UploadAvatar error into the text to show.
func UploadErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoFile):
		return app.MsgNoFileSelected
	case errors.Is(err, ErrFileTooLarge):
		return app.MsgFileTooLarge
	case errors.Is(err, ErrInvalidFileType):
		return app.MsgInvalidFileType
	case errors.Is(err, ErrProfileUnavailable):
		return app.MsgProfileGuest
	}
	return adapter.ErrorMessage(err, app.MsgUploadFailed)
}
