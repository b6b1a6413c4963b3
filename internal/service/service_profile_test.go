// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/models"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestProfileService_UploadAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	sess := loggedInSession(t, models.Tokens{AccessToken: "a"})
	svc := NewProfileService(api, sess, logger.Nop())

	api.EXPECT().UploadAvatar(gomock.Any(), "me.png", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r io.Reader) (models.AvatarResponse, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, pngHeader, data)
			return models.AvatarResponse{
				AvatarURL: "https://cdn.example.com/7.png",
				User:      &models.User{ID: 7, Name: "Rasul K"},
			}, nil
		},
	)

	user, err := svc.UploadAvatar(context.Background(), "me.png", bytes.NewReader(pngHeader))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/7.png", user.AvatarURL)
	assert.Equal(t, "Rasul K", user.Name)
	assert.Equal(t, testUser.Email, user.Email)
	assert.Equal(t, user, *sess.Snapshot().User)
}

func TestProfileService_UploadAvatar_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
		wantMsg string
	}{
		{name: "empty", data: nil, wantErr: ErrNoFile, wantMsg: app.MsgNoFileSelected},
		{name: "too large", data: bytes.Repeat([]byte{0}, MaxAvatarSize+1), wantErr: ErrFileTooLarge, wantMsg: app.MsgFileTooLarge},
		{name: "not an image", data: []byte("just some text"), wantErr: ErrInvalidFileType, wantMsg: app.MsgInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no backend expectation: nothing may be uploaded
			svc := NewProfileService(mock.NewMockServerAdapter(ctrl), loggedInSession(t, models.Tokens{AccessToken: "a"}), logger.Nop())

			_, err := svc.UploadAvatar(context.Background(), "f", bytes.NewReader(tt.data))

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, UploadErrorMessage(err))
		})
	}
}

func TestProfileService_UploadAvatar_Guest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewProfileService(mock.NewMockServerAdapter(ctrl), guestSession(t), logger.Nop())

	_, err := svc.UploadAvatar(context.Background(), "me.png", bytes.NewReader(pngHeader))

	require.ErrorIs(t, err, ErrProfileUnavailable)
	assert.Equal(t, app.MsgProfileGuest, UploadErrorMessage(err))
}

func TestProfileService_UploadAvatar_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	sess := loggedInSession(t, models.Tokens{AccessToken: "a"})
	svc := NewProfileService(api, sess, logger.Nop())

	api.EXPECT().UploadAvatar(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AvatarResponse{}, &adapter.APIError{StatusCode: 500})

	_, err := svc.UploadAvatar(context.Background(), "me.png", bytes.NewReader(pngHeader))

	require.Error(t, err)
	assert.Equal(t, app.MsgUploadFailed, UploadErrorMessage(err))
	assert.Empty(t, sess.Snapshot().User.AvatarURL)
}

func TestProfileService_UploadAvatarFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewProfileService(api, loggedInSession(t, models.Tokens{AccessToken: "a"}), logger.Nop())

	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	api.EXPECT().UploadAvatar(gomock.Any(), "avatar.png", gomock.Any()).
		Return(models.AvatarResponse{AvatarURL: "https://cdn.example.com/a.png"}, nil)

	user, err := svc.UploadAvatarFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", user.AvatarURL)

	_, err = svc.UploadAvatarFile(context.Background(), "")
	require.ErrorIs(t, err, ErrNoFile)

	_, err = svc.UploadAvatarFile(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "open picture"))
}
