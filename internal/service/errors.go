// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrChatUnavailable is returned by chat calls outside an authenticated
	// session.
	ErrChatUnavailable = errors.New("chat requires an authenticated session")

	// ErrEmptyMessage is returned when a chat message has no text.
	ErrEmptyMessage = errors.New("chat message is empty")

	// ErrProfileUnavailable is returned by profile changes outside an
	// authenticated session.
	ErrProfileUnavailable = errors.New("profile changes require an authenticated session")

	// ErrNoFile is returned when no picture was given.
	ErrNoFile = errors.New("no file selected")

	// ErrFileTooLarge is returned for pictures above MaxAvatarSize.
	ErrFileTooLarge = errors.New("file is too large")

	// ErrInvalidFileType is returned for pictures that are not JPEG, PNG, GIF
	// or WEBP.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrNoRefreshToken is returned when a refresh is needed but the session
	// has no refresh token.
	ErrNoRefreshToken = errors.New("session has no refresh token")
)
