// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account record returned by the backend on login and
// registration. It is persisted locally next to the session tokens.
type User struct {
	// ID is the backend-assigned identifier of the account.
	ID int64 `json:"id"`

	// Username is the unique login handle chosen at registration.
	Username string `json:"username"`

	// Email is the contact address of the account.
	Email string `json:"email"`

	// Name is the display name shown in the profile screen.
	Name string `json:"name"`

	// AvatarURL points to the uploaded profile picture, if any.
	AvatarURL string `json:"avatar_url,omitempty"`
}

// IsZero reports whether u carries no identity at all.
func (u User) IsZero() bool {
	return u.ID == 0 && u.Username == "" && u.Email == ""
}

// UserPatch describes a partial update of a [User]. Nil fields are left
// untouched by [User.Merge].
type UserPatch struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Name == nil && p.AvatarURL == nil
}

// Merge returns a copy of u with every non-nil field of patch applied.
func (u User) Merge(patch UserPatch) User {
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		u.AvatarURL = *patch.AvatarURL
	}
	return u
}

// PatchFromUser builds a patch that overwrites every non-empty field of src.
// Empty strings in src are treated as "not provided".
func PatchFromUser(src User) UserPatch {
	var p UserPatch
	if src.Username != "" {
		p.Username = &src.Username
	}
	if src.Email != "" {
		p.Email = &src.Email
	}
	if src.Name != "" {
		p.Name = &src.Name
	}
	if src.AvatarURL != "" {
		p.AvatarURL = &src.AvatarURL
	}
	return p
}
