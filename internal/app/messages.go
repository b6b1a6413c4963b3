// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// finance tracker services and the terminal UI.
//
// Msg* constants are fallbacks: a failure that carries a backend message
// shows that message instead. Keeping the wording in one place keeps the
// screens consistent.
package app

const (
	// MsgRegistrationFailed is shown when registration fails without a
	// backend message.
	MsgRegistrationFailed = "Registration failed. Please try again."

	// MsgLoginFailed is shown when login fails without a backend message.
	MsgLoginFailed = "Login failed. Please try again."

	// MsgLoginMissingData is shown when the login answer lacks the access
	// token or the user record.
	MsgLoginMissingData = "Login response did not include token or user data."

	// MsgPasswordTooShort is shown when a registration password is shorter
	// than MinPasswordLength.
	MsgPasswordTooShort = "Password must be at least 6 characters long."

	// MsgRequiredFields is shown when a registration form has empty fields.
	MsgRequiredFields = "Please fill in all fields."
)

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 6

const (
	MsgFetchIncomes           = "Failed to fetch incomes"
	MsgAddIncome              = "Failed to add income"
	MsgUpdateIncome           = "Failed to update income"
	MsgDeleteIncome           = "Failed to delete income"
	MsgFetchIncomeCategories  = "Failed to fetch income categories"
	MsgFetchOutcomes          = "Failed to fetch outcomes"
	MsgAddOutcome             = "Failed to add outcome"
	MsgUpdateOutcome          = "Failed to update outcome"
	MsgDeleteOutcome          = "Failed to delete outcome"
	MsgFetchExpenseCategories = "Failed to fetch expense categories"
	MsgFetchDashboard         = "Failed to fetch dashboard summary"
	MsgFetchRecommendations   = "Failed to fetch AI recommendations"
)

const (
	// MsgChatGreeting opens every chat.
	MsgChatGreeting = "Halo! Saya Dompet Juara AI. Ada yang bisa saya bantu terkait keuangan Anda?"

	// MsgChatFailed is the model reply appended when a chat request fails
	// without a backend reply.
	MsgChatFailed = "Sorry, something went wrong. Please try again later."

	// MsgChatUnavailable is shown to guests and anonymous users.
	MsgChatUnavailable = "Please login to chat with the assistant."
)

const (
	MsgNoFileSelected  = "Please select a file first."
	MsgFileTooLarge    = "File is too large. Max 5MB allowed."
	MsgInvalidFileType = "Invalid file type. Only JPG, PNG, GIF, WEBP are allowed."
	MsgUploadFailed    = "Failed to upload profile picture."
	MsgProfileGuest    = "Guest mode: Operation not allowed."
)
