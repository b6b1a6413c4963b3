// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Recommendation is the body returned by GET /ai/recommendations.
type Recommendation struct {
	Message string   `json:"message"`
	Tips    []string `json:"tips"`
}

// Validate requires at least a message or one tip.
func (r Recommendation) Validate() error {
	if r.Message == "" && len(r.Tips) == 0 {
		return fmt.Errorf("%w: message", ErrMissingField)
	}
	return nil
}

// Text renders the recommendation as plain text, one tip per line.
func (r Recommendation) Text() string {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, tip := range r.Tips {
		b.WriteString("\n- ")
		b.WriteString(tip)
	}
	return strings.TrimSpace(b.String())
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// MessagePart is one text fragment of a chat message.
type MessagePart struct {
	Text string `json:"text"`
}

// ChatMessage is a single turn of the AI chat.
type ChatMessage struct {
	Role      ChatRole      `json:"role"`
	Parts     []MessagePart `json:"parts"`
	Timestamp int64         `json:"timestamp,omitempty"`
}

// NewChatMessage builds a single-part message.
func NewChatMessage(role ChatRole, text string, timestamp int64) ChatMessage {
	return ChatMessage{Role: role, Parts: []MessagePart{{Text: text}}, Timestamp: timestamp}
}

// Text joins all parts of the message.
func (m ChatMessage) Text() string {
	texts := make([]string, 0, len(m.Parts))
	for _, p := range m.Parts {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n")
}

// Validate requires a role and some text.
func (m ChatMessage) Validate() error {
	if m.Role == "" {
		return fmt.Errorf("%w: role", ErrMissingField)
	}
	if strings.TrimSpace(m.Text()) == "" {
		return fmt.Errorf("%w: parts", ErrMissingField)
	}
	return nil
}

// ChatHistoryEntry is a chat message as sent back to the backend; the
// timestamp is a client-side detail and is not transmitted.
type ChatHistoryEntry struct {
	Role  ChatRole      `json:"role"`
	Parts []MessagePart `json:"parts"`
}

// ChatRequest is the body of POST /ai/chat.
type ChatRequest struct {
	Message string             `json:"message"`
	History []ChatHistoryEntry `json:"history"`
}
