// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// ChatService holds one conversation with the AI assistant. Every request
// carries the whole conversation before the new message as history. Only
// authenticated users can chat.
type ChatService struct {
	api     adapter.InsightsAPI
	session SessionController
	logger  *logger.Logger
	now     func() time.Time

	mu       sync.Mutex
	messages []models.ChatMessage
	sending  bool
}

// NewChatService returns an empty conversation.
func NewChatService(api adapter.InsightsAPI, session SessionController, log *logger.Logger) *ChatService {
	return &ChatService{
		api:     api,
		session: session,
		logger:  log.WithComponent("chat"),
		now:     time.Now,
	}
}

// Available reports whether the current session may chat.
func (c *ChatService) Available() bool {
	return c.session.IsAuthenticated()
}

// Open starts the conversation with the assistant's greeting, once, and
// returns the messages so far.
func (c *ChatService) Open() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.greetLocked()
	return slices.Clone(c.messages)
}

// Messages returns the conversation so far.
func (c *ChatService) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.messages)
}

// Sending reports whether a message is waiting for its reply.
func (c *ChatService) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sending
}

// Reset forgets the conversation.
func (c *ChatService) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = nil
}

// Send appends text as the user's message and asks the assistant. The reply
// is appended and returned. When the request fails, a model message with the
// backend's reply text or a generic apology is appended instead, and the
// error is returned with it.
func (c *ChatService) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	if !c.Available() {
		return models.ChatMessage{}, ErrChatUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	c.mu.Lock()
	c.greetLocked()
	history := make([]models.ChatHistoryEntry, 0, len(c.messages))
	for _, m := range c.messages {
		history = append(history, models.ChatHistoryEntry{Role: m.Role, Parts: m.Parts})
	}
	c.messages = append(c.messages, models.NewChatMessage(models.ChatRoleUser, text, c.now().UnixMilli()))
	c.sending = true
	c.mu.Unlock()

	reply, err := c.api.Chat(ctx, models.ChatRequest{Message: text, History: history})
	if err != nil {
		c.logger.Err(err).Str("func", "ChatService.Send").Msg("chat request failed")
		reply = models.NewChatMessage(models.ChatRoleModel, failureReply(err), 0)
	}
	reply.Timestamp = c.now().UnixMilli()

	c.mu.Lock()
	c.messages = append(c.messages, reply)
	c.sending = false
	c.mu.Unlock()

	return reply, err
}

func (c *ChatService) greetLocked() {
	if len(c.messages) == 0 {
		c.messages = append(c.messages, models.NewChatMessage(models.ChatRoleModel, app.MsgChatGreeting, c.now().UnixMilli()))
	}
}

// failureReply extracts parts[0].text from an error body shaped like a
// chat message.
func failureReply(err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && len(apiErr.Body) > 0 {
		var body models.ChatMessage
		if json.Unmarshal(apiErr.Body, &body) == nil && len(body.Parts) > 0 {
			if t := strings.TrimSpace(body.Parts[0].Text); t != "" {
				return t
			}
		}
	}
	return app.MsgChatFailed
}
