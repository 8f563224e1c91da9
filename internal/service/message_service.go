/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"log/slog"

	"messenger/internal/entity"
	"messenger/internal/repository"
)

// Service used for the inbox and for sending private messages.
// The principal is an explicit parameter on every operation: nil means
// anonymous, and every operation fails with ErrNotAuthenticated for it.
type MessageService interface {
	Inbox(principal *entity.User) ([]*entity.Message, error)      // Retrieves the messages received by the principal, newest first, with their author
	Recipients(principal *entity.User) ([]*entity.User, error)    // Retrieves the users the principal can write to (everyone but itself)
	Send(principal *entity.User, rawRecipient, title, body string) (*entity.Message, error) // Validates the recipient and stores a new message authored by the principal
}

type messageService struct {
	messages  repository.MessageRepository // Repository for messages
	users     repository.UserRepository    // Repository for users
	validator *RecipientValidator          // Confirms raw recipient ids
	logger    *slog.Logger
}

func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, validator *RecipientValidator, logger *slog.Logger) MessageService {
	return &messageService{
		messages:  messages,
		users:     users,
		validator: validator,
		logger:    logger,
	}
}

func (m *messageService) Inbox(principal *entity.User) ([]*entity.Message, error) {
	if principal == nil {
		return nil, ErrNotAuthenticated
	}
	return m.messages.GetReceivedBy(principal.ID)
}

func (m *messageService) Recipients(principal *entity.User) ([]*entity.User, error) {
	if principal == nil {
		return nil, ErrNotAuthenticated
	}
	return m.users.GetAllExcept(principal.ID)
}

func (m *messageService) Send(principal *entity.User, rawRecipient, title, body string) (*entity.Message, error) {
	if principal == nil {
		return nil, ErrNotAuthenticated
	}

	receiverID, err := m.validator.Resolve(rawRecipient)
	if err != nil {
		return nil, err
	}

	// The author is the session's principal and needs no extra validation.
	msg := &entity.Message{
		Title:      title,
		Body:       body,
		AuthorID:   principal.ID,
		ReceiverID: receiverID,
	}
	if err := m.messages.Create(msg); err != nil {
		return nil, err
	}

	m.logger.Info("message sent", "message_id", msg.ID, "author_id", msg.AuthorID, "receiver_id", msg.ReceiverID)
	return msg, nil
}
