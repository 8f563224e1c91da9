/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"errors"
	"net/http"

	"messenger/internal/service"
	"messenger/internal/session"
	"messenger/internal/view"
)

// MessageHandler is used to handle all message-related routes:
// the inbox, the send form and the actual sending
type MessageHandler struct {
	messageService service.MessageService
	sessions       *session.Store
	renderer       *view.PageRenderer
}

func NewMessageHandler(messageService service.MessageService, sessions *session.Store, renderer *view.PageRenderer) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		sessions:       sessions,
		renderer:       renderer,
	}
}

// Inbox shows the messages received by the logged in user, newest first
func (m *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	principal, err := m.sessions.Principal(r)
	if err != nil {
		renderServerError(w, m.renderer)
		return
	}

	received, err := m.messageService.Inbox(principal)
	if errors.Is(err, service.ErrNotAuthenticated) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		renderServerError(w, m.renderer)
		return
	}

	renderPage(w, m.renderer, "messages.html", map[string]any{
		"LoggedUser":       principal,
		"ReceivedMessages": received,
	})
}

// SendForm shows the form used to write a message, with the candidate recipients
func (m *MessageHandler) SendForm(w http.ResponseWriter, r *http.Request) {
	principal, err := m.sessions.Principal(r)
	if err != nil {
		renderServerError(w, m.renderer)
		return
	}

	users, err := m.messageService.Recipients(principal)
	if errors.Is(err, service.ErrNotAuthenticated) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		renderServerError(w, m.renderer)
		return
	}

	renderPage(w, m.renderer, "send_message.html", map[string]any{
		"LoggedUser": principal,
		"Users":      users,
		"Flashes":    m.sessions.Flashes(w, r),
	})
}

// Send stores a new message for the recipient given in the form field "to"
// A rejected recipient redisplays the send form; nothing is written
func (m *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	principal, err := m.sessions.Principal(r)
	if err != nil {
		renderServerError(w, m.renderer)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	_, err = m.messageService.Send(principal, r.FormValue("to"), r.FormValue("title"), r.FormValue("body"))
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, service.ErrInvalidRecipient):
		m.sessions.Flash(w, r, err.Error())
		http.Redirect(w, r, "/messages/send", http.StatusSeeOther)
	case err != nil:
		renderServerError(w, m.renderer)
	default:
		http.Redirect(w, r, "/messages", http.StatusSeeOther)
	}
}
