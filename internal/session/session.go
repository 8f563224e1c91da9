/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package session

import (
	"net/http"

	"messenger/internal/entity"
	"messenger/internal/repository"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "auth-session"
	userIDKey   = "user_id"
)

// Store resolves the authenticated principal from a request's cookie session
// and binds or clears it on login and logout. A session holds at most one
// user id; everything else about the user is reloaded from the repository so
// a stale cookie degrades to anonymous instead of resurrecting a ghost.
type Store struct {
	cookies *sessions.CookieStore
	users   repository.UserRepository
}

func NewStore(secret []byte, users repository.UserRepository) *Store {
	return &Store{
		cookies: sessions.NewCookieStore(secret),
		users:   users,
	}
}

// Principal retrieves the user bound to the request's session.
// Anonymous is a normal outcome: (nil, nil).
func (s *Store) Principal(r *http.Request) (*entity.User, error) {
	session, err := s.cookies.Get(r, sessionName)
	if err != nil {
		// A cookie that fails to decode is just an anonymous visitor.
		return nil, nil
	}
	id, ok := session.Values[userIDKey].(uint)
	if !ok {
		return nil, nil
	}
	return s.users.GetByID(id)
}

// Login binds the user's id to the session. A previously bound identity is
// replaced.
func (s *Store) Login(w http.ResponseWriter, r *http.Request, user *entity.User) error {
	session, _ := s.cookies.Get(r, sessionName)
	session.Values[userIDKey] = user.ID
	return session.Save(r, w)
}

// Logout clears the session's bound identity. Safe to call when anonymous.
func (s *Store) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.cookies.Get(r, sessionName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Flash appends a one-shot message shown on the next form render.
func (s *Store) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := s.cookies.Get(r, sessionName)
	session.AddFlash(message)
	session.Save(r, w)
}

// Flashes drains and returns the pending one-shot messages.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := s.cookies.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save(r, w)
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
