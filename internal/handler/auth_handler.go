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

	"messenger/internal/repository"
	"messenger/internal/service"
	"messenger/internal/session"
	"messenger/internal/view"
)

// AuthHandler helps in managing user registration and authentication
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Store
	renderer    *view.PageRenderer
}

func NewAuthHandler(authService service.AuthService, sessions *session.Store, renderer *view.PageRenderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		renderer:    renderer,
	}
}

// Login handles the authentication phase
// On GET it shows the login form, unless a user is already logged in
// On POST it retrieves the form's input fields and tries to authenticate the user using the auth service
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		principal, err := h.sessions.Principal(r)
		if err != nil {
			renderServerError(w, h.renderer)
			return
		}
		if principal != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderPage(w, h.renderer, "login.html", map[string]any{
			"Flashes": h.sessions.Flashes(w, r),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.authService.Login(email, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// Deliberately vague: the message never says whether the email exists.
		h.sessions.Flash(w, r, "Please check your login details and try again...")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		renderServerError(w, h.renderer)
		return
	}

	if err := h.sessions.Login(w, r, user); err != nil {
		renderServerError(w, h.renderer)
		return
	}
	http.Redirect(w, r, "/messages", http.StatusSeeOther)
}

// Signup handles user registration
// On GET it shows the signup form, unless a user is already logged in
// On POST it creates the account. The new user is NOT logged in automatically
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		principal, err := h.sessions.Principal(r)
		if err != nil {
			renderServerError(w, h.renderer)
			return
		}
		if principal != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderPage(w, h.renderer, "signup.html", map[string]any{
			"Flashes": h.sessions.Flashes(w, r),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	_, err := h.authService.Register(email, password)
	switch {
	case errors.Is(err, service.ErrMissingField):
		h.sessions.Flash(w, r, err.Error())
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
	case errors.Is(err, repository.ErrDuplicateEmail):
		h.sessions.Flash(w, r, "Email address already exists...")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
	case err != nil:
		renderServerError(w, h.renderer)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout deletes the current user's session, effectively logging him out
// It is safe to call without an active session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		renderServerError(w, h.renderer)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
