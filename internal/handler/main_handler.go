/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"

	"messenger/internal/session"
	"messenger/internal/view"
)

// MainHandler serves the landing page and the error pages
type MainHandler struct {
	sessions *session.Store
	renderer *view.PageRenderer
}

func NewMainHandler(sessions *session.Store, renderer *view.PageRenderer) *MainHandler {
	return &MainHandler{sessions: sessions, renderer: renderer}
}

// Home shows the landing page. No authentication required
func (h *MainHandler) Home(w http.ResponseWriter, r *http.Request) {
	principal, err := h.sessions.Principal(r)
	if err != nil {
		renderServerError(w, h.renderer)
		return
	}
	renderPage(w, h.renderer, "index.html", map[string]any{
		"LoggedUser": principal,
	})
}

// NotFound shows a custom page for unknown routes
func (h *MainHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.RenderTemplate(w, "404.html", map[string]any{}); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}
