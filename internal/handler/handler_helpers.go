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

	"messenger/internal/view"
)

// Renders the page with name "name", falling back to the error page when the
// template itself fails
func renderPage(w http.ResponseWriter, renderer *view.PageRenderer, name string, data any) {
	if err := renderer.RenderTemplate(w, name, data); err != nil {
		renderServerError(w, renderer)
	}
}

// Renders the custom 500 page for unanticipated faults
func renderServerError(w http.ResponseWriter, renderer *view.PageRenderer) {
	w.WriteHeader(http.StatusInternalServerError)
	if err := renderer.RenderTemplate(w, "500.html", map[string]any{}); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
