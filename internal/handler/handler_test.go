/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"messenger/internal/entity"
	"messenger/internal/repository"
	"messenger/internal/service"
	"messenger/internal/session"
	"messenger/internal/view"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testPages = []string{
	"index.html",
	"login.html",
	"signup.html",
	"messages.html",
	"send_message.html",
	"404.html",
	"500.html",
}

type testApp struct {
	router  *mux.Router
	auth    service.AuthService
	cookies []*http.Cookie // session state carried between requests
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.UserSecret{}, &entity.Message{}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := repository.NewSQLiteUserRepository(db)
	messages := repository.NewSQLiteMessageRepository(db)

	sessions := session.NewStore([]byte("test-secret"), users)
	authService := service.NewAuthService(users, logger)
	messageService := service.NewMessageService(messages, users, service.NewRecipientValidator(users), logger)

	renderer := view.NewPageRenderer(filepath.Join("..", "..", "web", "templates"), "layout.html", testPages)

	mainHandler := NewMainHandler(sessions, renderer)
	authHandler := NewAuthHandler(authService, sessions, renderer)
	messageHandler := NewMessageHandler(messageService, sessions, renderer)

	router := mux.NewRouter()
	router.HandleFunc("/", mainHandler.Home).Methods(http.MethodGet)
	router.HandleFunc("/home", mainHandler.Home).Methods(http.MethodGet)
	router.HandleFunc("/login", authHandler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)
	router.HandleFunc("/messages", messageHandler.Inbox).Methods(http.MethodGet)
	router.HandleFunc("/messages/send", messageHandler.SendForm).Methods(http.MethodGet)
	router.HandleFunc("/messages/send", messageHandler.Send).Methods(http.MethodPost)
	router.NotFoundHandler = http.HandlerFunc(mainHandler.NotFound)

	return &testApp{router: router, auth: authService}
}

// get performs a GET carrying the app's accumulated session cookies
func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range a.cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, r)
	a.keepCookies(w)
	return w
}

// postForm performs a form POST carrying the app's accumulated session cookies
func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range a.cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, r)
	a.keepCookies(w)
	return w
}

func (a *testApp) keepCookies(w *httptest.ResponseRecorder) {
	if set := w.Result().Cookies(); len(set) > 0 {
		a.cookies = set
	}
}

func (a *testApp) signup(t *testing.T, email, password string) {
	t.Helper()
	w := a.postForm(t, "/signup", url.Values{"email": {email}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func (a *testApp) login(t *testing.T, email, password string) {
	t.Helper()
	w := a.postForm(t, "/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/messages", w.Header().Get("Location"))
}
