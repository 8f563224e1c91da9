package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"messenger/internal/config"
	"messenger/internal/entity"
	"messenger/internal/handler"
	"messenger/internal/middleware"
	"messenger/internal/repository"
	"messenger/internal/service"
	"messenger/internal/session"
	"messenger/internal/view"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var pages = []string{
	"index.html",
	"login.html",
	"signup.html",
	"messages.html",
	"send_message.html",
	"404.html",
	"500.html",
}

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// TranslateError turns the sqlite unique-index violation into
	// gorm.ErrDuplicatedKey, which the user repository relies on.
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("opening database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.UserSecret{}, &entity.Message{}); err != nil {
		logger.Error("migrating schema", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewSQLiteUserRepository(db)
	messageRepo := repository.NewSQLiteMessageRepository(db)

	sessionStore := session.NewStore([]byte(cfg.SessionSecret), userRepo)
	authService := service.NewAuthService(userRepo, logger)
	messageService := service.NewMessageService(messageRepo, userRepo, service.NewRecipientValidator(userRepo), logger)

	renderer := view.NewPageRenderer(cfg.TemplatesDir, "layout.html", pages)

	mainHandler := handler.NewMainHandler(sessionStore, renderer)
	authHandler := handler.NewAuthHandler(authService, sessionStore, renderer)
	messageHandler := handler.NewMessageHandler(messageService, sessionStore, renderer)

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

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: middleware.RequestLogger(logger, router),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.Addr, "env", string(cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutting down", "error", err)
	}
	logger.Info("shutting off...")
}
