/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"log/slog"
	"time"

	"messenger/internal/entity"
	"messenger/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Service used for the user registration and login phases
type AuthService interface {
	Register(email, password string) (*entity.User, error) // Tries to create a new user in the system, returning it if successful. Does not log the user in
	Login(email, password string) (*entity.User, error)    // Tries to authenticate a user via its credentials, returning the user entity if successful
}

type authService struct {
	users  repository.UserRepository // Repository for users
	logger *slog.Logger
}

func NewAuthService(users repository.UserRepository, logger *slog.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

func (a *authService) Register(email, password string) (*entity.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password", ErrMissingField)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:     email,
		CreatedAt: time.Now(),
		Secret: entity.UserSecret{
			Hash: string(hash),
		},
	}
	// The store rejects a taken email atomically, there is no pre-check here.
	if err := a.users.Create(u); err != nil {
		return nil, err
	}

	a.logger.Info("user registered", "user_id", u.ID)
	return u, nil
}

func (a *authService) Login(email, password string) (*entity.User, error) {
	u, err := a.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password surface as the same failure, so the
	// login form cannot be used to probe which emails are registered.
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Secret.Hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	a.logger.Info("user logged in", "user_id", u.ID)
	return u, nil
}
