/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"errors"

	"messenger/internal/entity"

	"gorm.io/gorm"
)

// Returned by Create when the email is already taken.
// The check rides on the email unique index, so two concurrent signups for the
// same email cannot both succeed.
var ErrDuplicateEmail = errors.New("email address already exists")

// This repository is used to manipulate the users in the system.
// Emails are matched exactly, case-sensitive.
type UserRepository interface {
	Create(user *entity.User) error // Inserts a user (and its secret) in the repository. Fails with ErrDuplicateEmail if the email is taken

	GetByEmail(email string) (*entity.User, error) // Retrieves the user with the given email, WITH its secret. Absence is not an error: (nil, nil)
	GetByID(id uint) (*entity.User, error)         // Retrieves the user with the given id. Absence is not an error: (nil, nil)
	GetAllExcept(id uint) ([]*entity.User, error)  // Retrieves all the users except the one with the given id
}

// Implementation of the repository using a SQLite DB
type SQLiteUserRepository struct {
	db *gorm.DB
}

func NewSQLiteUserRepository(db *gorm.DB) UserRepository {
	return &SQLiteUserRepository{db}
}

func (repo *SQLiteUserRepository) Create(user *entity.User) error {
	if err := repo.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (repo *SQLiteUserRepository) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := repo.db.Preload("Secret").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := repo.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) GetAllExcept(id uint) ([]*entity.User, error) {
	var users []*entity.User
	err := repo.db.Where("id <> ?", id).Order("id ASC").Find(&users).Error
	return users, err
}
