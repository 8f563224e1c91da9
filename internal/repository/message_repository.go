/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"time"

	"messenger/internal/entity"

	"gorm.io/gorm"
)

// This repository is used to manipulate the messages in the system.
// Messages are only ever created and read, never updated or deleted.
type MessageRepository interface {
	Create(message *entity.Message) error // Inserts a message, assigning its id and timestamp. Author and receiver ids are assumed already validated by the caller

	GetReceivedBy(receiverID uint) ([]*entity.Message, error) // Retrieves all the messages received by the given user, newest first, WITH their author
}

// Implementation of the repository using a SQLite DB
type SQLiteMessageRepository struct {
	db *gorm.DB
}

func NewSQLiteMessageRepository(db *gorm.DB) MessageRepository {
	return &SQLiteMessageRepository{db}
}

func (repo *SQLiteMessageRepository) Create(message *entity.Message) error {
	message.Timestamp = time.Now()
	return repo.db.Create(message).Error
}

func (repo *SQLiteMessageRepository) GetReceivedBy(receiverID uint) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := repo.db.Preload("Author").
		Where("receiver_id = ?", receiverID).
		Order("timestamp DESC, id DESC"). // id breaks ties for messages stored in the same instant
		Find(&messages).Error
	return messages, err
}
