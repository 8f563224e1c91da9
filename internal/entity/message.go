/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// Represents a private message sent between two users.
// Messages are immutable once stored; title and body may be empty.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`           // Unique identifier, assigned by the store
	Title     string    `gorm:"type:text" json:"title"`         // Title of the message
	Body      string    `gorm:"type:text" json:"body"`          // Actual content of the message
	Timestamp time.Time `gorm:"not null;index" json:"sent-at"`  // Time of insertion, assigned by the store

	AuthorID   uint `gorm:"not null;index" json:"author"`   // ID of the user that sent the message
	ReceiverID uint `gorm:"not null;index" json:"receiver"` // ID of the user that received it

	Author *User `gorm:"foreignKey:AuthorID;references:ID" json:"author-user,omitempty"` // Sender identity, loaded for inbox display
}
