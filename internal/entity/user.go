/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A registered user of the system.
// The email is the login handle and is matched exactly, case-sensitive, with no normalization.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`              // Unique identifier, assigned by the store
	Email     string    `gorm:"not null;uniqueIndex" json:"email"` // Login handle, unique across the system
	CreatedAt time.Time `gorm:"not null" json:"created-at"`        // Time of registration

	Secret UserSecret `gorm:"foreignKey:UserID;references:ID" json:"-"` // Hashed password, kept in its own table
}
