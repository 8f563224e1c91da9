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
	"strconv"
	"strings"

	"messenger/internal/repository"
)

// RecipientValidator turns a raw, untrusted "send to" value into the id of an
// existing user. Malformed input and a well-formed id that matches nobody both
// fail with ErrInvalidRecipient: the caller's recourse is the same either way,
// and a distinct failure would let a sender probe which ids exist. Only the
// wrapped display detail differs.
type RecipientValidator struct {
	users repository.UserRepository
}

func NewRecipientValidator(users repository.UserRepository) *RecipientValidator {
	return &RecipientValidator{users: users}
}

// Resolve parses raw as a user id and confirms that user exists.
// Surrounding whitespace is tolerated; negative numbers count as parse
// failures and are never looked up.
func (v *RecipientValidator) Resolve(raw string) (uint, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: the user id is not valid", ErrInvalidRecipient)
	}

	user, err := v.users.GetByID(uint(id))
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, fmt.Errorf("%w: the user doesn't exist", ErrInvalidRecipient)
	}
	return user.ID, nil
}
