/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import "errors"

// Expected, recoverable failure kinds. Callers match them with errors.Is and
// redisplay the relevant form; anything else is an unanticipated fault that
// must reach the boundary untouched.
//
// ErrInvalidCredentials never distinguishes an unknown email from a wrong
// password, and ErrInvalidRecipient never distinguishes a malformed id from a
// nonexistent one. Wrapping may add a display detail, never a new kind.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRecipient   = errors.New("invalid recipient")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
