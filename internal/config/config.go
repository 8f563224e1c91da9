/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package config reads the runtime settings from the environment, with
// development defaults. APP_ENV selects between the named environments the
// way the original deployment distinguished development, testing and
// production databases.
package config

import (
	"os"
	"path/filepath"
)

type Env string

const (
	EnvDevelopment Env = "development"
	EnvTesting     Env = "testing"
	EnvProduction  Env = "production"
)

type Config struct {
	Env           Env    // One of development, testing, production
	Addr          string // Bind address of the HTTP server
	DatabasePath  string // Path of the SQLite database file
	SessionSecret string // Key used to authenticate session cookies
	TemplatesDir  string // Directory holding the HTML templates
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads all env vars and builds the config.
// The testing environment keeps its database in the OS temp directory so runs
// never touch a development database.
func Load() *Config {
	env := Env(getEnv("APP_ENV", string(EnvDevelopment)))

	defaultDB := "messenger.db"
	if env == EnvTesting {
		defaultDB = filepath.Join(os.TempDir(), "messenger_test.db")
	}

	return &Config{
		Env:           env,
		Addr:          getEnv("APP_ADDR", ":8080"),
		DatabasePath:  getEnv("DATABASE_PATH", defaultDB),
		SessionSecret: getEnv("SESSION_SECRET", "messenger-dev-secret"),
		TemplatesDir:  getEnv("TEMPLATES_DIR", "web/templates"),
	}
}
