// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaults returns the lowest-priority configuration layer. Everything
// except the token sign key has a usable default, so a development server
// starts with only APP_TOKEN_SIGN_KEY set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "seltzer-tracker",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 10,
			LogLevel:         "info",
			Version:          "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 30 * time.Second,
			CookieName:     "seltzer_session",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:seltzer.db?_foreign_keys=on",
			},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 10 * time.Second,
		},
	}
}
