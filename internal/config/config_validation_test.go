// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "valid postgres", mutate: func(cfg *StructuredConfig) {
			cfg.Storage.DB.Driver = DriverPostgres
			cfg.Storage.DB.DSN = "postgres://localhost/seltzer"
		}},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "missing address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "missing cookie name", mutate: func(cfg *StructuredConfig) { cfg.Server.CookieName = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_IsAdmin(t *testing.T) {
	app := App{AdminUsernames: []string{"alice", "bob"}}

	assert.True(t, app.IsAdmin("alice"))
	assert.True(t, app.IsAdmin("bob"))
	assert.False(t, app.IsAdmin("Alice"))
	assert.False(t, app.IsAdmin(""))
	assert.False(t, App{}.IsAdmin("alice"))
}
