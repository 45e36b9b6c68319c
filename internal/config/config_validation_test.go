// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "unknown deployment",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Deployment = "staging" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty base url",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BaseURL = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing session secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.Secret = "" },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "short session secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.Secret = "short" },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown session store",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.Store = "file" },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "redis store without address",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.Store = SessionStoreRedis },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "redis store with address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Session.Store = SessionStoreRedis
				cfg.Storage.Redis.Addr = "localhost:6379"
			},
		},
		{
			name:    "google id without secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.GoogleClientID = "id" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "prod without mail host",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.Host = "" },
			wantErr: ErrInvalidMailConfigs,
		},
		{
			name:    "prod without mail sender",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.From = "" },
			wantErr: ErrInvalidMailConfigs,
		},
		{
			name: "dev logs mail without a host",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.Deployment = DeploymentDev
				cfg.Mail = Mail{}
			},
		},
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
