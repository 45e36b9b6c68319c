// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const minSessionSecretLength = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A failure here is a
// deployment mistake and the caller is expected to abort.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Deployment {
	case DeploymentDev, DeploymentProd:
	default:
		return fmt.Errorf("%w: unknown deployment %q", ErrInvalidAppConfigs, cfg.App.Deployment)
	}

	if cfg.App.BaseURL == "" {
		return fmt.Errorf("%w: base url is required", ErrInvalidAppConfigs)
	}

	if cfg.App.ActivationTokenTTL <= 0 {
		return fmt.Errorf("%w: activation token ttl must be positive", ErrInvalidAppConfigs)
	}

	if len(cfg.Session.Secret) < minSessionSecretLength {
		return fmt.Errorf("%w: session secret must be at least %d characters", ErrInvalidSessionConfigs, minSessionSecretLength)
	}

	if cfg.Session.CookieName == "" || cfg.Session.MaxAge <= 0 {
		return fmt.Errorf("%w: cookie name and max age are required", ErrInvalidSessionConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Session.Store {
	case SessionStorePostgres, SessionStoreMemory:
	case SessionStoreRedis:
		if cfg.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: redis session store needs a redis address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown session store %q", ErrInvalidSessionConfigs, cfg.Session.Store)
	}

	if (cfg.Auth.GoogleClientID == "") != (cfg.Auth.GoogleClientSecret == "") {
		return fmt.Errorf("%w: google client id and secret must be set together", ErrInvalidAuthConfigs)
	}

	// only development may log mail instead of sending it
	if !cfg.IsDev() && (cfg.Mail.Host == "" || cfg.Mail.From == "") {
		return fmt.Errorf("%w: mail host and sender are required in %s", ErrInvalidMailConfigs, cfg.App.Deployment)
	}

	return nil
}
