package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Deployment         string   `json:"deployment"`
		BaseURL            string   `json:"base_url"`
		ActivationTokenTTL Duration `json:"activation_token_ttl"`
		NotificationEmail  string   `json:"notification_email"`
		NotifyTimeout      Duration `json:"notify_timeout"`
		SentryDSN          string   `json:"sentry_dsn"`
	} `json:"app,omitempty"`

	Auth struct {
		GoogleClientID     string   `json:"google_client_id"`
		GoogleClientSecret string   `json:"google_client_secret"`
		GoogleRedirectURL  string   `json:"google_redirect_url"`
		StateTTL           Duration `json:"state_ttl"`
		SignInLimit        int      `json:"signin_limit"`
		SignUpLimit        int      `json:"signup_limit"`
		RateLimitWindow    Duration `json:"rate_limit_window"`
	} `json:"auth,omitempty"`

	Session struct {
		Secret        string   `json:"secret"`
		CookieName    string   `json:"cookie_name"`
		MaxAge        Duration `json:"max_age"`
		Store         string   `json:"store"`
		PruneInterval Duration `json:"prune_interval"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Mail struct {
		Host     string   `json:"host"`
		Port     int      `json:"port"`
		User     string   `json:"user"`
		Password string   `json:"password"`
		From     string   `json:"from"`
		Timeout  Duration `json:"timeout"`
	} `json:"mail,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Deployment:         jsonCfg.App.Deployment,
			BaseURL:            jsonCfg.App.BaseURL,
			ActivationTokenTTL: time.Duration(jsonCfg.App.ActivationTokenTTL),
			NotificationEmail:  jsonCfg.App.NotificationEmail,
			NotifyTimeout:      time.Duration(jsonCfg.App.NotifyTimeout),
			SentryDSN:          jsonCfg.App.SentryDSN,
		},
		Auth: Auth{
			GoogleClientID:     jsonCfg.Auth.GoogleClientID,
			GoogleClientSecret: jsonCfg.Auth.GoogleClientSecret,
			GoogleRedirectURL:  jsonCfg.Auth.GoogleRedirectURL,
			StateTTL:           time.Duration(jsonCfg.Auth.StateTTL),
			SignInLimit:        jsonCfg.Auth.SignInLimit,
			SignUpLimit:        jsonCfg.Auth.SignUpLimit,
			RateLimitWindow:    time.Duration(jsonCfg.Auth.RateLimitWindow),
		},
		Session: Session{
			Secret:        jsonCfg.Session.Secret,
			CookieName:    jsonCfg.Session.CookieName,
			MaxAge:        time.Duration(jsonCfg.Session.MaxAge),
			Store:         jsonCfg.Session.Store,
			PruneInterval: time.Duration(jsonCfg.Session.PruneInterval),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Mail: Mail{
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			User:     jsonCfg.Mail.User,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
			Timeout:  time.Duration(jsonCfg.Mail.Timeout),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
