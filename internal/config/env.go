package config

import (
	"github.com/JaimeStill/parkease/pkg/database"
	"github.com/JaimeStill/parkease/pkg/logging"
	"github.com/JaimeStill/parkease/pkg/middleware"
	"github.com/JaimeStill/parkease/pkg/probe"
	"github.com/JaimeStill/parkease/pkg/session"
)

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
	Output: "LOGGING_OUTPUT",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CORS_ENABLED",
	Origins:          "CORS_ORIGINS",
	AllowedMethods:   "CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CORS_ALLOWED_HEADERS",
	AllowCredentials: "CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CORS_MAX_AGE",
}

var sessionEnv = &session.Env{
	Backend: "SESSION_BACKEND",
	Path:    "SESSION_PATH",
	Database: &database.Env{
		Host:            "SESSION_DB_HOST",
		Port:            "SESSION_DB_PORT",
		Name:            "SESSION_DB_NAME",
		User:            "SESSION_DB_USER",
		Password:        "SESSION_DB_PASSWORD",
		SSLMode:         "SESSION_DB_SSL_MODE",
		Path:            "SESSION_DB_PATH",
		MaxOpenConns:    "SESSION_DB_MAX_OPEN_CONNS",
		MaxIdleConns:    "SESSION_DB_MAX_IDLE_CONNS",
		ConnMaxLifetime: "SESSION_DB_CONN_MAX_LIFETIME",
		ConnTimeout:     "SESSION_DB_CONN_TIMEOUT",
	},
}

var probeEnv = &probe.Env{
	BaseURL:     "PROBE_BASE_URL",
	Token:       "PROBE_TOKEN",
	Key:         "PROBE_KEY",
	Timeout:     "PROBE_TIMEOUT",
	MaxBodySize: "PROBE_MAX_BODY_SIZE",
	Clear:       "PROBE_CLEAR",
}
