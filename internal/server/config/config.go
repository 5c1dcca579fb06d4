// Package config handles configuration for the PhotoHub server, including
// defaults, environment variables, and command-line flags.
package config

import (
	"time"

	"github.com/photohub/photohub/internal/server/auth"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - DatabaseURI / DatabaseName: MongoDB connection string and database name.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Rotating it
//     invalidates all outstanding tokens. Do not use test defaults in prod.
//   - TokenValidityDuration: session token and cookie lifetime.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint / S3PublicBaseURL: object storage
//     settings for presigned photo uploads.
type Config struct {
	EndpointAddrHTTP      string        `env:"ADDRESS"`
	DatabaseURI           string        `env:"MONGO_URI"`
	DatabaseName          string        `env:"MONGO_DATABASE"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY_DURATION"`
	S3RootUser            string        `env:"S3_ROOT_USER"`
	S3RootPassword        string        `env:"S3_ROOT_PASSWORD"`
	S3Bucket              string        `env:"S3_BUCKET"`
	S3Region              string        `env:"S3_REGION"`
	S3BaseEndpoint        string        `env:"S3_BASE_ENDPOINT"`
	S3PublicBaseURL       string        `env:"S3_PUBLIC_BASE_URL"`
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.DatabaseURI = "mongodb://localhost:27017"
	c.DatabaseName = "photohub"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = auth.TokenValidity
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "photos"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3PublicBaseURL = "http://127.0.0.1:9000/photos"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
