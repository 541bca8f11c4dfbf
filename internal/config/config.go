// Package config provides the configuration structures and the loader
// used by the inspira service.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime settings of the service.
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	ClientOrigin            string `yaml:"client_origin" env:"CLIENT_ORIGIN" env-default:"http://localhost:3000"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
	Session                 `yaml:"session"`
	ArtifactStore           `yaml:"artifact_store"`
}

// HTTPServer holds the listener settings.
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":5000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Session holds the session token and cookie settings.
type Session struct {
	Secret        string        `yaml:"secret" env:"SESSION_SECRET" env-required:"true"`
	TokenTTL      time.Duration `yaml:"token_ttl" env:"SESSION_TOKEN_TTL" env-default:"168h"`
	CookieName    string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"token"`
	SecureCookies bool          `yaml:"secure_cookies" env:"SESSION_SECURE_COOKIES" env-default:"false"`
}

// ArtifactStore holds the S3-compatible object storage settings.
// The store is optional: when AccessKey or Bucket is empty image
// uploads are disabled and records are created without an image.
type ArtifactStore struct {
	Endpoint      string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region        string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Bucket        string `yaml:"bucket" env:"S3_BUCKET"`
	AccessKey     string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// Enabled reports whether the artifact store is configured.
func (a ArtifactStore) Enabled() bool {
	return a.Bucket != "" && a.AccessKey != "" && a.SecretKey != ""
}

// MustLoad loads the config from the file pointed to by CONFIG_PATH,
// applying environment overrides. Exits the process on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
