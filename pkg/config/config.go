// Package config loads the server settings from the environment, reading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DevJWTSecret signs tokens when BANKIST_JWT_SECRET is unset. Never use it
// outside local development.
const DevJWTSecret = "my_secret_key"

type Config struct {
	Addr       string
	JWTSecret  []byte
	SessionTTL time.Duration
	AccessLog  string
	SeedFile   string
}

// Load reads .env from the working directory (if present) and then the
// environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an
// error; variables already set in the environment win over the file.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	cfg := &Config{
		Addr:      getenv("BANKIST_ADDR", ":8080"),
		AccessLog: getenv("BANKIST_ACCESS_LOG", "access_log.json"),
		SeedFile:  os.Getenv("BANKIST_SEED_FILE"),
	}

	ttl, err := time.ParseDuration(getenv("BANKIST_SESSION_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BANKIST_SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid BANKIST_SESSION_TTL: must be positive, got %s", ttl)
	}
	cfg.SessionTTL = ttl

	secret := os.Getenv("BANKIST_JWT_SECRET")
	if secret == "" {
		log.Println("WARNING: BANKIST_JWT_SECRET not set, using the development key")
		secret = DevJWTSecret
	}
	cfg.JWTSecret = []byte(secret)

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
