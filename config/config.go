package config

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultPort                         = "8080"
	DefaultBcryptCost                   = 10
	DefaultTempPasswordLength           = 12
	DefaultRevokeTokensOnPasswordChange = false
)

type Config struct {
	Env                          string
	Port                         string
	DBURL                        string
	BcryptCost                   int
	TempPasswordLength           int
	RevokeTokensOnPasswordChange bool
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then lets
// real environment variables override file values. Missing required keys are
// fatal at startup.
func Load() *Config {
	env := getEnv("ENV", "development")

	fileVals := loadEnvFile(envFileFor(env))
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVals[key]
	}

	return &Config{
		Env:                          env,
		Port:                         orDefault(lookup("PORT"), DefaultPort),
		DBURL:                        mustGet(lookup, "DB_URL"),
		BcryptCost:                   asInt(lookup("BCRYPT_COST"), "BCRYPT_COST", DefaultBcryptCost),
		TempPasswordLength:           asInt(lookup("TEMP_PASSWORD_LENGTH"), "TEMP_PASSWORD_LENGTH", DefaultTempPasswordLength),
		RevokeTokensOnPasswordChange: asBool(lookup("REVOKE_TOKENS_ON_PASSWORD_CHANGE"), DefaultRevokeTokensOnPasswordChange),
	}
}

func envFileFor(env string) string {
	if env == "production" {
		return filepath.Join("config", ".env.prod")
	}
	return filepath.Join("config", ".env.dev")
}

// loadEnvFile parses simple KEY=VALUE lines. A missing file is not an error;
// everything can come from the real environment.
func loadEnvFile(path string) map[string]string {
	vals := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		return vals
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		vals[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return vals
}

func mustGet(lookup func(string) string, key string) string {
	if v := lookup(key); v != "" {
		return v
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func orDefault(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}

func asInt(val, key string, fallback int) int {
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return n
}

func asBool(val string, fallback bool) bool {
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
