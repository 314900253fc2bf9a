package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	SecretKey      []byte
	BackendBaseURL string
	Port           string
	BackendTimeout time.Duration
	SessionTTL     time.Duration
)

const (
	defaultPort           = ":4000"
	defaultBackendTimeout = 15 * time.Second
	defaultSessionTTL     = 12 * time.Hour
)

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("SESSION_SECRET_KEY")
	if secret == "" {
		logrus.Fatal("session secret key not set")
	}
	SecretKey = []byte(secret)

	BackendBaseURL = os.Getenv("BACKEND_BASE_URL")
	if BackendBaseURL == "" {
		logrus.Fatal("backend base URL not set")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = defaultPort
	} else if Port[0] != ':' {
		Port = ":" + Port
	}

	BackendTimeout = durationEnv("BACKEND_TIMEOUT", defaultBackendTimeout)
	SessionTTL = durationEnv("SESSION_TTL", defaultSessionTTL)
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logrus.Warnf("invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
