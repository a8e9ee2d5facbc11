package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr    = "127.0.0.1:8000"
	defaultAppName = "pet-registry"
)

type Config struct {
	HTTP    HTTPConfig
	Log     LogConfig
	Swagger bool
}

type HTTPConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

// Load lee la configuración del entorno. Si existe un .env en el directorio
// de trabajo se carga antes; las variables ya definidas tienen prioridad.
//
// Variables:
//   - HTTP_ADDR (default 127.0.0.1:8000) o PORT (=> ":PORT")
//   - READ_TIMEOUT / WRITE_TIMEOUT (duraciones Go, default 5s / 10s)
//   - LOG_LEVEL=debug|info|warn|error, LOG_FORMAT=text|json, APP_NAME
//   - SWAGGER_ENABLED (default true)
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	readTimeout, err := getEnvAsDurationOrDefault("READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvAsDurationOrDefault("WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	swagger, err := getEnvAsBoolOrDefault("SWAGGER_ENABLED", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTP: HTTPConfig{
			Addr:         resolveAddr(),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Log: LogConfig{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: os.Getenv("LOG_FORMAT"),
			App:    getEnvOrDefault("APP_NAME", defaultAppName),
		},
		Swagger: swagger,
	}, nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func resolveAddr() string {
	if v := strings.TrimSpace(os.Getenv("HTTP_ADDR")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		return ":" + v
	}
	return defaultAddr
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
