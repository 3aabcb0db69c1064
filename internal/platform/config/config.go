package config

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile        = ".env"
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 120 * time.Second
	defaultCartStorageDir = "data/cart"
	defaultCurrency       = "USD"
	defaultSessionTTL     = 24 * time.Hour
	defaultMaxUploadBytes = 32 << 20
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server   ServerConfig
	Locale   LocaleConfig
	Cart     CartConfig
	Payments PaymentsConfig
	Auth     AuthConfig
	Media    MediaConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LocaleConfig controls storefront localisation.
type LocaleConfig struct {
	Default string
}

// CartConfig locates the durable mirror behind the session cart store.
type CartConfig struct {
	StorageDir string
}

// PaymentsConfig collects payment provider settings. An empty Stripe key
// switches the payment surface to the simulated provider.
type PaymentsConfig struct {
	StripeAPIKey string
	Currency     string
}

// AuthConfig configures the mock session token issuer.
type AuthConfig struct {
	SigningSecret string
	SessionTTL    time.Duration
}

// MediaConfig bounds the media upload proxies.
type MediaConfig struct {
	MaxUploadBytes int64
}

// Option customises configuration loading.
type Option func(*loadOptions)

type loadOptions struct {
	envFile string
	environ map[string]string
}

// WithEnvFile overrides the default .env file location.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = strings.TrimSpace(path)
	}
}

// WithEnvironment overrides the process environment, primarily for tests.
func WithEnvironment(values map[string]string) Option {
	return func(o *loadOptions) {
		o.environ = values
	}
}

// InvalidValuesError reports configuration keys whose values could not be parsed.
type InvalidValuesError struct {
	Keys []string
}

// Error implements error.
func (e *InvalidValuesError) Error() string {
	keys := append([]string(nil), e.Keys...)
	sort.Strings(keys)
	return fmt.Sprintf("config: invalid values for %s", strings.Join(keys, ", "))
}

// Load reads configuration from an optional .env file overlaid with the
// process environment, applying defaults for any value left unset.
func Load(opts ...Option) (Config, error) {
	options := loadOptions{envFile: defaultEnvFile}
	for _, opt := range opts {
		opt(&options)
	}

	values := map[string]string{}
	if options.envFile != "" {
		fileValues, err := readEnvFile(options.envFile)
		if err != nil {
			return Config{}, err
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	if options.environ != nil {
		for k, v := range options.environ {
			values[k] = v
		}
	} else {
		for _, entry := range os.Environ() {
			if key, value, ok := strings.Cut(entry, "="); ok {
				values[key] = value
			}
		}
	}

	var invalid []string

	duration := func(key string, fallback time.Duration) time.Duration {
		raw := strings.TrimSpace(values[key])
		if raw == "" {
			return fallback
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return parsed
	}

	bytesValue := func(key string, fallback int64) int64 {
		raw := strings.TrimSpace(values[key])
		if raw == "" {
			return fallback
		}
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return parsed
	}

	stringValue := func(key, fallback string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringValue("PORT", defaultPort),
			ReadTimeout:  duration("SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: duration("SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  duration("SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Locale: LocaleConfig{
			Default: stringValue("DEFAULT_LOCALE", ""),
		},
		Cart: CartConfig{
			StorageDir: stringValue("CART_STORAGE_DIR", defaultCartStorageDir),
		},
		Payments: PaymentsConfig{
			StripeAPIKey: strings.TrimSpace(values["STRIPE_API_KEY"]),
			Currency:     strings.ToUpper(stringValue("PAYMENT_CURRENCY", defaultCurrency)),
		},
		Auth: AuthConfig{
			SigningSecret: strings.TrimSpace(values["AUTH_SIGNING_SECRET"]),
			SessionTTL:    duration("AUTH_SESSION_TTL", defaultSessionTTL),
		},
		Media: MediaConfig{
			MaxUploadBytes: bytesValue("MEDIA_MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		},
	}

	if len(invalid) > 0 {
		return Config{}, &InvalidValuesError{Keys: invalid}
	}
	return cfg, nil
}

// readEnvFile parses KEY=VALUE lines, ignoring blanks and # comments. A
// missing file is not an error; the environment alone is a valid source.
func readEnvFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	values := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if key != "" {
			values[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}
