package config

import (
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode"

	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultPort               = 3000
	defaultMaxRequestBodySize = "100KB"

	// StorageDriverPostgres keeps identities and tickets in PostgreSQL through gorm.
	StorageDriverPostgres = "postgres"
	// StorageDriverMemory keeps everything in process memory; for local runs and tests.
	StorageDriverMemory = "memory"

	// Legacy variable names read by earlier deployments of the service.
	legacySecretEnv = "JWT_SECRET"
	legacyPortEnv   = "PORT"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// TrustedProxies lists the CIDRs whose X-Forwarded-For is believed.
		// Empty means the client IP is always the TCP peer.
		TrustedProxies     []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// RateLimit guards the credential endpoints per client IP
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
}

// SecretKeyConfig holds token signing material.
type SecretKeyConfig struct {
	// Access is the HMAC-SHA-256 key for bearer tokens. Startup fails when it is empty.
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	Argon2 Argon2Config `json:"argon2" yaml:"argon2"`

	// MaxConcurrentHashes bounds simultaneous Argon2id derivations
	MaxConcurrentHashes int `json:"maxConcurrentHashes" yaml:"maxConcurrentHashes"`

	// PublicTickets leaves ticket mutations open to anonymous callers, as the first release did
	PublicTickets bool `json:"publicTickets" yaml:"publicTickets"`
}

// Argon2Config holds the Argon2id cost parameters used for new hashes.
// Stored hashes carry their own parameters, so changing these never breaks verification.
type Argon2Config struct {
	Memory      uint32 `json:"memory" yaml:"memory"` // KiB
	Iterations  uint32 `json:"iterations" yaml:"iterations"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

// RateLimitConfig is a token bucket per client IP. A non-positive rate disables it.
type RateLimitConfig struct {
	Rate  float64 `json:"rate" yaml:"rate"` // requests per second
	Burst int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DefaultArgon2Config mirrors the RFC 9106 second recommended option used by the first release:
// 19 MiB, two passes, one lane, 16-byte salt, 32-byte digest.
func DefaultArgon2Config() Argon2Config {
	return Argon2Config{
		Memory:      19 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// DefaultPasswordStrengthConfig only enforces length bounds.
func DefaultPasswordStrengthConfig() *PasswordStrengthConfig {
	return &PasswordStrengthConfig{
		MinLength: 8,
		MaxLength: 128,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a path aligned with existing YAML keys.
			// Example: SECRETKEY_ACCESS -> secretKey.access
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml, applies env overrides and defaults, and refuses to start
// with an unusable configuration.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyLegacyEnv(cfg)
	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset optional setting.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	defaults := DefaultArgon2Config()
	if cfg.Auth.Argon2.Memory == 0 {
		cfg.Auth.Argon2.Memory = defaults.Memory
	}
	if cfg.Auth.Argon2.Iterations == 0 {
		cfg.Auth.Argon2.Iterations = defaults.Iterations
	}
	if cfg.Auth.Argon2.Parallelism == 0 {
		cfg.Auth.Argon2.Parallelism = defaults.Parallelism
	}
	if cfg.Auth.Argon2.SaltLength == 0 {
		cfg.Auth.Argon2.SaltLength = defaults.SaltLength
	}
	if cfg.Auth.Argon2.KeyLength == 0 {
		cfg.Auth.Argon2.KeyLength = defaults.KeyLength
	}
	if cfg.Auth.MaxConcurrentHashes <= 0 {
		cfg.Auth.MaxConcurrentHashes = runtime.GOMAXPROCS(0)
	}

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = DefaultPasswordStrengthConfig()
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{Rate: 5, Burst: 10}
	}
}

// Validate reports configuration that must stop the process before it serves traffic.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.Wrap(domainerrors.ErrMissingSigningSecret, "secretKey.access (or JWT_SECRET) must be set")
	}

	switch cfg.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.Wrap(domainerrors.ErrConfig, "postgres settings are required for the postgres storage driver")
		}
	default:
		return errors.Wrapf(domainerrors.ErrConfig, "unknown storage driver %q", cfg.Storage.Driver)
	}

	for _, cidr := range cfg.HTTP.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return errors.Wrapf(domainerrors.ErrConfig, "http.trustedProxies: invalid CIDR %q", cidr)
		}
	}

	if cfg.Auth != nil && cfg.Auth.Argon2.KeyLength < 16 {
		return errors.Wrap(domainerrors.ErrConfig, "auth.argon2.keyLength must be at least 16")
	}

	return nil
}

func applyLegacyEnv(cfg *Config) {
	if secret := os.Getenv(legacySecretEnv); secret != "" {
		cfg.SecretKey.Access = secret
	}
	if port, err := strconv.Atoi(os.Getenv(legacyPortEnv)); err == nil && port > 0 {
		cfg.HTTP.Port = port
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
