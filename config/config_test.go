package config

import (
	"testing"

	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsYAMLAndEnvOverrides(t *testing.T) {
	t.Setenv(legacySecretEnv, "")
	t.Setenv(legacyPortEnv, "")
	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("RATELIMIT_BURST", "42")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	assert.Equal(t, 42, cfg.RateLimit.Burst)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, DefaultArgon2Config(), cfg.Auth.Argon2)
	assert.Equal(t, 8, cfg.PasswordStrength.MinLength)
	assert.NotNil(t, cfg.Postgres)
}

func TestNew_HonorsLegacyVariables(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "")
	t.Setenv(legacySecretEnv, "legacy-secret")
	t.Setenv(legacyPortEnv, "8081")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "legacy-secret", cfg.SecretKey.Access)
	assert.Equal(t, 8081, cfg.HTTP.Port)
}

func TestNew_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "")
	t.Setenv(legacySecretEnv, "")

	cfg, err := New()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConfig))
	assert.True(t, errors.Is(err, domainerrors.ErrMissingSigningSecret))
}

func TestApplyDefaults_FillsUnsetSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "info", cfg.Env.Log.Level)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, DefaultArgon2Config(), cfg.Auth.Argon2)
	assert.Positive(t, cfg.Auth.MaxConcurrentHashes)
	assert.Equal(t, DefaultPasswordStrengthConfig(), cfg.PasswordStrength)
	assert.NotNil(t, cfg.RateLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "memory driver needs no postgres",
			mutate: func(c *Config) { c.Storage.Driver = StorageDriverMemory },
		},
		{
			name:    "postgres driver needs postgres settings",
			mutate:  func(c *Config) { c.Storage.Driver = StorageDriverPostgres },
			wantErr: domainerrors.ErrConfig,
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "mongo" },
			wantErr: domainerrors.ErrConfig,
		},
		{
			name: "short digest",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMemory
				c.Auth.Argon2.KeyLength = 8
			},
			wantErr: domainerrors.ErrConfig,
		},
		{
			name: "bad trusted proxy",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMemory
				c.HTTP.TrustedProxies = []string{"10.0.0.0/8", "not-a-cidr"}
			},
			wantErr: domainerrors.ErrConfig,
		},
		{
			name: "blank secret",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMemory
				c.SecretKey.Access = "   "
			},
			wantErr: domainerrors.ErrMissingSigningSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SecretKey: SecretKeyConfig{Access: "secret"}}
			cfg.ApplyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
