// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"ticketdesk/config"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/service"
	"ticketdesk/internal/errors"
	"ticketdesk/internal/infra/metrics"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

const argon2idPrefix = "argon2id"

// Upper bounds for parameters read back from stored hashes.
const (
	maxStoredMemory      = 1 << 20 // KiB
	maxStoredIterations  = 32
	maxStoredParallelism = 64
	minStoredKeyLength   = 16
	maxStoredKeyLength   = 128
	minStoredSaltLength  = 8
)

var b64 = base64.RawStdEncoding

// argon2Hasher implements PasswordHasher with Argon2id and PHC-formatted output.
type argon2Hasher struct {
	params   config.Argon2Config
	policy   config.PasswordStrengthConfig
	slots    *semaphore.Weighted
	recorder metrics.Recorder
}

// NewArgon2Hasher builds a hasher from the auth and password policy settings.
// At most Auth.MaxConcurrentHashes derivations run at the same time.
func NewArgon2Hasher(cfg *config.Config, recorder metrics.Recorder) service.PasswordHasher {
	params := config.DefaultArgon2Config()
	slots := int64(1)
	if cfg.Auth != nil {
		params = cfg.Auth.Argon2
		if cfg.Auth.MaxConcurrentHashes > 0 {
			slots = int64(cfg.Auth.MaxConcurrentHashes)
		}
	}

	policy := *config.DefaultPasswordStrengthConfig()
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &argon2Hasher{
		params:   params,
		policy:   policy,
		slots:    semaphore.NewWeighted(slots),
		recorder: recorder,
	}
}

// Hash derives a digest with a fresh random salt and encodes it as
// $argon2id$v=19$m=<KiB>,t=<passes>,p=<lanes>$<salt>$<digest>.
func (h *argon2Hasher) Hash(ctx context.Context, password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrapf(domainerrors.ErrPasswordHashFailed, "read salt: %v", err)
	}

	key, err := h.derive(ctx, metrics.PhaseHash, password, salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrPasswordHashFailed, "derive: %v", err)
	}

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix, argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		b64.EncodeToString(salt), b64.EncodeToString(key),
	), nil
}

// Check recomputes the digest with the parameters embedded in hash.
// An unparseable hash still costs one derivation with the configured parameters and returns false.
func (h *argon2Hasher) Check(ctx context.Context, password, hash string) bool {
	stored, err := parseArgon2idHash(hash)
	if err != nil {
		_, _ = h.derive(ctx, metrics.PhaseVerify, password, make([]byte, h.params.SaltLength),
			h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

		return false
	}

	key, err := h.derive(ctx, metrics.PhaseVerify, password, stored.salt,
		stored.iterations, stored.memory, stored.parallelism, uint32(len(stored.key)))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, stored.key) == 1
}

// ValidatePasswordStrength applies the configured length and character class rules.
func (h *argon2Hasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	if length < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at least %d characters long", h.policy.MinLength))
	}
	if h.policy.MaxLength > 0 && length > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at most %d characters long", h.policy.MaxLength))
	}
	if h.policy.RequireUppercase && !hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}

	return nil
}

func (h *argon2Hasher) derive(
	ctx context.Context,
	phase, password string,
	salt []byte,
	iterations, memory uint32,
	parallelism uint8,
	keyLength uint32,
) ([]byte, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, "wait for hashing slot")
	}
	defer h.slots.Release(1)

	start := time.Now()
	key := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)
	h.recorder.ObservePasswordHash(phase, time.Since(start))

	return key, nil
}

type argon2idHash struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parseArgon2idHash(encoded string) (*argon2idHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2idPrefix {
		return nil, errors.New("not an argon2id PHC string")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, errors.Wrap(err, "parse version")
	}
	if version != argon2.Version {
		return nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return nil, errors.Wrap(err, "parse parameters")
	}
	if memory == 0 || memory > maxStoredMemory ||
		iterations == 0 || iterations > maxStoredIterations ||
		parallelism == 0 || parallelism > maxStoredParallelism ||
		memory < 8*uint32(parallelism) {
		return nil, errors.New("argon2 parameters out of range")
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return nil, errors.Wrap(err, "decode salt")
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return nil, errors.Wrap(err, "decode digest")
	}
	if len(salt) < minStoredSaltLength || len(key) < minStoredKeyLength || len(key) > maxStoredKeyLength {
		return nil, errors.New("salt or digest length out of range")
	}

	return &argon2idHash{
		memory:      memory,
		iterations:  iterations,
		parallelism: parallelism,
		salt:        salt,
		key:         key,
	}, nil
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func hasNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func hasSpecialChars(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}

	return false
}
