package policy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/funcretry/pkg/retry"
)

// PolicyFileName is the file Load looks for inside a directory.
const PolicyFileName = "retry.yaml"

// ErrPolicyNotFound is returned when the policy file does not exist.
// Callers can check for this with errors.Is(err, policy.ErrPolicyNotFound).
var ErrPolicyNotFound = errors.New("retry policy file not found")

// Environment variable names recognized by FromEnv.
const (
	EnvMaxAttempts  = "RETRY_MAX_ATTEMPTS"
	EnvInitialDelay = "RETRY_INITIAL_DELAY"
	EnvMaxDelay     = "RETRY_MAX_DELAY"
	EnvMultiplier   = "RETRY_MULTIPLIER"
)

// Settings is the declarative shape of a retry policy. Delays are duration
// strings in time.ParseDuration format ("250ms", "1m30s"). A zero
// Multiplier means retry.DefaultBase.
type Settings struct {
	MaxAttempts  int     `yaml:"max_attempts"`
	InitialDelay string  `yaml:"initial_delay"`
	MaxDelay     string  `yaml:"max_delay"`
	Multiplier   float64 `yaml:"multiplier,omitempty"`
}

// Load reads PolicyFileName from dir.
func Load(dir string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(dir, PolicyFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", PolicyFileName, err)
	}
	return &s, nil
}

// FromEnvFile reads a .env style file and builds Settings from its RETRY_*
// keys.
func FromEnvFile(path string) (*Settings, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return FromEnv(vars)
}

// FromEnv builds Settings from the RETRY_* keys in vars. Missing keys are
// left at their zero value; malformed values are an error.
func FromEnv(vars map[string]string) (*Settings, error) {
	var s Settings

	if v, ok := vars[EnvMaxAttempts]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMaxAttempts, v, err)
		}
		s.MaxAttempts = n
	}

	s.InitialDelay = vars[EnvInitialDelay]
	s.MaxDelay = vars[EnvMaxDelay]

	if v, ok := vars[EnvMultiplier]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMultiplier, v, err)
		}
		s.Multiplier = f
	}

	return &s, nil
}

// Validate checks that the settings can produce a usable retry policy.
// Violations are reported as retry.ErrInvalidConfig wraps.
func (s *Settings) Validate() error {
	if s.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be >= 1, got %d", retry.ErrInvalidConfig, s.MaxAttempts)
	}
	if s.Multiplier != 0 && s.Multiplier < 1 {
		return fmt.Errorf("%w: multiplier must be >= 1, got %v", retry.ErrInvalidConfig, s.Multiplier)
	}
	if _, _, err := s.delays(); err != nil {
		return fmt.Errorf("%w: %v", retry.ErrInvalidConfig, err)
	}
	return nil
}

// Backoff builds the capped exponential backoff these settings describe.
func (s *Settings) Backoff() (retry.BackoffFunc, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	initial, max, _ := s.delays()
	base := s.Multiplier
	if base == 0 {
		base = retry.DefaultBase
	}
	return retry.CappedExponential(initial, base, max), nil
}

func (s *Settings) delays() (initial, max time.Duration, err error) {
	if s.InitialDelay == "" {
		return 0, 0, errors.New("initial_delay is required")
	}
	initial, err = time.ParseDuration(s.InitialDelay)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid initial_delay %q: %w", s.InitialDelay, err)
	}
	if s.MaxDelay == "" {
		return 0, 0, errors.New("max_delay is required")
	}
	max, err = time.ParseDuration(s.MaxDelay)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid max_delay %q: %w", s.MaxDelay, err)
	}
	if initial < 0 || max < 0 {
		return 0, 0, errors.New("delays must not be negative")
	}
	return initial, max, nil
}

// Build assembles a validated retry configuration from the settings, the
// given retry predicate and handlers.
func Build[E, R any](s *Settings, retryIf func(E) bool, handlers retry.Handlers[E, R]) (*retry.Config[E, R], error) {
	backoff, err := s.Backoff()
	if err != nil {
		return nil, err
	}
	return retry.NewConfig(s.MaxAttempts, backoff, retryIf, handlers)
}
