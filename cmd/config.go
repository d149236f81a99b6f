package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/etnz/yield"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of the environment variables read by LoadConfig.
const EnvPrefix = "YIELD"

// Config holds the defaults of the command line flags, read from the
// environment (YIELD_POLICY, YIELD_WORKERS, ...).
type Config struct {
	Policy           string `envconfig:"POLICY" default:"cef"`
	Normalization    string `envconfig:"NORMALIZATION" default:"weekly"`
	VolatilityMonths int    `envconfig:"VOLATILITY_MONTHS" default:"12"`
	Workers          int    `envconfig:"WORKERS" default:"4"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	Style            string `envconfig:"STYLE" default:"auto"`
}

// LoadConfig reads the configuration from the environment, after loading the
// variables of envFile if it exists.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("cannot load %q: %w", envFile, err)
		}
	}
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("cannot read configuration from environment: %w", err)
	}
	if _, err := newClassifier(c.Policy, c.Normalization); err != nil {
		return Config{}, err
	}
	if c.VolatilityMonths <= 0 {
		return Config{}, fmt.Errorf("%s_VOLATILITY_MONTHS=%d: %w", EnvPrefix, c.VolatilityMonths, yield.ErrInvalidWindow)
	}
	return c, nil
}

// newClassifier returns the classifier for a policy and normalization names.
func newClassifier(policy, normalization string) (yield.Classifier, error) {
	p, err := yield.ParsePolicy(policy)
	if err != nil {
		return yield.Classifier{}, err
	}
	n, err := yield.ParseNormalizer(normalization)
	if err != nil {
		return yield.Classifier{}, err
	}
	return yield.Classifier{Policy: p, Normalizer: n}, nil
}
