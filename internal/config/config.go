// Package config loads the numerical settings of the gauge tools from
// defaults, an optional YAML file and GAUGE_* environment variables, and
// translates them into library options.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/transport"
)

// EnvPrefix prefixes every environment override, e.g. GAUGE_STEPS.
const EnvPrefix = "GAUGE"

// ErrInvalid indicates a setting outside its valid range.
var ErrInvalid = errors.New("config: invalid setting")

// Settings holds the tool configuration.
type Settings struct {
	Epsilon    float64 `mapstructure:"epsilon"`
	Tolerance  float64 `mapstructure:"tolerance"`
	Steps      int     `mapstructure:"steps"`
	Integrator string  `mapstructure:"integrator"`
	Log        LogSettings
}

// LogSettings holds logger settings.
type LogSettings struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Load reads configuration. path names an explicit config file; when empty,
// GAUGE_CONFIG is consulted, then $HOME/.config/gauge/config.yaml if it
// exists. Environment variables override file values (log.level is
// GAUGE_LOG_LEVEL).
func Load(path string) (Settings, error) {
	v := viper.New()

	// default values
	v.SetDefault("epsilon", connection.DefaultEpsilon)
	v.SetDefault("tolerance", connection.DefaultTolerance)
	v.SetDefault("steps", transport.DefaultSteps)
	v.SetDefault("integrator", "euler")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gauge"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks ranges before the values reach option constructors,
// which panic on nonsense.
func (s Settings) Validate() error {
	switch {
	case !(s.Epsilon > 0) || math.IsInf(s.Epsilon, 0):
		return fmt.Errorf("epsilon %g: %w", s.Epsilon, ErrInvalid)
	case !(s.Tolerance >= 0) || math.IsInf(s.Tolerance, 0):
		return fmt.Errorf("tolerance %g: %w", s.Tolerance, ErrInvalid)
	case s.Steps < 1:
		return fmt.Errorf("steps %d: %w", s.Steps, ErrInvalid)
	}
	if _, err := transport.IntegratorByName(s.Integrator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// ConnectionOptions translates the settings into connection options.
func (s Settings) ConnectionOptions(logger *zap.Logger) []connection.Option {
	return []connection.Option{
		connection.WithEpsilon(s.Epsilon),
		connection.WithTolerance(s.Tolerance),
		connection.WithLogger(logger),
	}
}

// TransportOptions translates the settings into transport options.
func (s Settings) TransportOptions(logger *zap.Logger) ([]transport.Option, error) {
	in, err := transport.IntegratorByName(s.Integrator)
	if err != nil {
		return nil, err
	}

	return []transport.Option{
		transport.WithSteps(s.Steps),
		transport.WithIntegrator(in),
		transport.WithLogger(logger),
	}, nil
}
