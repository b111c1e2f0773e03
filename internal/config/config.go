// Package config loads process configuration from defaults, an optional
// config file and SURVEY_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SURVEY_DATA_PATH
const EnvPrefix = "SURVEY"

// Config holds the service configuration
type Config struct {
	// DataPath is the CSV or SQLite file holding the survey responses
	DataPath string `mapstructure:"data_path"`

	HTTP HTTPConfig `mapstructure:"http"`
	Docs DocsConfig `mapstructure:"docs"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DocsConfig controls the Swagger UI
type DocsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_path", "data/policy_survey_data.csv")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("docs.enabled", true)
}

// Load builds the configuration. configFile may be empty, in which case
// SURVEY_CONFIG is consulted; with neither set only defaults and environment
// variables apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("config: data_path is required")
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("config: http.addr is required")
	}
	return nil
}
