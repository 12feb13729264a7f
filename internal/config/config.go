package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway" mapstructure:"gateway"`
	Basin   BasinConfig   `yaml:"basin" mapstructure:"basin"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// GatewayConfig configures the basin data gateway client.
type GatewayConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int     `yaml:"max_retries" mapstructure:"max_retries"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// BasinConfig holds the store's analytical defaults.
type BasinConfig struct {
	DefaultRadius    float64 `yaml:"default_radius" mapstructure:"default_radius"`
	SelectedTRS      string  `yaml:"selected_trs" mapstructure:"selected_trs"`
	FootagePerWell   float64 `yaml:"footage_per_well" mapstructure:"footage_per_well"`
	Epoch            string  `yaml:"epoch" mapstructure:"epoch"`
	DefaultWellColor string  `yaml:"default_well_color" mapstructure:"default_well_color"`
}

// EpochDate parses Epoch.
func (b BasinConfig) EpochDate() (model.Date, error) {
	d, err := model.ParseDate(b.Epoch)
	if err != nil {
		return model.Date{}, eris.Wrapf(err, "config: parse basin.epoch %q", b.Epoch)
	}
	if d.IsZero() {
		return model.Date{}, eris.New("config: basin.epoch is empty")
	}
	return d, nil
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MINAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The gateway's own deployment exports FLASK_BASE_URL.
	if err := v.BindEnv("gateway.base_url", "MINAI_GATEWAY_BASE_URL", "FLASK_BASE_URL"); err != nil {
		return nil, eris.Wrap(err, "config: bind env")
	}

	// Defaults
	v.SetDefault("gateway.base_url", "http://localhost:5000")
	v.SetDefault("gateway.user_agent", "minai/1.0")
	v.SetDefault("gateway.timeout_secs", 0)
	v.SetDefault("gateway.max_retries", 0)
	v.SetDefault("gateway.rate_limit", 20)
	v.SetDefault("basin.default_radius", 5)
	v.SetDefault("basin.selected_trs", "14-04N-65W")
	v.SetDefault("basin.footage_per_well", 5000)
	v.SetDefault("basin.epoch", "2022-01-01")
	v.SetDefault("basin.default_well_color", "#3388ff")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings every command needs. Mode "serve"
// additionally checks the server settings.
func (c *Config) Validate(mode string) error {
	var missing []string

	if strings.TrimSpace(c.Gateway.BaseURL) == "" {
		missing = append(missing, "gateway.base_url is required")
	}
	if c.Gateway.TimeoutSecs < 0 {
		missing = append(missing, "gateway.timeout_secs must be >= 0")
	}
	if c.Gateway.MaxRetries < 0 {
		missing = append(missing, "gateway.max_retries must be >= 0")
	}
	if c.Gateway.RateLimit < 0 {
		missing = append(missing, "gateway.rate_limit must be >= 0")
	}
	if c.Basin.DefaultRadius <= 0 {
		missing = append(missing, "basin.default_radius must be > 0")
	}
	if c.Basin.FootagePerWell <= 0 {
		missing = append(missing, "basin.footage_per_well must be > 0")
	}
	if _, err := c.Basin.EpochDate(); err != nil {
		missing = append(missing, fmt.Sprintf("basin.epoch %q is not a date", c.Basin.Epoch))
	}

	switch mode {
	case "", "cli":
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			missing = append(missing, "server.port must be > 0 and <= 65535")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(missing) > 0 {
		return eris.Errorf("config: %s", strings.Join(missing, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
