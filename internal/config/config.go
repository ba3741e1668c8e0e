package config

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Population Population `yaml:"population" mapstructure:"population"`
	Events     Events     `yaml:"events" mapstructure:"events"`
	Cluster    Cluster    `yaml:"cluster" mapstructure:"cluster"`
	Score      Score      `yaml:"score" mapstructure:"score"`
	Map        Map        `yaml:"map" mapstructure:"map"`
	Log        Log        `yaml:"log" mapstructure:"log"`
}

// Population configures the synthetic user generator.
type Population struct {
	Size          int     `yaml:"size" mapstructure:"size"`
	Seed          int64   `yaml:"seed" mapstructure:"seed"`
	JitterSigma   float64 `yaml:"jitter_sigma" mapstructure:"jitter_sigma"`
	SuccessMean   float64 `yaml:"success_mean" mapstructure:"success_mean"`
	SuccessSigma  float64 `yaml:"success_sigma" mapstructure:"success_sigma"`
	TimezoneLabel string  `yaml:"timezone" mapstructure:"timezone"`
}

// Events configures the synthetic event generator.
type Events struct {
	MinPerUser  int     `yaml:"min_per_user" mapstructure:"min_per_user"`
	MaxPerUser  int     `yaml:"max_per_user" mapstructure:"max_per_user"`
	WindowDays  int     `yaml:"window_days" mapstructure:"window_days"`
	EveningProb float64 `yaml:"evening_prob" mapstructure:"evening_prob"`
	JitterSigma float64 `yaml:"jitter_sigma" mapstructure:"jitter_sigma"`
}

// Cluster configures DBSCAN hotspot detection.
type Cluster struct {
	EpsDegrees float64 `yaml:"eps_degrees" mapstructure:"eps_degrees"`
	MinPoints  int     `yaml:"min_points" mapstructure:"min_points"`
}

// Score configures the launch-zone composite score.
type Score struct {
	UsersWeight   float64 `yaml:"users_weight" mapstructure:"users_weight"`
	EventsWeight  float64 `yaml:"events_weight" mapstructure:"events_weight"`
	SuccessWeight float64 `yaml:"success_weight" mapstructure:"success_weight"`
	TopN          int     `yaml:"top_n" mapstructure:"top_n"`
}

// Map configures the rendered Leaflet document.
type Map struct {
	CenterLat      float64 `yaml:"center_lat" mapstructure:"center_lat"`
	CenterLon      float64 `yaml:"center_lon" mapstructure:"center_lon"`
	Zoom           int     `yaml:"zoom" mapstructure:"zoom"`
	HotspotRadiusM float64 `yaml:"hotspot_radius_m" mapstructure:"hotspot_radius_m"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. Every parameter has a
// default, so the tool runs with no config file at all.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LOCATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("population.size", 500)
	v.SetDefault("population.seed", 42)
	v.SetDefault("population.jitter_sigma", 0.05)
	v.SetDefault("population.success_mean", 0.6)
	v.SetDefault("population.success_sigma", 0.15)
	v.SetDefault("population.timezone", "Asia/Kolkata")
	v.SetDefault("events.min_per_user", 10)
	v.SetDefault("events.max_per_user", 40)
	v.SetDefault("events.window_days", 60)
	v.SetDefault("events.evening_prob", 0.7)
	v.SetDefault("events.jitter_sigma", 0.01)
	v.SetDefault("cluster.eps_degrees", 0.5)
	v.SetDefault("cluster.min_points", 30)
	v.SetDefault("score.users_weight", 0.4)
	v.SetDefault("score.events_weight", 0.4)
	v.SetDefault("score.success_weight", 0.2)
	v.SetDefault("score.top_n", 5)
	v.SetDefault("map.center_lat", 20.5937)
	v.SetDefault("map.center_lon", 78.9629)
	v.SetDefault("map.zoom", 5)
	v.SetDefault("map.hotspot_radius_m", 50000)
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

// Validate checks parameter sanity before any generation work starts.
func (c *Config) Validate() error {
	if c.Population.Size <= 0 {
		return eris.Errorf("config: population.size must be positive (got %d)", c.Population.Size)
	}
	if c.Events.MinPerUser <= 0 || c.Events.MaxPerUser < c.Events.MinPerUser {
		return eris.Errorf("config: event bounds invalid (min=%d max=%d)", c.Events.MinPerUser, c.Events.MaxPerUser)
	}
	if c.Events.WindowDays <= 0 {
		return eris.Errorf("config: events.window_days must be positive (got %d)", c.Events.WindowDays)
	}
	if c.Events.EveningProb < 0 || c.Events.EveningProb > 1 {
		return eris.Errorf("config: events.evening_prob must be in [0,1] (got %g)", c.Events.EveningProb)
	}
	if c.Cluster.EpsDegrees <= 0 || c.Cluster.MinPoints <= 0 {
		return eris.Errorf("config: cluster params invalid (eps=%g min_points=%d)", c.Cluster.EpsDegrees, c.Cluster.MinPoints)
	}
	sum := c.Score.UsersWeight + c.Score.EventsWeight + c.Score.SuccessWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return eris.Errorf("config: score weights must sum to 1.0 (got %g)", sum)
	}
	if c.Score.TopN <= 0 {
		return eris.Errorf("config: score.top_n must be positive (got %d)", c.Score.TopN)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg Log) error {
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
