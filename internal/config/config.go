package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Rorical/SafeHer/internal/alert"
	"github.com/Rorical/SafeHer/internal/emergency"
	"github.com/Rorical/SafeHer/internal/gesture"
	"github.com/Rorical/SafeHer/internal/geo"
	"github.com/Rorical/SafeHer/internal/storage"
)

const (
	LocationSourceStatic = "static"
	LocationSourceIP     = "ip"
)

type EmergencyConfig struct {
	Number string `mapstructure:"number" json:"number"`
}

type GestureConfig struct {
	Taps   int           `mapstructure:"taps" json:"taps"`
	Window time.Duration `mapstructure:"window" json:"window"`
}

type AlertConfig struct {
	MessageTemplate string `mapstructure:"message_template" json:"message_template"`
	MapURLTemplate  string `mapstructure:"map_url_template" json:"map_url_template"`
}

type StorageConfig struct {
	Backend        string `mapstructure:"backend" json:"backend"`
	Dir            string `mapstructure:"dir" json:"dir"`
	SQLitePath     string `mapstructure:"sqlite_path" json:"sqlite_path"`
	DynamoTable    string `mapstructure:"dynamo_table" json:"dynamo_table,omitempty"`
	DynamoRegion   string `mapstructure:"dynamo_region" json:"dynamo_region,omitempty"`
	DynamoEndpoint string `mapstructure:"dynamo_endpoint" json:"dynamo_endpoint,omitempty"`
}

type LocationConfig struct {
	Source     string  `mapstructure:"source" json:"source"`
	Lat        float64 `mapstructure:"lat" json:"lat"`
	Lng        float64 `mapstructure:"lng" json:"lng"`
	IPEndpoint string  `mapstructure:"ip_endpoint" json:"ip_endpoint"`
}

type LogConfig struct {
	Path string `mapstructure:"path" json:"path"`
}

type Config struct {
	Emergency EmergencyConfig `mapstructure:"emergency" json:"emergency"`
	Gesture   GestureConfig   `mapstructure:"gesture" json:"gesture"`
	Alert     AlertConfig     `mapstructure:"alert" json:"alert"`
	Storage   StorageConfig   `mapstructure:"storage" json:"storage"`
	Location  LocationConfig  `mapstructure:"location" json:"location"`
	Log       LogConfig       `mapstructure:"log" json:"log"`

	path string
}

// LoadConfig reads the config from $SAFEHER_HOME (or ~/.safeher), writing a
// default file on first run. SAFEHER_* environment variables override file
// values, e.g. SAFEHER_EMERGENCY_NUMBER=911.
func LoadConfig() (*Config, error) {
	home, err := getHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(home)
}

// LoadFrom is LoadConfig with an explicit home directory.
func LoadFrom(home string) (*Config, error) {
	if err := os.MkdirAll(home, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	configPath := filepath.Join(home, "config.json")

	v := viper.New()
	setDefaults(v, home)
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix("SAFEHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := v.WriteConfigAs(configPath); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.path = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("emergency.number", emergency.DefaultNumber)
	v.SetDefault("gesture.taps", gesture.DefaultThreshold)
	v.SetDefault("gesture.window", gesture.DefaultWindow.String())
	v.SetDefault("alert.message_template", alert.DefaultMessageTemplate)
	v.SetDefault("alert.map_url_template", alert.DefaultMapURLTemplate)
	v.SetDefault("storage.backend", storage.BackendFile)
	v.SetDefault("storage.dir", filepath.Join(home, "data"))
	v.SetDefault("storage.sqlite_path", filepath.Join(home, "safeher.db"))
	v.SetDefault("storage.dynamo_table", "")
	v.SetDefault("storage.dynamo_region", "")
	v.SetDefault("storage.dynamo_endpoint", "")
	v.SetDefault("location.source", LocationSourceIP)
	v.SetDefault("location.lat", 0.0)
	v.SetDefault("location.lng", 0.0)
	v.SetDefault("location.ip_endpoint", geo.DefaultIPEndpoint)
	v.SetDefault("log.path", filepath.Join(home, "safeher.log"))
}

// Validate rejects settings the app cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Emergency.Number) == "" {
		return errors.New("config: emergency.number must not be empty")
	}
	if c.Gesture.Taps < 1 {
		return fmt.Errorf("config: gesture.taps must be at least 1, got %d", c.Gesture.Taps)
	}
	if c.Gesture.Window <= 0 {
		return fmt.Errorf("config: gesture.window must be positive, got %s", c.Gesture.Window)
	}
	switch c.Location.Source {
	case LocationSourceStatic, LocationSourceIP:
	default:
		return fmt.Errorf("config: unknown location.source %q", c.Location.Source)
	}
	return nil
}

// Path is the config file the values were read from.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:        c.Storage.Backend,
		Dir:            c.Storage.Dir,
		SQLitePath:     c.Storage.SQLitePath,
		DynamoTable:    c.Storage.DynamoTable,
		DynamoRegion:   c.Storage.DynamoRegion,
		DynamoEndpoint: c.Storage.DynamoEndpoint,
	}
}

// LocationSource builds the configured geolocation source.
func (c *Config) LocationSource() geo.Source {
	if c.Location.Source == LocationSourceStatic {
		return geo.StaticSource{Location: geo.Location{Lat: c.Location.Lat, Lng: c.Location.Lng}}
	}
	return geo.NewIPSource(c.Location.IPEndpoint)
}

func getHomeDir() (string, error) {
	if home := os.Getenv("SAFEHER_HOME"); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, ".safeher"), nil
}
