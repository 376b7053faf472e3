package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Mode          string        `mapstructure:"mode"`
	Port          int           `mapstructure:"port"`
	StaticPath    string        `mapstructure:"static_path"`
	AllowedOrigin string        `mapstructure:"allowed_origin"`
	ReadLimit     int64         `mapstructure:"read_limit"`
	PingPeriod    time.Duration `mapstructure:"ping_period"`
	Secret        string        `mapstructure:"secret"`

	RoomTTL           time.Duration `mapstructure:"room_ttl"`
	MaxRoomSize       int           `mapstructure:"max_room_size"`
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`

	YouTubeAPIKey   string        `mapstructure:"youtube_api_key"`
	JamendoClientID string        `mapstructure:"jamendo_client_id"`
	SearchTimeout   time.Duration `mapstructure:"search_timeout"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("static_path", "./web")
	v.SetDefault("allowed_origin", "*")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "54s")

	v.SetDefault("room_ttl", "2h")
	v.SetDefault("max_room_size", 50)
	v.SetDefault("sweep_interval", "60s")
	v.SetDefault("heartbeat_interval", "4s")
	v.SetDefault("search_timeout", "10s")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("⚠️ Config file not found (%s), using defaults\n", fileName)
	} else {
		fmt.Printf("✅ Loaded config: %s\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	fmt.Printf("🧩 Mode: %s | Port: %d | Room TTL: %s | Max room size: %d\n",
		cfg.Mode, cfg.Port, cfg.RoomTTL, cfg.MaxRoomSize)
	return &cfg, nil
}
