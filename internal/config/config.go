// Package config loads the server's YAML configuration, falling back to
// the teacher's hardcoded defaults (core/main.go's loadConfig) when a
// field or the file itself is absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server's full configuration surface: network binding,
// server identity/world defaults, and the tuning knobs spec.md §6 names
// (tick rate, streamer radii/caps, malformed-packet thresholds).
type Config struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	MaxPlayers int    `yaml:"max_players"`

	ServerName string `yaml:"server_name"`
	GameMode   string `yaml:"game_mode"`
	Language   string `yaml:"language"`
	Weather    int    `yaml:"weather"`
	WorldTime  int    `yaml:"world_time"`
	MapName    string `yaml:"map_name"`
	WebURL     string `yaml:"web_url"`

	TickRate time.Duration `yaml:"tick_rate"`

	Streamer StreamerConfig `yaml:"streamer"`

	MalformedKickThreshold int `yaml:"malformed_kick_threshold"`

	BanListPath string `yaml:"ban_list_path"`
	Charset     string `yaml:"charset"`
}

// StreamerConfig mirrors spec.md §4.G's per-class radius/cap knobs.
type StreamerConfig struct {
	PlayerRadius float32 `yaml:"player_radius"`
	PlayerCap    int     `yaml:"player_cap"`
	VehicleRadius float32 `yaml:"vehicle_radius"`
	VehicleCap    int     `yaml:"vehicle_cap"`
	ObjectRadius  float32 `yaml:"object_radius"`
	ObjectCap     int     `yaml:"object_cap"`
	ActorRadius     float32 `yaml:"actor_radius"`
	ActorCap        int     `yaml:"actor_cap"`
	PickupRadius    float32 `yaml:"pickup_radius"`
	PickupCap       int     `yaml:"pickup_cap"`
	TextLabelRadius float32 `yaml:"textlabel_radius"`
	TextLabelCap    int     `yaml:"textlabel_cap"`
}

// Default returns the teacher's original hardcoded values, generalized
// with the tuning knobs the original config didn't have.
func Default() Config {
	return Config{
		Host:       "0.0.0.0",
		Port:       7777,
		MaxPlayers: 100,
		ServerName: "SA-MP Server in Go",
		GameMode:   "Freeroam",
		Language:   "English",
		Weather:    10,
		WorldTime:  12,
		MapName:    "San Andreas",
		WebURL:     "www.sa-mp.com",
		TickRate:   20 * time.Millisecond,
		Streamer: StreamerConfig{
			PlayerRadius: 200, PlayerCap: 100,
			VehicleRadius: 300, VehicleCap: 100,
			ObjectRadius: 200, ObjectCap: 150,
			ActorRadius: 200, ActorCap: 100,
			PickupRadius: 200, PickupCap: 150,
			TextLabelRadius: 200, TextLabelCap: 1024,
		},
		MalformedKickThreshold: 20,
		BanListPath:            "bans.txt",
		Charset:                "windows-1252",
	}
}

// Load reads a YAML file at path and overlays it onto Default(); a
// missing file is not an error — the defaults stand alone.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
