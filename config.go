package gale

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the Context options, loadable from
// YAML. Zero fields keep their defaults.
//
// Example:
//
//	backend: memory
//	subsystems: [video, events, joystick]
//	log_level: debug
type Config struct {
	// Backend names a registered backend ("" = auto-select).
	Backend string `yaml:"backend"`

	// Subsystems lists subsystem names to initialize. Recognized names:
	// audio, video, joystick, haptic, gamepad, events, sensor, camera,
	// everything.
	Subsystems []string `yaml:"subsystems"`

	// LogLevel sets the minimum level for the default text logger:
	// debug, info, warn or error. Empty leaves logging disabled.
	LogLevel string `yaml:"log_level"`
}

var subsystemNames = map[string]Subsystem{
	"audio":      SubsystemAudio,
	"video":      SubsystemVideo,
	"joystick":   SubsystemJoystick,
	"haptic":     SubsystemHaptic,
	"gamepad":    SubsystemGamepad,
	"events":     SubsystemEvents,
	"sensor":     SubsystemSensor,
	"camera":     SubsystemCamera,
	"everything": SubsystemEverything,
}

// LoadConfig parses a YAML config from r.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("gale: parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("gale: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// SubsystemMask resolves the configured subsystem names to a bitmask.
// An empty list resolves to the default (video and events).
func (c Config) SubsystemMask() (Subsystem, error) {
	if len(c.Subsystems) == 0 {
		return SubsystemVideo | SubsystemEvents, nil
	}
	var mask Subsystem
	for _, name := range c.Subsystems {
		sub, ok := subsystemNames[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("gale: unknown subsystem %q", name)
		}
		mask |= sub
	}
	return mask, nil
}

// Options converts the config into Context options. It also applies the
// configured log level, if any, as a text logger on stderr.
func (c Config) Options() ([]Option, error) {
	mask, err := c.SubsystemMask()
	if err != nil {
		return nil, err
	}

	opts := []Option{WithSubsystems(mask)}
	if c.Backend != "" {
		opts = append(opts, WithBackend(c.Backend))
	}

	if c.LogLevel != "" {
		var level slog.Level
		switch strings.ToLower(c.LogLevel) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			return nil, fmt.Errorf("gale: unknown log level %q", c.LogLevel)
		}
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	return opts, nil
}
