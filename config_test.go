package gale

import (
	"strings"
	"testing"
)

// TestLoadConfig parses a full document.
func TestLoadConfig(t *testing.T) {
	const doc = `
backend: memory
subsystems: [video, events, joystick]
log_level: debug
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Backend != "memory" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "memory")
	}
	if len(cfg.Subsystems) != 3 {
		t.Errorf("Subsystems = %v, want 3 entries", cfg.Subsystems)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

// TestLoadConfigRejectsUnknownFields verifies strict decoding.
func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	if _, err := LoadConfig(strings.NewReader("backnd: memory\n")); err == nil {
		t.Error("LoadConfig accepted a misspelled field")
	}
}

// TestSubsystemMask covers the name resolution table and defaults.
func TestSubsystemMask(t *testing.T) {
	tests := []struct {
		name    string
		subs    []string
		want    Subsystem
		wantErr bool
	}{
		{name: "default", subs: nil, want: SubsystemVideo | SubsystemEvents},
		{name: "single", subs: []string{"audio"}, want: SubsystemAudio},
		{name: "combined", subs: []string{"video", "joystick"}, want: SubsystemVideo | SubsystemJoystick},
		{name: "case insensitive", subs: []string{"Video", "EVENTS"}, want: SubsystemVideo | SubsystemEvents},
		{name: "everything", subs: []string{"everything"}, want: SubsystemEverything},
		{name: "unknown", subs: []string{"warp-drive"}, wantErr: true},
	}

	for _, tt := range tests {
		cfg := Config{Subsystems: tt.subs}
		got, err := cfg.SubsystemMask()
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: mask = %#x, want %#x", tt.name, uint32(got), uint32(tt.want))
		}
	}
}

// TestConfigOptions verifies a config drives New end to end.
func TestConfigOptions(t *testing.T) {
	cfg := Config{Backend: "memory", Subsystems: []string{"events"}}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}

	ctx, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer ctx.Close()

	if ctx.Engine().Name() != "memory" {
		t.Errorf("Name() = %q, want %q", ctx.Engine().Name(), "memory")
	}
	if ctx.Subsystems() != SubsystemEvents {
		t.Errorf("Subsystems() = %#x, want events only", uint32(ctx.Subsystems()))
	}
}

// TestConfigOptionsBadLevel verifies log level validation.
func TestConfigOptionsBadLevel(t *testing.T) {
	cfg := Config{LogLevel: "verbose"}
	if _, err := cfg.Options(); err == nil {
		t.Error("Options accepted an unknown log level")
	}
}
