package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json", Output: "stderr"}, false},
		{"valid console", Config{Level: "info", Format: "console", Output: "stdout"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	l := New(&Config{Level: "nonsense", Format: "json"}, "test")
	if l == nil {
		t.Fatal("expected logger")
	}
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	// Must not panic and must accept field maps.
	l.Debug("ignored")
	l.Info("ignored", Fields("k", "v"))
	l.Warn("ignored")
	l.Error("ignored", map[string]interface{}{"err": "x"})
}

func TestWithHelpers(t *testing.T) {
	l := Nop()
	if l.WithComponent("consul") == nil {
		t.Error("WithComponent returned nil")
	}
	if l.WithFields(map[string]interface{}{"a": 1}) == nil {
		t.Error("WithFields returned nil")
	}
	if l.WithError(nil) == nil {
		t.Error("WithError returned nil")
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "register", "port", 8080)
	if m["op"] != "register" {
		t.Errorf("expected op=register, got %v", m["op"])
	}
	if m["port"] != 8080 {
		t.Errorf("expected port=8080, got %v", m["port"])
	}

	// Odd trailing value is dropped.
	m = Fields("only")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}

	// Non-string keys are skipped.
	m = Fields(42, "x", "ok", true)
	if len(m) != 1 || m["ok"] != true {
		t.Errorf("expected only ok=true, got %v", m)
	}
}
