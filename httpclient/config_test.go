package httpclient

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{BaseURL: "http://localhost:8500"}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}

	cfg = Config{BaseURL: "http://localhost:8500", Timeout: 5 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected explicit timeout preserved, got %v", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "http://localhost:8500", Timeout: time.Second}, false},
		{"missing base url", Config{Timeout: time.Second}, true},
		{"zero timeout", Config{BaseURL: "http://localhost:8500"}, true},
		{"inconsistent tls", Config{
			BaseURL: "http://localhost:8500",
			Timeout: time.Second,
			TLS:     &TLSConfig{CertFile: "cert.pem"},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTLSConfig_Build_Empty(t *testing.T) {
	var cfg *TLSConfig
	got, err := cfg.Build()
	if err != nil || got != nil {
		t.Errorf("expected nil config for nil TLSConfig, got %v, %v", got, err)
	}

	got, err = (&TLSConfig{}).Build()
	if err != nil || got != nil {
		t.Errorf("expected nil config for empty TLSConfig, got %v, %v", got, err)
	}
}

func TestTLSConfig_Build_SkipVerify(t *testing.T) {
	cfg := &TLSConfig{SkipVerify: true}
	got, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify=true")
	}
	if !cfg.IsEnabled() {
		t.Error("expected IsEnabled=true")
	}
}
