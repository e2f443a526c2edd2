package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runtime.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmptyRuntimeConfig_Defaults(t *testing.T) {
	cfg := EmptyRuntimeConfig()

	if got := cfg.GetListenAddr(); got != ":50051" {
		t.Errorf("listen addr = %q", got)
	}
	if got := cfg.GetHandSerialPort(); got != "/dev/ttyUSB0" {
		t.Errorf("serial port = %q", got)
	}
	if got := cfg.GetHandBaudRate(); got != 115200 {
		t.Errorf("baud rate = %d", got)
	}
	if got := cfg.GetHandDeviceID(); got != 1 {
		t.Errorf("device id = %d", got)
	}
	if got := cfg.GetHandshakePoll(); got != 500*time.Millisecond {
		t.Errorf("handshake poll = %s", got)
	}
	if got := cfg.GetHandshakeDeadline(); got != 5*time.Second {
		t.Errorf("handshake deadline = %s", got)
	}
	if got := cfg.GetStatusPeriod(); got != time.Second {
		t.Errorf("status period = %s", got)
	}
}

func TestLoadRuntimeConfig_Partial(t *testing.T) {
	path := writeConfig(t, `{"listen_addr": ":9000", "handshake_poll": "100ms"}`)

	cfg, err := LoadRuntimeConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.GetListenAddr(); got != ":9000" {
		t.Errorf("listen addr = %q", got)
	}
	if got := cfg.GetHandshakePoll(); got != 100*time.Millisecond {
		t.Errorf("handshake poll = %s", got)
	}
	// Everything not in the file keeps its default.
	if got := cfg.GetHandshakeDeadline(); got != 5*time.Second {
		t.Errorf("handshake deadline = %s", got)
	}
}

func TestLoadRuntimeConfig_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad json", `{listen`},
		{"bad duration", `{"handshake_poll": "soon"}`},
		{"bad baud", `{"hand_baud_rate": -1}`},
		{"bad device id", `{"hand_device_id": 300}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			if _, err := LoadRuntimeConfig(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadRuntimeConfig_RequiresJSONExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.yaml")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadRuntimeConfig(path); err == nil {
		t.Error("expected error for non-json extension")
	}
}

func TestLoadRuntimeConfig_MissingFile(t *testing.T) {
	if _, err := LoadRuntimeConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
