package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RuntimeConfig is the manager daemon's startup configuration. All fields
// are pointers so a partial JSON file overrides only what it names; the
// Get* methods supply defaults for everything else.
type RuntimeConfig struct {
	// gRPC listener
	ListenAddr *string `json:"listen_addr,omitempty"`

	// Hand serial transport
	HandSerialPort *string `json:"hand_serial_port,omitempty"`
	HandBaudRate   *int    `json:"hand_baud_rate,omitempty"`
	HandDeviceID   *int    `json:"hand_device_id,omitempty"`

	// Enable/disable handshake tuning, duration strings like "500ms"
	HandshakePoll     *string `json:"handshake_poll,omitempty"`
	HandshakeDeadline *string `json:"handshake_deadline,omitempty"`

	// Status push period for ReceiveStatus streams
	StatusPeriod *string `json:"status_period,omitempty"`
}

// EmptyRuntimeConfig returns a RuntimeConfig with all fields unset.
func EmptyRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{}
}

// LoadRuntimeConfig loads a RuntimeConfig from a JSON file. The file must
// have a .json extension and stay under the max file size. Fields omitted
// from the JSON keep their defaults, so partial configs are safe.
func LoadRuntimeConfig(path string) (*RuntimeConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRuntimeConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *RuntimeConfig) Validate() error {
	if c.HandBaudRate != nil && *c.HandBaudRate <= 0 {
		return fmt.Errorf("hand_baud_rate must be positive, got %d", *c.HandBaudRate)
	}
	if c.HandDeviceID != nil && (*c.HandDeviceID < 0 || *c.HandDeviceID > 255) {
		return fmt.Errorf("hand_device_id must fit one byte, got %d", *c.HandDeviceID)
	}

	for name, field := range map[string]*string{
		"handshake_poll":     c.HandshakePoll,
		"handshake_deadline": c.HandshakeDeadline,
		"status_period":      c.StatusPeriod,
	} {
		if field != nil && *field != "" {
			if _, err := time.ParseDuration(*field); err != nil {
				return fmt.Errorf("invalid %s '%s': %w", name, *field, err)
			}
		}
	}

	return nil
}

// GetListenAddr returns the gRPC listen address or the default.
func (c *RuntimeConfig) GetListenAddr() string {
	if c.ListenAddr == nil || *c.ListenAddr == "" {
		return ":50051"
	}
	return *c.ListenAddr
}

// GetHandSerialPort returns the hand serial device path or the default.
func (c *RuntimeConfig) GetHandSerialPort() string {
	if c.HandSerialPort == nil || *c.HandSerialPort == "" {
		return "/dev/ttyUSB0"
	}
	return *c.HandSerialPort
}

// GetHandBaudRate returns the hand serial rate or the factory default.
func (c *RuntimeConfig) GetHandBaudRate() int {
	if c.HandBaudRate == nil {
		return 115200
	}
	return *c.HandBaudRate
}

// GetHandDeviceID returns the hand's bus id or the default.
func (c *RuntimeConfig) GetHandDeviceID() byte {
	if c.HandDeviceID == nil {
		return 1
	}
	return byte(*c.HandDeviceID)
}

// GetHandshakePoll parses and returns the handshake poll interval.
func (c *RuntimeConfig) GetHandshakePoll() time.Duration {
	return c.duration(c.HandshakePoll, 500*time.Millisecond)
}

// GetHandshakeDeadline parses and returns the handshake deadline.
func (c *RuntimeConfig) GetHandshakeDeadline() time.Duration {
	return c.duration(c.HandshakeDeadline, 5*time.Second)
}

// GetStatusPeriod parses and returns the status push period.
func (c *RuntimeConfig) GetStatusPeriod() time.Duration {
	return c.duration(c.StatusPeriod, time.Second)
}

func (c *RuntimeConfig) duration(field *string, def time.Duration) time.Duration {
	if field == nil || *field == "" {
		return def
	}
	d, err := time.ParseDuration(*field)
	if err != nil {
		return def
	}
	return d
}
