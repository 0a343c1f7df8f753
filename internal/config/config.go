package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	// DefaultHost is the IPv4 wildcard address.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the port the server listens on unless overridden.
	DefaultPort = 3000
)

var (
	// ErrEmptyHost is returned by Validate for a blank host.
	ErrEmptyHost = errors.New("host must not be empty")
	// ErrInvalidPort is returned by Validate for a port outside 1..65535.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
)

// Config holds the listener settings. It is built once at startup and
// never modified afterwards.
type Config struct {
	Host    string
	Port    int
	Verbose bool
}

// Default returns the fixed bind address the server ships with.
func Default() Config {
	return Config{
		Host: DefaultHost,
		Port: DefaultPort,
	}
}

// Validate reports whether the config can be used to bind a listener.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return ErrEmptyHost
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// Addr returns the host:port pair passed to net.Listen.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
