package server

import (
	"net"
	"strconv"
)

// Config holds configuration for the development HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the TCP port the server listens on.
	Port int `mapstructure:"port" default:"8000"`
	// Root is the directory served; "." is the process working directory.
	Root string `mapstructure:"root" default:"."`
	// ReuseAddress sets SO_REUSEADDR so a restart right after a crash can rebind.
	ReuseAddress bool `mapstructure:"reuse_address" default:"true"`
}

// Address returns the host:port pair to bind.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the address as an http URL for display.
func (c Config) URL() string {
	return "http://" + c.Address()
}
