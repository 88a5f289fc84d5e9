package config

import (
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8080
)

// Server holds the bind settings of the HTTP server. They are fixed at
// startup and never change for the lifetime of the process.
type Server struct {
	Host string
	Port int
}

// Default returns the settings the server always runs with: port 8080 on
// all interfaces, so it stays reachable from outside a container.
func Default() Server {
	return Server{
		Host: DefaultHost,
		Port: DefaultPort,
	}
}

func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func (s Server) Validate() error {
	if s.Host == "" {
		return fmt.Errorf("missing bind host")
	}

	if net.ParseIP(s.Host) == nil {
		return fmt.Errorf("bind host %q is not an IP address", s.Host)
	}

	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("port %d is out of range", s.Port)
	}

	return nil
}
