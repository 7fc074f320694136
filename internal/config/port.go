package config

import (
	"fmt"
	"net"
)

// IsPortAvailable reports whether a TCP port can be bound on all interfaces.
func IsPortAvailable(port int) bool {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}

// FindAvailablePort probes ports from start to max inclusive and returns the
// first one that can be bound. Used at startup when PORT_PROBE is enabled.
func FindAvailablePort(start, max int) (int, error) {
	for port := start; port <= max; port++ {
		if IsPortAvailable(port) {
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available ports found between %d and %d", start, max)
}
