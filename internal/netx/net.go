// Package netx contains address helpers.
package netx

import (
	"net"
	"strings"
)

// HostOf returns the host part of a "host:port" address. Addresses without a
// port are returned unchanged, IPv6 brackets removed.
func HostOf(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.Trim(addr, "[]")
}
