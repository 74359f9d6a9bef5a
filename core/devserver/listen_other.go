//go:build !unix

package devserver

import "net"

// On Windows SO_REUSEADDR lets another process steal a bound port, so the
// option is left alone there.
func listenConfig(bool) *net.ListenConfig {
	return &net.ListenConfig{}
}
