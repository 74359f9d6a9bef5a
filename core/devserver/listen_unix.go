//go:build unix

package devserver

import (
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

func listenConfig(reuse bool) *net.ListenConfig {
	if !reuse {
		return &net.ListenConfig{}
	}
	return &net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var serr error
			err := c.Control(func(fd uintptr) {
				serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			})
			if err != nil {
				return err
			}
			return serr
		},
	}
}
