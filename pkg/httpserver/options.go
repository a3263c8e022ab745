package httpserver

import (
	"net"
	"time"

	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

// Option configures a Server before it starts.
type Option func(*Server)

// Addr sets the listen address. An empty host listens on every interface.
func Addr(host, port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

// TLS serves HTTPS when enable is set. Without certFile and keyFile the
// server presents an in-memory self-signed certificate.
func TLS(enable bool, certFile, keyFile string) Option {
	return func(s *Server) {
		s.useTLS, s.certFile, s.keyFile = enable, certFile, keyFile
	}
}

// Listener serves on l instead of binding the configured address.
func Listener(l net.Listener) Option {
	return func(s *Server) { s.listener = l }
}

// ShutdownTimeout bounds how long Shutdown waits for open requests.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = timeout }
}

// Logger receives the server's own error log at warn level.
func Logger(l logger.Interface) Option {
	return func(s *Server) { s.log = l }
}
