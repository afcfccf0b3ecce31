package messaging

import "time"

type NatsServerOpt func(*NatsServer)

// WithHost sets the listen host.
func WithHost(host string) NatsServerOpt {
	return func(s *NatsServer) {
		s.host = host
	}
}

// WithPort sets the listen port. Zero picks a random free port.
func WithPort(port int) NatsServerOpt {
	return func(s *NatsServer) {
		s.port = port
	}
}

// WithStartupTimeout bounds how long Start waits for readiness.
func WithStartupTimeout(d time.Duration) NatsServerOpt {
	return func(s *NatsServer) {
		s.startupTimeout = d
	}
}
