package domain

import "time"

// Compiled defaults for the greeter process. Values can be overridden via
// configuration where a config key exists; the rest are fixed operational
// budgets.
const (
	// DefaultPort is used when PORT is unset or unparseable.
	DefaultPort = 3000

	// HTTP server timeouts
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 60 * time.Second

	// Graceful shutdown budgets
	ShutdownDrainDelay      = 1 * time.Second  // Let load balancers drop the endpoint first
	ShutdownHTTPTimeout     = 10 * time.Second // Max time to drain in-flight requests
	ShutdownOTELTimeout     = 5 * time.Second  // Max time to flush spans and metrics
	GracefulShutdownTimeout = 30 * time.Second // Total budget from signal to exit
)

// MaxPort is the highest valid TCP port number.
const MaxPort = 65535
