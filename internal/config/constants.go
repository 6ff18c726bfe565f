package config

// Default listen address
const (
	// DefaultHost binds to all interfaces
	DefaultHost = "0.0.0.0"

	// DefaultPort is used when the PORT environment variable is not set
	DefaultPort = 9000
)
