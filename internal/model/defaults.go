package model

import "time"

// Shared defaults used by both the dashboard and mock API binaries.
const (
	DefaultHealthInterval = 30 * time.Second
	DefaultAPIAddr        = "127.0.0.1:3000"
	DefaultAPIURL         = "http://" + DefaultAPIAddr
	DefaultLogLevel       = "info"
	DefaultStartRole      = "operator"
	DefaultStartPage      = "overview"
)
