// Package lifecycle holds shared constants for startup and shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations,
// such as pinging the database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
