// Package lifecycle holds process-wide startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as pinging the pool or draining the server.
const DefaultTimeout = 10 * time.Second
