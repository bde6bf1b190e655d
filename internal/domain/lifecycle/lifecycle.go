// Package lifecycle holds shared settings for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each start or stop hook, such as pinging the database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
