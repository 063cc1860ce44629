// Package lifecycle holds the shared start/stop settings of the fx application.
package lifecycle

import "time"

// DefaultTimeout bounds each start and stop hook.
const DefaultTimeout = 10 * time.Second
