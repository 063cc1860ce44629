// Package delivery declares the servers the application runs.
package delivery

import "context"

// Delivery is a long-running server started once the application is wired.
type Delivery interface {
	Serve(ctx context.Context) error
}
