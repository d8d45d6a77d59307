// Package delivery defines the contract shared by all inbound transports.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, worker) started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
