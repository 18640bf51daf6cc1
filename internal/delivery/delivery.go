// Package delivery defines the contract every transport front-end fulfills.
package delivery

import "context"

// Delivery is a serving surface (e.g. the HTTP server) started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
