// Package messaging sends outbound SMS through a swappable provider.
package messaging

import "context"

// Provider is the capability contract every SMS backend implements.
// Swapping providers means swapping the concrete type wired in at startup;
// callers never change.
type Provider interface {
	// Send delivers one message to an E.164-formatted destination number.
	Send(ctx context.Context, to, body string) error
	// IsConfigured reports whether the provider has the credentials it
	// needs to attempt a send.
	IsConfigured() bool
}
