// Package transport is the engine's view of the event log: publish one
// signed event, query events by filter. The relay implementation lives
// in relay.go; tests substitute fakes behind the Client interface.
package transport

import (
	"context"
	"errors"

	"github.com/nbd-wtf/go-nostr"
)

// KindList is the application-data event kind carrying list snapshots.
const KindList = 30078

// Tag names on published snapshot events.
const (
	// TagDiscovery carries the list identifier grouping events into one
	// logical list.
	TagDiscovery = "d"
	// TagParticipant carries a participant public identifier; every
	// snapshot event tags both participants.
	TagParticipant = "p"
)

var (
	ErrUnavailable = errors.New("no relay available")
	ErrRejected    = errors.New("event rejected by all relays")
)

type Client interface {
	// Publish submits one fully-formed signed event. Fire-and-forget:
	// nothing beyond the success/failure of the call is reported.
	Publish(ctx context.Context, ev *nostr.Event) error

	// Query returns an unordered set of signed events matching the
	// filter. Events with invalid signatures are dropped.
	Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error)

	Close() error
}
