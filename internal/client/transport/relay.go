package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbd-wtf/go-nostr"

	"github.com/okuleshov/supportlist/internal/logging"
)

// RelayPool talks to a set of relays. Publishing succeeds if at least
// one relay accepts the event; querying fans out to every reachable
// relay and deduplicates results by event id. Connections are dialed
// lazily and reused.
//
// The pool is driven by a single caller at a time and keeps no locks
// of its own.
type RelayPool struct {
	urls   []string
	log    logging.Logger
	relays map[string]*nostr.Relay
}

func NewRelayPool(urls []string, log logging.Logger) *RelayPool {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &RelayPool{urls: urls, log: log, relays: make(map[string]*nostr.Relay)}
}

func (p *RelayPool) connect(ctx context.Context, url string) (*nostr.Relay, error) {
	if r, ok := p.relays[url]; ok {
		return r, nil
	}
	r, err := nostr.RelayConnect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	p.relays[url] = r
	return r, nil
}

func (p *RelayPool) drop(url string) {
	if r, ok := p.relays[url]; ok {
		_ = r.Close()
		delete(p.relays, url)
	}
}

func (p *RelayPool) Publish(ctx context.Context, ev *nostr.Event) error {
	var errs []error
	accepted := 0

	for _, url := range p.urls {
		r, err := p.connect(ctx, url)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := r.Publish(ctx, *ev); err != nil {
			p.log.Warn(ctx, "relay rejected event", "relay", url, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
			p.drop(url)
			continue
		}
		accepted++
	}

	if accepted == 0 {
		return fmt.Errorf("%w: %w", ErrRejected, errors.Join(errs...))
	}
	return nil
}

func (p *RelayPool) Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error) {
	var errs []error
	seen := make(map[string]struct{})
	var events []*nostr.Event
	reached := 0

	for _, url := range p.urls {
		r, err := p.connect(ctx, url)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got, err := r.QuerySync(ctx, filter)
		if err != nil {
			p.log.Warn(ctx, "relay query failed", "relay", url, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
			p.drop(url)
			continue
		}
		reached++
		for _, ev := range got {
			if ev == nil {
				continue
			}
			if _, dup := seen[ev.ID]; dup {
				continue
			}
			if ok, err := ev.CheckSignature(); !ok || err != nil {
				p.log.Warn(ctx, "dropping event with bad signature", "event", ev.ID, "relay", url)
				continue
			}
			seen[ev.ID] = struct{}{}
			events = append(events, ev)
		}
	}

	if reached == 0 {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
	}
	return events, nil
}

func (p *RelayPool) Close() error {
	var errs []error
	for url, r := range p.relays {
		if err := r.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
		}
	}
	p.relays = make(map[string]*nostr.Relay)
	return errors.Join(errs...)
}
