// Package reconcile rebuilds a single consistent list state from the
// unordered, duplicate-prone snapshot events of two independent writers.
//
// Structure (which items exist, their order) follows the newest owner
// event alone, so the two writers can never diverge on membership. The
// per-item fields either party may legitimately move forward (status,
// note, claimedBy) are merged by scanning every usable event newest
// first and taking the first non-trivial value. This is a heuristic,
// not a CRDT: a guest's claim survives an owner's later
// reorder-only snapshot that still carries a stale pending status.
package reconcile

import (
	"context"
	"sort"

	"github.com/nbd-wtf/go-nostr"

	"github.com/okuleshov/supportlist/internal/client/envelope"
	"github.com/okuleshov/supportlist/internal/client/models"
	"github.com/okuleshov/supportlist/internal/client/snapshot"
	"github.com/okuleshov/supportlist/internal/client/transport"
	"github.com/okuleshov/supportlist/internal/common"
	"github.com/okuleshov/supportlist/internal/logging"
)

// QueryLimit bounds how many candidate events one load considers.
const QueryLimit = 100

// Filter builds the query matching every snapshot event of one list:
// the fixed application-data kind, the discovery tag carrying the list
// identifier, and the guest participant tag (present on events from
// both writers).
func Filter(listID, guestPub string, limit int) nostr.Filter {
	if limit <= 0 {
		limit = QueryLimit
	}
	return nostr.Filter{
		Kinds: []int{transport.KindList},
		Tags: nostr.TagMap{
			transport.TagDiscovery:   []string{listID},
			transport.TagParticipant: []string{guestPub},
		},
		Limit: limit,
	}
}

// Engine merges raw events into one current list state.
type Engine struct {
	env *envelope.Codec
	log logging.Logger
}

func NewEngine(env *envelope.Codec, log logging.Logger) *Engine {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Engine{env: env, log: log}
}

// decoded pairs an event with its parsed snapshot.
type decoded struct {
	ev   *nostr.Event
	snap *models.List
	// items decrypted against this event's own declared owner pubkey,
	// keyed by item id.
	items map[string]models.Item
}

// Merge reconciles the given events into the current list state using
// the shared guest secret for decryption. It returns
// common.ErrListNotFound when no event yields a usable owner snapshot;
// guest events alone never establish list existence.
//
// Events are ordered newest first; identical timestamps are broken by
// event id, descending, so the result is deterministic across
// processes.
func (e *Engine) Merge(ctx context.Context, events []*nostr.Event, guestSecret string) (*models.List, error) {
	if len(events) == 0 {
		return nil, common.ErrListNotFound
	}

	sorted := make([]*nostr.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt != sorted[j].CreatedAt {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		}
		return sorted[i].ID > sorted[j].ID
	})

	// Deserialize and decrypt every usable event independently. Each
	// event's items are decrypted with the guest secret against that
	// event's own declared owner; key agreement is symmetric, so this
	// works for snapshots published by either side.
	versions := make([]decoded, 0, len(sorted))
	authIdx := -1
	for _, ev := range sorted {
		snap := snapshot.Deserialize(ev.Content, ev.PubKey)
		if snap == nil {
			e.log.Debug(ctx, "dropping unparseable event", "event", ev.ID)
			continue
		}
		d := decoded{ev: ev, snap: snap, items: make(map[string]models.Item, len(snap.Items))}
		for _, it := range snap.Items {
			d.items[it.ID] = e.env.Decrypt(it, guestSecret, snap.OwnerPubkey)
		}
		versions = append(versions, d)
		if authIdx < 0 && ev.PubKey == snap.OwnerPubkey {
			authIdx = len(versions) - 1
		}
	}

	if authIdx < 0 {
		return nil, common.ErrListNotFound
	}
	auth := versions[authIdx]

	// The newest owner event is authoritative for structure: its items
	// define membership, order and base field values of the result.
	merged := auth.snap.Clone()
	merged.Items = make([]models.Item, 0, len(auth.snap.Items))
	for _, raw := range auth.snap.Items {
		merged.Items = append(merged.Items, e.mergeItem(auth.items[raw.ID], raw.ID, versions))
	}

	return merged, nil
}

// mergeItem resolves one item's fields across all versions, newest
// first. Note and claimedBy take the first non-empty value found;
// status takes the first value that is not the default pending.
func (e *Engine) mergeItem(base models.Item, id string, versions []decoded) models.Item {
	out := base
	if out.Status == "" {
		out.Status = models.StatusPending
	}

	for _, v := range versions {
		cand, ok := v.items[id]
		if !ok {
			continue
		}
		if cand.Note != "" {
			out.Note = cand.Note
			break
		}
	}

	for _, v := range versions {
		cand, ok := v.items[id]
		if !ok {
			continue
		}
		if cand.ClaimedBy != "" {
			out.ClaimedBy = cand.ClaimedBy
			break
		}
	}

	for _, v := range versions {
		cand, ok := v.items[id]
		if !ok {
			continue
		}
		if cand.Status != "" && cand.Status != models.StatusPending {
			out.Status = cand.Status
			break
		}
	}

	return out
}
