// Package services hosts the mutation/publish pipeline: it applies a
// local edit to the last confirmed state, re-encrypts the outgoing
// snapshot against the counterparty, publishes it, and only then
// replaces the in-memory state. A failed publish leaves the confirmed
// state untouched, so there is never a phantom intermediate.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nbd-wtf/go-nostr"

	"github.com/okuleshov/supportlist/internal/client/envelope"
	"github.com/okuleshov/supportlist/internal/client/identity"
	"github.com/okuleshov/supportlist/internal/client/models"
	"github.com/okuleshov/supportlist/internal/client/reconcile"
	"github.com/okuleshov/supportlist/internal/client/repositories/snapshots"
	"github.com/okuleshov/supportlist/internal/client/snapshot"
	"github.com/okuleshov/supportlist/internal/client/transport"
	"github.com/okuleshov/supportlist/internal/common"
	"github.com/okuleshov/supportlist/internal/logging"
)

type ListService interface {
	// Create publishes the initial snapshot of a brand-new list. The
	// session must hold the owner secret.
	Create(ctx context.Context, title string) (*models.List, error)

	// Load queries the event log and reconciles the current state.
	// When every relay is unreachable it falls back to the locally
	// cached last confirmed state, if any.
	Load(ctx context.Context) (*models.List, error)

	// Current returns the last confirmed state, or nil before the
	// first successful Load/Create.
	Current() *models.List

	AddItem(ctx context.Context, title string) (*models.List, error)
	UpdateItem(ctx context.Context, id string, patch models.ItemPatch) (*models.List, error)
	DeleteItem(ctx context.Context, id string) (*models.List, error)

	// Reorder replaces the item sequence. The given ids must contain
	// every current item exactly once; order values are recomputed
	// dense within each status group.
	Reorder(ctx context.Context, ids []string) (*models.List, error)
}

type listService struct {
	transport transport.Client
	session   *identity.Session
	env       *envelope.Codec
	engine    *reconcile.Engine
	cache     snapshots.Repository
	log       logging.Logger
	limit     int

	// now is a test seam for snapshot timestamps.
	now func() int64

	current *models.List
}

func NewListService(tc transport.Client, session *identity.Session, cache snapshots.Repository, log logging.Logger, limit int) ListService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	env := envelope.NewCodec(log)
	return &listService{
		transport: tc,
		session:   session,
		env:       env,
		engine:    reconcile.NewEngine(env, log),
		cache:     cache,
		log:       log,
		limit:     limit,
		now:       func() int64 { return time.Now().Unix() },
	}
}

func (s *listService) Current() *models.List { return s.current }

func (s *listService) Create(ctx context.Context, title string) (*models.List, error) {
	if !s.session.IsOwner() {
		return nil, common.ErrInvalidOwnerKey
	}
	ownerPub, err := identity.PublicKey(s.session.OwnerSecret)
	if err != nil {
		return nil, err
	}
	guestPub, err := s.session.GuestPubkey()
	if err != nil {
		return nil, err
	}

	now := s.now()
	l := &models.List{
		Title:       title,
		Items:       []models.Item{},
		OwnerPubkey: ownerPub,
		GuestPubkey: guestPub,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.publish(ctx, l)
}

func (s *listService) Load(ctx context.Context) (*models.List, error) {
	guestPub, err := s.session.GuestPubkey()
	if err != nil {
		return nil, err
	}

	events, err := s.transport.Query(ctx, reconcile.Filter(s.session.ListID, guestPub, s.limit))
	if err != nil {
		if cached := s.cachedFallback(ctx, err); cached != nil {
			s.current = cached
			return cached, nil
		}
		return nil, fmt.Errorf("loading list: %w", err)
	}

	merged, err := s.engine.Merge(ctx, events, s.session.GuestSecret)
	if err != nil {
		return nil, err
	}

	// A session claiming structural authority must actually hold the
	// key matching the list's declared owner.
	if s.session.IsOwner() {
		if err := s.session.VerifyOwner(merged); err != nil {
			return nil, err
		}
	}

	s.current = merged
	s.saveCache(ctx, merged)
	return merged, nil
}

func (s *listService) cachedFallback(ctx context.Context, cause error) *models.List {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, s.session.ListID)
	if err != nil {
		return nil
	}
	s.log.Warn(ctx, "relays unreachable, showing cached state", "list", s.session.ListID, "error", cause)
	return cached
}

func (s *listService) AddItem(ctx context.Context, title string) (*models.List, error) {
	cur, err := s.loaded()
	if err != nil {
		return nil, err
	}

	next := cur.Clone()
	next.Items = append(next.Items, models.Item{
		ID:     uuid.NewString(),
		Title:  title,
		Status: models.StatusPending,
		Order:  len(cur.Items),
	})
	return s.publish(ctx, next)
}

func (s *listService) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) (*models.List, error) {
	cur, err := s.loaded()
	if err != nil {
		return nil, err
	}

	idx := cur.FindItem(id)
	if idx < 0 {
		// Unknown id is a no-op; nothing is published.
		return cur, nil
	}

	next := cur.Clone()
	next.Items[idx] = patch.Apply(next.Items[idx])
	return s.publish(ctx, next)
}

func (s *listService) DeleteItem(ctx context.Context, id string) (*models.List, error) {
	cur, err := s.loaded()
	if err != nil {
		return nil, err
	}

	idx := cur.FindItem(id)
	if idx < 0 {
		return cur, nil
	}

	next := cur.Clone()
	next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
	return s.publish(ctx, next)
}

func (s *listService) Reorder(ctx context.Context, ids []string) (*models.List, error) {
	cur, err := s.loaded()
	if err != nil {
		return nil, err
	}

	if len(ids) != len(cur.Items) {
		return nil, common.ErrBadSequence
	}

	next := cur.Clone()
	next.Items = next.Items[:0]
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		idx := cur.FindItem(id)
		if idx < 0 || seen[id] {
			return nil, common.ErrBadSequence
		}
		seen[id] = true
		next.Items = append(next.Items, cur.Items[idx])
	}

	// Dense order within each status group; cross-group order is
	// implied by status.
	counts := make(map[models.Status]int, 3)
	for i := range next.Items {
		st := next.Items[i].Status
		next.Items[i].Order = counts[st]
		counts[st]++
	}

	return s.publish(ctx, next)
}

func (s *listService) loaded() (*models.List, error) {
	if s.current == nil {
		return nil, common.ErrNoListLoaded
	}
	return s.current, nil
}

// publish encrypts, serializes, signs and submits the snapshot, then
// replaces the confirmed local state. State is untouched on any error.
func (s *listService) publish(ctx context.Context, next *models.List) (*models.List, error) {
	next.UpdatedAt = s.now()

	sender := s.session.SenderSecret()
	recipient := s.session.RecipientPubkey(next)

	wire := next.Clone()
	for i := range wire.Items {
		wire.Items[i] = s.env.Encrypt(wire.Items[i], sender, recipient)
	}

	content, err := snapshot.Serialize(wire)
	if err != nil {
		return nil, fmt.Errorf("serializing snapshot: %w", err)
	}

	ev := nostr.Event{
		Kind:      transport.KindList,
		CreatedAt: nostr.Timestamp(next.UpdatedAt),
		Content:   content,
		Tags: nostr.Tags{
			{transport.TagDiscovery, s.session.ListID},
			{transport.TagParticipant, next.OwnerPubkey},
			{transport.TagParticipant, next.GuestPubkey},
		},
	}
	if err := ev.Sign(sender); err != nil {
		return nil, fmt.Errorf("signing snapshot event: %w", err)
	}

	if err := s.transport.Publish(ctx, &ev); err != nil {
		return nil, fmt.Errorf("publishing snapshot: %w", err)
	}

	s.current = next
	s.saveCache(ctx, next)
	return next, nil
}

func (s *listService) saveCache(ctx context.Context, l *models.List) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(ctx, s.session.ListID, l); err != nil {
		s.log.Warn(ctx, "failed to cache snapshot", "list", s.session.ListID, "error", err)
	}
}
