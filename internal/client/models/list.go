// Package models defines the support-list data types shared by the
// codec, the reconciliation engine and the publish pipeline.
package models

// Status is the lifecycle state of a single item. Cross-status display
// order is fixed (pending < claimed < complete) and is not carried by
// Item.Order.
type Status string

const (
	StatusPending  Status = "pending"
	StatusClaimed  Status = "claimed"
	StatusComplete Status = "complete"
)

// Item is one entry of a list.
//
// ID is unique within a list and stable across snapshots; it is the join
// key for the merge. Order positions the item within its status group
// only. Encrypted is a display/merge hint; the authoritative signal for
// ciphertext state is the marker prefix on the wire title.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    Status `json:"status"`
	ClaimedBy string `json:"claimedBy,omitempty"`
	Note      string `json:"note,omitempty"`
	Order     int    `json:"order"`
	Encrypted bool   `json:"encrypted,omitempty"`
}

// ItemPatch is a partial item update. Nil fields are left untouched.
type ItemPatch struct {
	Title     *string
	Status    *Status
	ClaimedBy *string
	Note      *string
}

// Apply shallow-merges the patch into a copy of the item.
func (p ItemPatch) Apply(item Item) Item {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.ClaimedBy != nil {
		item.ClaimedBy = *p.ClaimedBy
	}
	if p.Note != nil {
		item.Note = *p.Note
	}
	return item
}

// List is a full snapshot of a support list. A published snapshot is a
// complete replacement of its publisher's prior state, never a delta.
// Every snapshot carries both participant pubkeys so that any recipient
// can derive the conversation key and attribute provenance.
type List struct {
	Title       string `json:"title"`
	Items       []Item `json:"items"`
	OwnerPubkey string `json:"ownerPubkey"`
	GuestPubkey string `json:"guestPubkey"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Clone returns a deep copy. Items is never nil on the copy.
func (l *List) Clone() *List {
	c := *l
	c.Items = make([]Item, len(l.Items))
	copy(c.Items, l.Items)
	return &c
}

// FindItem returns the index of the item with the given id, or -1.
func (l *List) FindItem(id string) int {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return i
		}
	}
	return -1
}
