package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// Defaults for CollectionConfig.
const (
	DefaultPageSize    = 100
	defaultEventBuffer = 16
)

// CollectionConfig holds the configuration for a note collection.
type CollectionConfig struct {
	// PageSize is the page size requested from the remote listing.
	// Zero means DefaultPageSize.
	PageSize int

	// Confirm approves deletions before they are sent. Nil means
	// deletions proceed without confirmation.
	Confirm ConfirmFunc

	// EventBuffer is the per-subscriber event channel size. Zero means default (16).
	EventBuffer int

	Logger *slog.Logger
}

// Collection is the locally cached, ordered view of the active identity's
// notes. It owns sort order, the filter views, selection, and reconciling
// optimistic mutations with remote responses. Local state changes only
// after the corresponding remote write is confirmed; nothing edited purely
// locally survives a reload.
//
// Overlapping updates to the same note are not serialized: the
// later-completing response wins in the cache. That race is inherited
// behavior and left in place. What IS guarded is the identity boundary:
// every round-trip captures the collection generation, and a response that
// lands after Invalidate is discarded instead of applied.
type Collection struct {
	gateway  Notes
	owner    Identity
	confirm  ConfirmFunc
	logger   *slog.Logger
	pageSize int
	bufSize  int

	mu       sync.Mutex
	gen      string
	items    []Note
	selected string // note ID, empty = no selection
	subs     []chan Event
}

// NewCollection creates a collection bound to the given identity.
// The collection starts empty; call Load to populate it.
func NewCollection(gateway Notes, owner Identity, cfg CollectionConfig) *Collection {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	bufSize := cfg.EventBuffer
	if bufSize <= 0 {
		bufSize = defaultEventBuffer
	}

	return &Collection{
		gateway:  gateway,
		owner:    owner,
		confirm:  cfg.Confirm,
		logger:   cfg.Logger,
		pageSize: pageSize,
		bufSize:  bufSize,
		gen:      uuid.NewString(),
	}
}

// Owner returns the identity this collection is bound to.
func (c *Collection) Owner() Identity {
	return c.owner
}

// Invalidate detaches the collection from its identity. Every subsequent
// operation fails with ErrNoActiveIdentity, and in-flight responses are
// discarded on arrival. Called by the session controller on logout or
// identity switch so stale writes can never land in the next user's cache.
func (c *Collection) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen = ""
	c.items = nil
	c.selected = ""
	for _, sub := range c.subs {
		close(sub)
	}
	c.subs = nil
}

// generation snapshots the current generation tag, or ErrNoActiveIdentity
// if the collection has been invalidated.
func (c *Collection) generation() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == "" {
		return "", ErrNoActiveIdentity
	}
	return c.gen, nil
}

// Load fetches every page of the remote listing, sorts, and atomically
// replaces the local collection. If the result is non-empty and nothing
// is selected yet, the first note (by sort order) becomes the selection.
func (c *Collection) Load(ctx context.Context) ([]Note, error) {
	gen, err := c.generation()
	if err != nil {
		return nil, err
	}

	// Iterate pages until a short page. A single oversized page would also
	// work against today's service, but iterating never silently drops notes.
	var all []Note
	for page := 0; ; page++ {
		batch, err := c.gateway.ListNotes(ctx, c.owner.ID, page, c.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load notes: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < c.pageSize {
			break
		}
	}

	sortNotes(all)

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return nil, ErrNoActiveIdentity
	}
	c.items = all
	if c.selected == "" && len(all) > 0 {
		c.selected = all[0].ID
	}
	snapshot := slices.Clone(c.items)
	c.mu.Unlock()

	c.notify(Event{Type: EventReload, Timestamp: time.Now().Unix()})
	return snapshot, nil
}

// Create sends the draft to the remote and, on success, prepends the
// returned note and selects it. No re-sort: a freshly created unpinned
// note ranks above same-day older notes by definition.
func (c *Collection) Create(ctx context.Context, draft Draft) (Note, error) {
	gen, err := c.generation()
	if err != nil {
		return Note{}, err
	}

	created, err := c.gateway.CreateNote(ctx, c.owner.ID, draft)
	if err != nil {
		return Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return Note{}, ErrNoActiveIdentity
	}
	c.items = append([]Note{created}, c.items...)
	c.selected = created.ID
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("created note", "id", created.ID, "owner", c.owner.ID)
	}
	c.notify(Event{Type: EventCreate, NoteID: created.ID, Timestamp: time.Now().Unix()})
	return created, nil
}

// Update merges the patch onto the last cached value of the note and sends
// the fully merged record to the remote. On success the note is replaced
// in place. The collection re-sorts only when the patch touched the pinned
// flag; plain edits keep their position even though updatedAt changed, so
// a scrolled list does not jump under the user.
func (c *Collection) Update(ctx context.Context, id string, patch Patch) (Note, error) {
	gen, err := c.generation()
	if err != nil {
		return Note{}, err
	}

	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return Note{}, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	merged := patch.apply(c.items[idx])
	c.mu.Unlock()

	stored, err := c.gateway.UpdateNote(ctx, c.owner.ID, merged)
	if err != nil {
		return Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return Note{}, ErrNoActiveIdentity
	}
	if idx = c.indexOf(id); idx >= 0 {
		c.items[idx] = stored
		if patch.Pinned != nil {
			sortNotes(c.items)
		}
	}
	// Selection tracks the ID, so a selected note picks up the new value
	// without explicit refreshing.
	c.mu.Unlock()

	c.notify(Event{Type: EventUpdate, NoteID: stored.ID, Timestamp: time.Now().Unix()})
	return stored, nil
}

// Delete asks the injected confirmation capability, then removes the note
// remotely and locally. A declined confirmation is a silent no-op. If the
// removed note was selected, the new first note (or nothing) takes over.
func (c *Collection) Delete(ctx context.Context, id string) error {
	gen, err := c.generation()
	if err != nil {
		return err
	}

	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	doomed := c.items[idx]
	c.mu.Unlock()

	if c.confirm != nil {
		ok, err := c.confirm(ctx, doomed)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			return nil
		}
	}

	if err := c.gateway.DeleteNote(ctx, c.owner.ID, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return ErrNoActiveIdentity
	}
	if idx = c.indexOf(id); idx >= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
	if c.selected == id {
		c.selected = ""
		if len(c.items) > 0 {
			c.selected = c.items[0].ID
		}
	}
	c.mu.Unlock()

	c.notify(Event{Type: EventDelete, NoteID: id, Timestamp: time.Now().Unix()})
	return nil
}

// Filter returns the notes whose title or content contains the query,
// case-insensitively. The empty query matches everything. This is a pure
// derived view re-computed per call; the stored collection is untouched.
func (c *Collection) Filter(query string) []Note {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]Note, 0, len(c.items))
	for _, n := range c.items {
		if MatchesQuery(n, query) {
			matched = append(matched, n)
		}
	}
	return matched
}

// MatchTags returns the notes with at least one tag matching the
// doublestar glob pattern (e.g. "work/**"). Like Filter, a derived view.
func (c *Collection) MatchTags(pattern string) ([]Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid tag pattern %q", pattern)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []Note
	for _, n := range c.items {
		for _, tag := range n.Tags {
			ok, err := doublestar.Match(pattern, tag)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = append(matched, n)
				break
			}
		}
	}
	return matched, nil
}

// Select moves the selection to the note with the given ID.
func (c *Collection) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(id) < 0 {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	c.selected = id
	return nil
}

// Selected returns the currently selected note, if any.
func (c *Collection) Selected() (Note, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexOf(c.selected); idx >= 0 {
		return c.items[idx], true
	}
	return Note{}, false
}

// Notes returns a snapshot of the collection in its current sort order.
func (c *Collection) Notes() []Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Len returns the number of cached notes.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Subscribe returns a channel of change events. The channel is closed when
// the collection is invalidated. Slow subscribers drop events rather than
// blocking mutations.
func (c *Collection) Subscribe() <-chan Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := make(chan Event, c.bufSize)
	if c.gen == "" {
		// Already invalidated: hand back a closed channel.
		close(sub)
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

func (c *Collection) notify(ev Event) {
	c.mu.Lock()
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- ev:
		default:
			if c.logger != nil {
				c.logger.Warn("dropping collection event, subscriber is slow", "event", ev.String())
			}
		}
	}
}

// indexOf must be called with the lock held. Returns -1 when absent or id is empty.
func (c *Collection) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range c.items {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// MatchesQuery reports whether the query is a case-insensitive substring
// of the note's title or content. The empty query matches everything.
func MatchesQuery(n Note, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// sortNotes applies the collection's total order: pinned before unpinned,
// then most recently touched first. The sort is stable, so identical
// timestamps keep their relative input order.
func sortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].EffectiveTime().After(notes[j].EffectiveTime())
	})
}
