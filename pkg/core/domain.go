// Identity and Note are the central entities of the domain.
package core

import (
	"fmt"
	"time"
)

// Identity is a registered user profile in the remote directory.
// It distinguishes ownership of notes. Email is unique across the
// directory, compared case-insensitively.
type Identity struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// DisplayName returns the "First Last" form used by presentation layers.
func (i Identity) DisplayName() string {
	switch {
	case i.FirstName == "" && i.LastName == "":
		return i.Email
	case i.LastName == "":
		return i.FirstName
	case i.FirstName == "":
		return i.LastName
	}
	return i.FirstName + " " + i.LastName
}

// Profile is the payload for registering a new Identity.
// The directory assigns the ID.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Note is a single note record as the remote notes store shapes it.
// The wire name for the owner is "userId"; every note in a collection
// belongs to the currently active identity.
type Note struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"userId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Pinned    bool       `json:"pinned"`
	Archived  bool       `json:"archived"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// EffectiveTime returns the timestamp used for ordering:
// the last update if present, otherwise the creation time.
func (n Note) EffectiveTime() time.Time {
	if n.UpdatedAt != nil {
		return *n.UpdatedAt
	}
	return n.CreatedAt
}

// Draft is the creation payload for a note. It doubles as the wire
// body for updates, since the notes service takes the full record.
type Draft struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Pinned   bool     `json:"pinned"`
	Archived bool     `json:"archived"`
}

// NewDraft returns a draft with the stock defaults for a freshly created note.
func NewDraft() Draft {
	return Draft{
		Title: "Untitled Note",
		Tags:  []string{},
	}
}

// Patch is a partial update. Nil fields keep the cached value; the merge
// happens client-side and the full merged record goes over the wire.
type Patch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	Pinned   *bool
	Archived *bool
}

// apply merges the patch onto a cached note and returns the result.
func (p Patch) apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	if p.Archived != nil {
		n.Archived = *p.Archived
	}
	return n
}

// EventType represents the type of change in the collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
	EventReload EventType = "RELOAD"
)

// Event represents a change in the collection. Presentation layers
// subscribe to these instead of polling.
type Event struct {
	Type      EventType
	NoteID    string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event for the lifecycle adapter bridge.
func (e Event) String() string {
	if e.NoteID == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s", e.Type, e.NoteID)
}
