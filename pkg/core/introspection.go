package core

import (
	"github.com/aretw0/introspection"
)

// CollectionState exposes internal state for observability.
type CollectionState struct {
	OwnerID     string `json:"owner_id"`
	Generation  string `json:"generation,omitempty"`
	Size        int    `json:"size"`
	Selected    string `json:"selected,omitempty"`
	Subscribers int    `json:"subscribers"`
	PageSize    int    `json:"page_size"`
}

// State implements introspection.Introspectable.
func (c *Collection) State() any {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CollectionState{
		OwnerID:     c.owner.ID,
		Generation:  c.gen,
		Size:        len(c.items),
		Selected:    c.selected,
		Subscribers: len(c.subs),
		PageSize:    c.pageSize,
	}
}

// ComponentType implements introspection.Component.
func (c *Collection) ComponentType() string {
	return "collection"
}

var _ introspection.Introspectable = (*Collection)(nil)
var _ introspection.Component = (*Collection)(nil)
