package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/notewire/notewire/pkg/core"
)

type collectionSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits collection change events.
// It bridges the typed subscription channel (see core.Collection.Subscribe)
// to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &collectionSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *collectionSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *collectionSource) Start(ctx context.Context) error {
	// The bridge itself runs under lifecycle.Go so it is tracked and safe.
	// It ends when the collection is invalidated (channel closed) or the
	// context is done.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
