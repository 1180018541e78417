package notewire_test

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/notewire/notewire"
	"github.com/notewire/notewire/pkg/core"
)

// memGateway is a tiny in-memory stand-in for the remote stack so the
// examples run without a server.
type memGateway struct {
	identities []core.Identity
	notes      map[string][]core.Note
}

func newMemGateway() *memGateway {
	return &memGateway{notes: make(map[string][]core.Note)}
}

func (g *memGateway) ListIdentities(ctx context.Context) ([]core.Identity, error) {
	return g.identities, nil
}

func (g *memGateway) GetIdentity(ctx context.Context, id string) (core.Identity, error) {
	for _, ident := range g.identities {
		if ident.ID == id {
			return ident, nil
		}
	}
	return core.Identity{}, core.ErrNotFound
}

func (g *memGateway) CreateIdentity(ctx context.Context, p core.Profile) (core.Identity, error) {
	ident := core.Identity{
		ID:        fmt.Sprintf("u%d", len(g.identities)+1),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
	g.identities = append(g.identities, ident)
	return ident, nil
}

func (g *memGateway) ListNotes(ctx context.Context, ownerID string, page, size int) ([]core.Note, error) {
	if page > 0 {
		return nil, nil
	}
	return g.notes[ownerID], nil
}

func (g *memGateway) CreateNote(ctx context.Context, ownerID string, draft core.Draft) (core.Note, error) {
	n := core.Note{
		ID:      fmt.Sprintf("n%d", len(g.notes[ownerID])+1),
		OwnerID: ownerID,
		Title:   draft.Title,
		Content: draft.Content,
		Tags:    draft.Tags,
		Pinned:  draft.Pinned,
	}
	g.notes[ownerID] = append(g.notes[ownerID], n)
	return n, nil
}

func (g *memGateway) UpdateNote(ctx context.Context, ownerID string, n core.Note) (core.Note, error) {
	notes := g.notes[ownerID]
	for i := range notes {
		if notes[i].ID == n.ID {
			notes[i] = n
		}
	}
	return n, nil
}

func (g *memGateway) DeleteNote(ctx context.Context, ownerID, id string) error {
	notes := g.notes[ownerID]
	for i := range notes {
		if notes[i].ID == id {
			g.notes[ownerID] = append(notes[:i], notes[i+1:]...)
			break
		}
	}
	return nil
}

// Example_session demonstrates the full session cycle: register an
// identity, create a note, and walk the ordered collection.
func Example_session() {
	gateway := newMemGateway()

	ctrl, err := notewire.New(
		notewire.WithDirectory(gateway),
		notewire.WithNotes(gateway),
		notewire.WithSessionStore(&memStore{}),
		notewire.WithConfigFile(filepath.Join("testdata", "missing.yaml")),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Start restores a persisted session; a fresh install lands on the
	// login view.
	if err := ctrl.Start(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Println("state:", ctrl.State())

	// 2. Register an account. The token is persisted and the collection
	// loads immediately.
	err = ctrl.Register(ctx, core.Profile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	if err != nil {
		log.Fatal(err)
	}
	ident, _ := ctrl.Identity()
	fmt.Println("signed in as:", ident.DisplayName())

	// 3. Create a note; it is prepended and selected.
	coll, err := ctrl.Collection()
	if err != nil {
		log.Fatal(err)
	}
	draft := notewire.NewDraft()
	draft.Title = "Shopping list"
	if _, err := coll.Create(ctx, draft); err != nil {
		log.Fatal(err)
	}

	selected, _ := coll.Selected()
	fmt.Println("selected:", selected.Title)
	// Output:
	// state: unauthenticated
	// signed in as: Ada Lovelace
	// selected: Shopping list
}

// memStore keeps the session token in memory.
type memStore struct{ id string }

func (s *memStore) Save(id string) error        { s.id = id; return nil }
func (s *memStore) Load() (string, bool, error) { return s.id, s.id != "", nil }
func (s *memStore) Clear() error                { s.id = ""; return nil }
