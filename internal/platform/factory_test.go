package platform

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewire/notewire/pkg/core"
)

type stubStore struct{ id string }

func (s *stubStore) Save(id string) error        { s.id = id; return nil }
func (s *stubStore) Load() (string, bool, error) { return s.id, s.id != "", nil }
func (s *stubStore) Clear() error                { s.id = ""; return nil }

type stubGateway struct{}

func (stubGateway) ListIdentities(ctx context.Context) ([]core.Identity, error) {
	return []core.Identity{{ID: "u1", Email: "ada@example.com"}}, nil
}

func (stubGateway) GetIdentity(ctx context.Context, id string) (core.Identity, error) {
	return core.Identity{ID: id, Email: "ada@example.com"}, nil
}

func (stubGateway) CreateIdentity(ctx context.Context, p core.Profile) (core.Identity, error) {
	return core.Identity{ID: "u1", Email: p.Email}, nil
}

func (stubGateway) ListNotes(ctx context.Context, ownerID string, page, size int) ([]core.Note, error) {
	return nil, nil
}

func (stubGateway) CreateNote(ctx context.Context, ownerID string, d core.Draft) (core.Note, error) {
	return core.Note{ID: "n1", OwnerID: ownerID, Title: d.Title}, nil
}

func (stubGateway) UpdateNote(ctx context.Context, ownerID string, n core.Note) (core.Note, error) {
	return n, nil
}

func (stubGateway) DeleteNote(ctx context.Context, ownerID, id string) error { return nil }

// missingConfig points config loading at a nonexistent file so tests never
// read the developer's real ~/.config/notewire.
func missingConfig(t *testing.T) Option {
	t.Helper()
	return WithConfigFile(filepath.Join(t.TempDir(), "config.yaml"))
}

func TestNew_WithInjectedCollaborators(t *testing.T) {
	gw := stubGateway{}
	store := &stubStore{}

	ctrl, err := New(
		missingConfig(t),
		WithSessionStore(store),
		WithDirectory(gw),
		WithNotes(gw),
	)
	require.NoError(t, err)

	require.NoError(t, ctrl.Start(context.Background()))
	assert.Equal(t, core.StateUnauthenticated, ctrl.State())

	require.NoError(t, ctrl.Login(context.Background(), "ada@example.com"))
	assert.Equal(t, core.StateActive, ctrl.State())
	assert.Equal(t, "u1", store.id)
}

func TestNew_RejectsHalfInjectedGateway(t *testing.T) {
	_, err := New(missingConfig(t), WithDirectory(stubGateway{}))
	assert.Error(t, err)

	_, err = New(missingConfig(t), WithNotes(stubGateway{}))
	assert.Error(t, err)
}

func TestNew_DefaultRESTGateway(t *testing.T) {
	// No injected gateways: the factory builds the REST client. The session
	// store is injected so nothing touches the user's config directory.
	ctrl, err := New(
		missingConfig(t),
		WithSessionStore(&stubStore{}),
		WithBaseURL("http://localhost:1"),
	)
	require.NoError(t, err)
	require.NoError(t, ctrl.Start(context.Background()))
	assert.Equal(t, core.StateUnauthenticated, ctrl.State())
}

func TestNew_FileConfigFeedsDefaults(t *testing.T) {
	path := writeConfig(t, "page_size: 7\n")
	gw := stubGateway{}

	ctrl, err := New(
		WithConfigFile(path),
		WithSessionStore(&stubStore{}),
		WithDirectory(gw),
		WithNotes(gw),
	)
	require.NoError(t, err)
	require.NoError(t, ctrl.Start(context.Background()))
	require.NoError(t, ctrl.Login(context.Background(), "ada@example.com"))

	coll, err := ctrl.Collection()
	require.NoError(t, err)
	state, ok := coll.State().(core.CollectionState)
	require.True(t, ok)
	assert.Equal(t, 7, state.PageSize)
}

func TestNew_MalformedConfigFails(t *testing.T) {
	path := writeConfig(t, "page_size: [oops\n")

	_, err := New(WithConfigFile(path), WithSessionStore(&stubStore{}))
	assert.Error(t, err)
}
